package meeting

import "time"

type ScheduleMeetingRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type MeetingResponse struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location"`
	OrganizerID   string    `json:"organizerId"`
	OrganizerRole string    `json:"organizerRole"`
	Attendees     []string  `json:"attendees"`
	CreatedAt     time.Time `json:"createdAt"`
}
