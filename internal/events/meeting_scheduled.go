package events

import "time"

const MeetingScheduledTopic = "campus.meeting.scheduled.v1"

type MeetingScheduledEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	MeetingID       string    `json:"meeting_id"`
	Subject         string    `json:"subject"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	OrganizerID     string    `json:"organizer_id"`
	OrganizerRole   string    `json:"organizer_role"`
	RecipientEmails []string  `json:"recipient_emails"`
	OccurredAt      time.Time `json:"occurred_at"`
}
