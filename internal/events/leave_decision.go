package events

import "time"

const LeaveDecisionTopic = "campus.leave.decision.v1"

// LeaveDecisionEvent is emitted on every terminal decision (rejection at
// any stage, or the Principal's final approval).
type LeaveDecisionEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	FacultyID     string    `json:"faculty_id"`
	LeaveType     string    `json:"leave_type"`
	Status        string    `json:"status"`
	DecidedByRole string    `json:"decided_by_role"`
	OccurredAt    time.Time `json:"occurred_at"`
}
