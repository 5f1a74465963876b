package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeave   = "leave"
	TypeMeeting = "meeting"
)

// Notification is a stored, per-recipient message: leave decisions and
// meeting fan-out both land here. Clearing flips IsCleared in place.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacultyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'leave'"`
	IsCleared bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

// ClearedMeetingNotification is the per-viewer dismissal marker for a
// broadcast meeting. Markers are inserted on clear and never deleted.
type ClearedMeetingNotification struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MeetingID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClearedAt  time.Time `gorm:"not null"`
}
