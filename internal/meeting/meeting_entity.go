package meeting

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Meeting is a broadcast entity: every staff member sees it until they
// dismiss it through a read-state marker. Attendees is the roster
// snapshot taken at scheduling time.
type Meeting struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Subject       string    `gorm:"type:varchar(200);not null"`
	Date          string    `gorm:"type:varchar(20);not null"`
	Time          string    `gorm:"type:varchar(20);not null"`
	Location      string    `gorm:"type:varchar(200);not null"`
	OrganizerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizerRole string    `gorm:"type:varchar(20);not null"`

	Attendees pq.StringArray `gorm:"type:uuid[];not null;default:'{}'"`

	CreatedAt time.Time
}
