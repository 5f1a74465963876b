package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	DurationSingle   = "single"
	DurationMultiple = "multiple"
)

// Application is one leave request moving through the three-stage
// review: HOD, then HR, then Principal. ReviewHistory is append-only;
// one entry per transition, in order.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacultyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FacultyName string    `gorm:"type:varchar(120);not null"`

	LeaveType     string     `gorm:"type:varchar(20);not null"`
	LeaveDuration string     `gorm:"type:varchar(10);not null;default:'single'"`
	FromDate      time.Time  `gorm:"type:date;not null"`
	ToDate        *time.Time `gorm:"type:date"`

	Status        string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewHistory pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Application) TableName() string { return "leave_applications" }
