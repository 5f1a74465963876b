package timetable

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one timetable slot assigned to a faculty member. Rows come
// from bulk imports; re-imports append, they do not dedup.
type Entry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       string    `gorm:"type:varchar(20);not null"`
	Day        string    `gorm:"type:varchar(20);not null"`
	Time       string    `gorm:"type:varchar(40);not null"`
	Subject    string    `gorm:"type:varchar(200);not null"`
	Class      string    `gorm:"type:varchar(100);not null"`
	Faculty    string    `gorm:"type:varchar(120);not null"`
	CreatedAt  time.Time
}

func (Entry) TableName() string { return "timetable_entries" }
