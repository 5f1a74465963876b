package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleFaculty        = "faculty"
	RoleHOD            = "hod"
	RoleHR             = "hr"
	RolePrincipal      = "principal"
	RoleTimetableAdmin = "timetable-admin"
)

const (
	LeaveCasual    = "casual"
	LeaveMedical   = "medical"
	LeaveMaternity = "maternity"
)

// AllowedLimit per leave category. A submission that would push the
// taken counter past its limit is refused.
var AllowedLimit = map[string]int{
	LeaveCasual:    15,
	LeaveMedical:   10,
	LeaveMaternity: 1,
}

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Name     string    `gorm:"type:varchar(120);not null;index"`
	Role     string    `gorm:"type:varchar(20);not null;default:'faculty'"`
	Password string    `gorm:"not null"`

	CasualLeavesTaken    int `gorm:"type:int;not null;default:0"`
	MedicalLeavesTaken   int `gorm:"type:int;not null;default:0"`
	MaternityLeavesTaken int `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TakenFor returns the counter for the given leave category.
func (e *Employee) TakenFor(leaveType string) int {
	switch leaveType {
	case LeaveCasual:
		return e.CasualLeavesTaken
	case LeaveMedical:
		return e.MedicalLeavesTaken
	case LeaveMaternity:
		return e.MaternityLeavesTaken
	default:
		return 0
	}
}

func ValidLeaveType(leaveType string) bool {
	_, ok := AllowedLimit[leaveType]
	return ok
}

func ValidRole(role string) bool {
	switch role {
	case RoleFaculty, RoleHOD, RoleHR, RolePrincipal, RoleTimetableAdmin:
		return true
	default:
		return false
	}
}
