package employee

type CreateEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=faculty hod hr principal timetable-admin"`
	Password string `json:"password" binding:"required,min=8"`
}

type EmployeeResponse struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	CasualLeavesTaken    int    `json:"totalCasualLeavesTaken"`
	MedicalLeavesTaken   int    `json:"totalMedicalLeavesTaken"`
	MaternityLeavesTaken int    `json:"totalMaternityLeavesTaken"`
}

type LeaveBalanceResponse struct {
	LeaveType string `json:"leave_type"`
	Taken     int    `json:"taken"`
	Allowed   int    `json:"allowed"`
}
