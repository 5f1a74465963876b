package leave

type SubmitLeaveRequest struct {
	LeaveType     string `json:"leave_type" binding:"required,oneof=casual medical maternity"`
	LeaveDuration string `json:"leave_duration" binding:"required,oneof=single multiple"`
	FromDate      string `json:"from_date" binding:"required"`
	ToDate        string `json:"to_date"`
}

type ApplicationResponse struct {
	ID            string   `json:"id"`
	FacultyID     string   `json:"facultyId"`
	FacultyName   string   `json:"facultyName"`
	LeaveType     string   `json:"leaveType"`
	LeaveDuration string   `json:"leaveDuration"`
	FromDate      string   `json:"fromDate"`
	ToDate        *string  `json:"toDate,omitempty"`
	LeaveDays     int      `json:"leaveDays"`
	Status        string   `json:"status"`
	ReviewHistory []string `json:"reviewHistory"`
}
