package contract

import "time"

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardSummaryBody struct {
	ActiveEmployees   int               `json:"activeEmployees"`
	PendingLeave      int               `json:"pendingLeave"`
	DisciplinaryTotal int               `json:"disciplinaryTotal"`
	OnLeaveToday      int               `json:"onLeaveToday"`
	Departments       []DepartmentCount `json:"departments"`
}

// Notification records one long-leave notification attempt.
type Notification struct {
	ID             int64     `json:"id"`
	Kind           string    `json:"kind"`
	LeaveRequestID int64     `json:"leaveRequestId"`
	EmployeeID     int64     `json:"employeeId"`
	Message        string    `json:"message"`
	Delivered      bool      `json:"delivered"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
