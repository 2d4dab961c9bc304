package contract

import (
	"strings"
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Terminal reports whether the status ends the lifecycle.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

const (
	LeaveTypeAnnual = "Annual"
	LeaveTypeSick   = "Sick"
	LeaveTypeFamily = "Family"
	LeaveTypeUnpaid = "Unpaid"
)

// LeaveTypes must stay in sync with the oneof rule on LeaveRequestInput.Type.
var LeaveTypes = []string{LeaveTypeAnnual, LeaveTypeSick, LeaveTypeFamily, LeaveTypeUnpaid}

var LeaveStatuses = []LeaveStatus{LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected}

type LeaveRequest struct {
	ID         int64       `json:"id" validate:"required,gt=0"`
	EmployeeID int64       `json:"employeeId" validate:"required,gt=0"`
	StartDate  string      `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string      `json:"endDate" validate:"required,datetime=2006-01-02"`
	Type       string      `json:"type" validate:"required"`
	Reason     string      `json:"reason" validate:"required"`
	Status     LeaveStatus `json:"status" validate:"required,oneof=Pending Approved Rejected"`
	CreatedAt  time.Time   `json:"createdAt" validate:"required"`
}

// LeaveRequestInput is the creatable subset of LeaveRequest. Status is server-assigned.
type LeaveRequestInput struct {
	EmployeeID int64  `json:"employeeId" validate:"required,gt=0"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Type       string `json:"type" validate:"required,oneof=Annual Sick Family Unpaid"`
	Reason     string `json:"reason" validate:"required"`
}

func (in *LeaveRequestInput) normalize() {
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.Type = strings.TrimSpace(in.Type)
	in.Reason = strings.TrimSpace(in.Reason)
}

// Period returns the parsed start and end dates. Call only after validation.
func (in LeaveRequestInput) Period() (time.Time, time.Time) {
	start, _ := ParseDate(in.StartDate)
	end, _ := ParseDate(in.EndDate)
	return start, end
}

type LeaveStatusUpdate struct {
	Status LeaveStatus `json:"status" validate:"required,oneof=Pending Approved Rejected"`
}

func (u *LeaveStatusUpdate) normalize() {
	u.Status = LeaveStatus(strings.TrimSpace(string(u.Status)))
}
