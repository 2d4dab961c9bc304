package contract

import (
	"strings"
	"time"
)

type Employee struct {
	ID         int64     `json:"id" validate:"required,gt=0"`
	FirstName  string    `json:"firstName" validate:"required"`
	LastName   string    `json:"lastName" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	IDNumber   string    `json:"idNumber" validate:"required"`
	Position   string    `json:"position" validate:"required"`
	Department string    `json:"department" validate:"required"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
}

// EmployeeInput is the creatable subset of Employee.
type EmployeeInput struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	IDNumber   string `json:"idNumber" validate:"required"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	IsActive   *bool  `json:"isActive"`
}

func (in *EmployeeInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.IDNumber = strings.TrimSpace(in.IDNumber)
	in.Position = strings.TrimSpace(in.Position)
	in.Department = strings.TrimSpace(in.Department)
}

// Active resolves the isActive default.
func (in EmployeeInput) Active() bool {
	return in.IsActive == nil || *in.IsActive
}

// EmployeePatch is a partial EmployeeInput; nil fields are left untouched.
type EmployeePatch struct {
	FirstName  *string `json:"firstName" validate:"omitnil,min=1"`
	LastName   *string `json:"lastName" validate:"omitnil,min=1"`
	Email      *string `json:"email" validate:"omitnil,email"`
	IDNumber   *string `json:"idNumber" validate:"omitnil,min=1"`
	Position   *string `json:"position" validate:"omitnil,min=1"`
	Department *string `json:"department" validate:"omitnil,min=1"`
	IsActive   *bool   `json:"isActive"`
}

func (p *EmployeePatch) normalize() {
	for _, field := range []*string{p.FirstName, p.LastName, p.Email, p.IDNumber, p.Position, p.Department} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

func (p EmployeePatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.IDNumber == nil &&
		p.Position == nil && p.Department == nil && p.IsActive == nil
}

// Apply merges the supplied fields into emp.
func (p EmployeePatch) Apply(emp *Employee) {
	if p.FirstName != nil {
		emp.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		emp.LastName = *p.LastName
	}
	if p.Email != nil {
		emp.Email = *p.Email
	}
	if p.IDNumber != nil {
		emp.IDNumber = *p.IDNumber
	}
	if p.Position != nil {
		emp.Position = *p.Position
	}
	if p.Department != nil {
		emp.Department = *p.Department
	}
	if p.IsActive != nil {
		emp.IsActive = *p.IsActive
	}
}

// EmployeeWithDetails is an employee plus every record that references it.
type EmployeeWithDetails struct {
	Employee
	LeaveRequests       []LeaveRequest       `json:"leaveRequests"`
	DisciplinaryRecords []DisciplinaryRecord `json:"disciplinaryRecords"`
	TrainingRecords     []TrainingRecord     `json:"trainingRecords"`
}
