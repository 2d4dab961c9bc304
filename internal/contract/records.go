package contract

import (
	"strings"
	"time"
)

type DisciplinaryRecord struct {
	ID           int64     `json:"id" validate:"required,gt=0"`
	EmployeeID   int64     `json:"employeeId" validate:"required,gt=0"`
	IncidentDate string    `json:"incidentDate" validate:"required,datetime=2006-01-02"`
	Description  string    `json:"description" validate:"required"`
	ActionTaken  string    `json:"actionTaken" validate:"required"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
}

type DisciplinaryRecordInput struct {
	EmployeeID   int64  `json:"employeeId" validate:"required,gt=0"`
	IncidentDate string `json:"incidentDate" validate:"required,datetime=2006-01-02"`
	Description  string `json:"description" validate:"required"`
	ActionTaken  string `json:"actionTaken" validate:"required"`
}

func (in *DisciplinaryRecordInput) normalize() {
	in.IncidentDate = strings.TrimSpace(in.IncidentDate)
	in.Description = strings.TrimSpace(in.Description)
	in.ActionTaken = strings.TrimSpace(in.ActionTaken)
}

type TrainingRecord struct {
	ID             int64     `json:"id" validate:"required,gt=0"`
	EmployeeID     int64     `json:"employeeId" validate:"required,gt=0"`
	TrainingName   string    `json:"trainingName" validate:"required"`
	CompletionDate string    `json:"completionDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate     *string   `json:"expiryDate" validate:"omitnil,datetime=2006-01-02"`
	CertificateURL *string   `json:"certificateUrl"`
	CreatedAt      time.Time `json:"createdAt" validate:"required"`
}

type TrainingRecordInput struct {
	EmployeeID     int64   `json:"employeeId" validate:"required,gt=0"`
	TrainingName   string  `json:"trainingName" validate:"required"`
	CompletionDate string  `json:"completionDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate     *string `json:"expiryDate" validate:"omitnil,datetime=2006-01-02"`
	CertificateURL *string `json:"certificateUrl"`
}

func (in *TrainingRecordInput) normalize() {
	in.TrainingName = strings.TrimSpace(in.TrainingName)
	in.CompletionDate = strings.TrimSpace(in.CompletionDate)
	in.ExpiryDate = trimOptional(in.ExpiryDate)
	in.CertificateURL = trimOptional(in.CertificateURL)
}

// trimOptional maps blank optional values to nil so "" and null mean the same thing.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
