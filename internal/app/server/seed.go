package server

import (
	"context"

	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/platform/logger"
)

// Seed loads the demo data set when no employees exist yet.
func Seed(ctx context.Context, svc Services) error {
	existing, err := svc.Employees.ListEmployees(ctx)
	if err != nil {
		return errors.Wrap(err, "seed: list employees")
	}
	if len(existing) > 0 {
		return nil
	}
	log := logger.FromContext(ctx)
	log.Info().Msg("seeding demo data")

	active := true
	safety, err := svc.Employees.CreateEmployee(ctx, contract.EmployeeInput{
		FirstName:  "Khensani",
		LastName:   "Ntulo",
		Email:      "k.ntulo@devpulse-hr.com",
		IDNumber:   "8501015000087",
		Position:   "Senior Safety Consultant",
		Department: "Risk Management",
		IsActive:   &active,
	})
	if err != nil {
		return errors.Wrap(err, "seed: employee")
	}
	if _, err := svc.Employees.CreateEmployee(ctx, contract.EmployeeInput{
		FirstName:  "Thabo",
		LastName:   "Molefe",
		Email:      "t.molefe@devpulse-hr.com",
		IDNumber:   "9005050055081",
		Position:   "HR Operations Lead",
		Department: "Human Resources",
		IsActive:   &active,
	}); err != nil {
		return errors.Wrap(err, "seed: employee")
	}

	if _, err := svc.Leave.CreateRequest(ctx, contract.LeaveRequestInput{
		EmployeeID: safety.ID,
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-05",
		Type:       contract.LeaveTypeAnnual,
		Reason:     "Family holiday",
	}); err != nil {
		return errors.Wrap(err, "seed: leave request")
	}

	if _, err := svc.Discipline.CreateRecord(ctx, contract.DisciplinaryRecordInput{
		EmployeeID:   safety.ID,
		IncidentDate: "2024-02-15",
		Description:  "Late arrival for safety briefing",
		ActionTaken:  "Verbal Warning",
	}); err != nil {
		return errors.Wrap(err, "seed: disciplinary record")
	}

	expiry := "2026-01-10"
	if _, err := svc.Training.CreateRecord(ctx, contract.TrainingRecordInput{
		EmployeeID:     safety.ID,
		TrainingName:   "First Aid Level 1",
		CompletionDate: "2024-01-10",
		ExpiryDate:     &expiry,
	}); err != nil {
		return errors.Wrap(err, "seed: training record")
	}

	log.Info().Msg("demo data seeded")
	return nil
}
