package reports

import (
	"context"
	"sort"
	"time"

	"hrdesk/internal/contract"
	"hrdesk/internal/domain/core"
)

type EmployeeSource interface {
	ListEmployees(ctx context.Context) ([]contract.Employee, error)
	GetEmployee(ctx context.Context, id int64) (contract.Employee, bool, error)
}

type LeaveSource interface {
	ListRequests(ctx context.Context) ([]contract.LeaveRequest, error)
}

type DisciplineSource interface {
	ListRecords(ctx context.Context) ([]contract.DisciplinaryRecord, error)
}

type TrainingSource interface {
	ListRecords(ctx context.Context) ([]contract.TrainingRecord, error)
}

// Service derives read-only views from the record services. Every view is computed from
// full listings.
type Service struct {
	Employees  EmployeeSource
	Leave      LeaveSource
	Discipline DisciplineSource
	Training   TrainingSource
}

func NewService(employees EmployeeSource, leave LeaveSource, discipline DisciplineSource, training TrainingSource) *Service {
	return &Service{Employees: employees, Leave: leave, Discipline: discipline, Training: training}
}

// Summary computes the dashboard counters. today is compared as a calendar date.
func (s *Service) Summary(ctx context.Context, today time.Time) (contract.DashboardSummaryBody, error) {
	employees, err := s.Employees.ListEmployees(ctx)
	if err != nil {
		return contract.DashboardSummaryBody{}, err
	}
	requests, err := s.Leave.ListRequests(ctx)
	if err != nil {
		return contract.DashboardSummaryBody{}, err
	}
	incidents, err := s.Discipline.ListRecords(ctx)
	if err != nil {
		return contract.DashboardSummaryBody{}, err
	}

	out := contract.DashboardSummaryBody{DisciplinaryTotal: len(incidents), Departments: []contract.DepartmentCount{}}
	departments := map[string]int{}
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		out.ActiveEmployees++
		departments[emp.Department]++
	}
	day := contract.FormatDate(today)
	for _, req := range requests {
		if req.Status == contract.LeaveStatusPending {
			out.PendingLeave++
		}
		if req.Status == contract.LeaveStatusApproved && req.StartDate <= day && req.EndDate >= day {
			out.OnLeaveToday++
		}
	}
	for name, count := range departments {
		out.Departments = append(out.Departments, contract.DepartmentCount{Name: name, Count: count})
	}
	sort.Slice(out.Departments, func(i, j int) bool {
		if out.Departments[i].Count != out.Departments[j].Count {
			return out.Departments[i].Count > out.Departments[j].Count
		}
		return out.Departments[i].Name < out.Departments[j].Name
	})
	return out, nil
}

// Details returns the employee with every record that references it, most recent first.
func (s *Service) Details(ctx context.Context, id int64) (contract.EmployeeWithDetails, error) {
	emp, found, err := s.Employees.GetEmployee(ctx, id)
	if err != nil {
		return contract.EmployeeWithDetails{}, err
	}
	if !found {
		return contract.EmployeeWithDetails{}, core.ErrEmployeeNotFound
	}

	out := contract.EmployeeWithDetails{
		Employee:            emp,
		LeaveRequests:       []contract.LeaveRequest{},
		DisciplinaryRecords: []contract.DisciplinaryRecord{},
		TrainingRecords:     []contract.TrainingRecord{},
	}
	requests, err := s.Leave.ListRequests(ctx)
	if err != nil {
		return contract.EmployeeWithDetails{}, err
	}
	for _, req := range requests {
		if req.EmployeeID == id {
			out.LeaveRequests = append(out.LeaveRequests, req)
		}
	}
	incidents, err := s.Discipline.ListRecords(ctx)
	if err != nil {
		return contract.EmployeeWithDetails{}, err
	}
	for _, rec := range incidents {
		if rec.EmployeeID == id {
			out.DisciplinaryRecords = append(out.DisciplinaryRecords, rec)
		}
	}
	trainings, err := s.Training.ListRecords(ctx)
	if err != nil {
		return contract.EmployeeWithDetails{}, err
	}
	for _, rec := range trainings {
		if rec.EmployeeID == id {
			out.TrainingRecords = append(out.TrainingRecords, rec)
		}
	}
	return out, nil
}
