package reports

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"hrdesk/internal/platform/logger"
)

const (
	sheetEmployees  = "Employees"
	sheetLeave      = "Leave Requests"
	sheetDiscipline = "Disciplinary Records"
	sheetTraining   = "Training Records"
)

var (
	employeeHeaders   = []string{"ID", "First name", "Last name", "Email", "ID Number", "Position", "Department", "Active", "Created at"}
	leaveHeaders      = []string{"ID", "Employee", "Start date", "End date", "Type", "Reason", "Status", "Created at"}
	disciplineHeaders = []string{"ID", "Employee", "Incident date", "Description", "Action taken", "Created at"}
	trainingHeaders   = []string{"ID", "Employee", "Training", "Completed", "Expires", "Certificate", "Created at"}
)

// WorkforceWorkbook exports every record kind to an xlsx workbook, one sheet per kind.
func (s *Service) WorkforceWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	employees, err := s.Employees.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.Leave.ListRequests(ctx)
	if err != nil {
		return nil, err
	}
	incidents, err := s.Discipline.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	trainings, err := s.Training.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("close workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetEmployees); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}
	for _, name := range []string{sheetLeave, sheetDiscipline, sheetTraining} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "add sheet %s", name)
		}
	}

	employeeRows := make([][]any, 0, len(employees))
	for _, e := range employees {
		employeeRows = append(employeeRows, []any{e.ID, e.FirstName, e.LastName, e.Email, e.IDNumber, e.Position, e.Department, e.IsActive, e.CreatedAt})
	}
	leaveRows := make([][]any, 0, len(requests))
	for _, r := range requests {
		leaveRows = append(leaveRows, []any{r.ID, r.EmployeeID, r.StartDate, r.EndDate, r.Type, r.Reason, string(r.Status), r.CreatedAt})
	}
	disciplineRows := make([][]any, 0, len(incidents))
	for _, r := range incidents {
		disciplineRows = append(disciplineRows, []any{r.ID, r.EmployeeID, r.IncidentDate, r.Description, r.ActionTaken, r.CreatedAt})
	}
	trainingRows := make([][]any, 0, len(trainings))
	for _, r := range trainings {
		trainingRows = append(trainingRows, []any{r.ID, r.EmployeeID, r.TrainingName, r.CompletionDate, optional(r.ExpiryDate), optional(r.CertificateURL), r.CreatedAt})
	}

	for _, sheet := range []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{sheetEmployees, employeeHeaders, employeeRows},
		{sheetLeave, leaveHeaders, leaveRows},
		{sheetDiscipline, disciplineHeaders, disciplineRows},
		{sheetTraining, trainingHeaders, trainingRows},
	} {
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows); err != nil {
			return nil, errors.Wrapf(err, "write sheet %s", sheet.name)
		}
	}
	return f.WriteToBuffer()
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return err
	}

	for idx, value := range headers {
		if err := writeCell(f, sheet, idx+1, 1, value); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, value := range row {
			if err := writeCell(f, sheet, c+1, r+2, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
