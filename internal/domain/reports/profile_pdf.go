package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/domain/training"
)

// ProfilePDF renders a one page employee profile with leave, disciplinary and training history.
func (s *Service) ProfilePDF(ctx context.Context, id int64, today time.Time) ([]byte, error) {
	details, err := s.Details(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("%s %s", details.FirstName, details.LastName)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	status := "Active"
	if !details.IsActive {
		status = "Inactive"
	}
	for _, line := range []string{
		fmt.Sprintf("Position: %s", details.Position),
		fmt.Sprintf("Department: %s", details.Department),
		fmt.Sprintf("Email: %s", details.Email),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("On record since: %s", contract.FormatDate(details.CreatedAt)),
	} {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	section(pdf, "Leave requests")
	if len(details.LeaveRequests) == 0 {
		emptyRow(pdf)
	}
	for _, req := range details.LeaveRequests {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s to %s  %s  %s  %s", req.StartDate, req.EndDate, req.Type, req.Status, req.Reason)))
		pdf.Ln(6)
	}

	section(pdf, "Disciplinary records")
	if len(details.DisciplinaryRecords) == 0 {
		emptyRow(pdf)
	}
	for _, rec := range details.DisciplinaryRecords {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s  %s  (%s)", rec.IncidentDate, rec.Description, rec.ActionTaken)))
		pdf.Ln(6)
	}

	section(pdf, "Training")
	if len(details.TrainingRecords) == 0 {
		emptyRow(pdf)
	}
	for _, rec := range details.TrainingRecords {
		line := fmt.Sprintf("%s  completed %s", rec.TrainingName, rec.CompletionDate)
		if rec.ExpiryDate != nil {
			line += fmt.Sprintf(", expires %s", *rec.ExpiryDate)
			if training.Expired(rec, today) {
				line += " (expired)"
			}
		}
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render profile pdf")
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func emptyRow(pdf *gofpdf.Fpdf) {
	pdf.Cell(0, 6, "None")
	pdf.Ln(6)
}
