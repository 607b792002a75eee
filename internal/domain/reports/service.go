package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"vacations/internal/domain/vacation"
)

// Service builds manager-facing summaries over the vacation lifecycle.
type Service struct {
	Vacations *vacation.Service
}

func NewService(vacations *vacation.Service) *Service {
	return &Service{Vacations: vacations}
}

type EmployeeOverview struct {
	EmployeeID    int    `json:"employeeId"`
	Name          string `json:"name"`
	RemainingDays int    `json:"remainingDays"`
	Pending       int    `json:"pending"`
	Approved      int    `json:"approved"`
	Rejected      int    `json:"rejected"`
}

// EmployeeOverviews returns one row per registered employee, ordered by id.
func (s *Service) EmployeeOverviews() []EmployeeOverview {
	employees := s.Vacations.Employees()
	out := make([]EmployeeOverview, 0, len(employees))
	for _, e := range employees {
		row := EmployeeOverview{EmployeeID: e.ID, Name: e.Name}
		if balance, err := s.Vacations.Balance(e.ID); err == nil {
			row.RemainingDays = balance
		}
		for _, req := range s.Vacations.RequestsByApplicant(e.ID, "") {
			switch req.Status {
			case vacation.StatusPending:
				row.Pending++
			case vacation.StatusApproved:
				row.Approved++
			case vacation.StatusRejected:
				row.Rejected++
			}
		}
		out = append(out, row)
	}
	return out
}

// OverviewPDF renders the per-employee overview as a printable report.
func (s *Service) OverviewPDF() ([]byte, error) {
	rows := s.EmployeeOverviews()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Vacation Overview")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 8, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Remaining", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Pending", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Approved", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 8, "Rejected", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(50, 8, fmt.Sprintf("%s (#%d)", row.Name, row.EmployeeID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.RemainingDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", row.Pending), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", row.Approved), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", row.Rejected), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
