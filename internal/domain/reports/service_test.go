package reports

import (
	"bytes"
	"testing"
	"time"

	"vacations/internal/domain/vacation"
)

func newTestReports() (*Service, *vacation.Service) {
	employees := []vacation.Employee{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
	}
	managers := []vacation.Manager{{ID: 1, Name: "Manager 1"}}
	svc := vacation.NewService(
		vacation.NewDirectory(employees, managers),
		vacation.NewLedger(employees, 20),
		vacation.NewStore(),
		false,
	)
	return NewService(svc), svc
}

func TestEmployeeOverviews(t *testing.T) {
	reports, svc := newTestReports()

	first, err := svc.Submit(1,
		time.Date(2020, 8, 24, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 8, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if _, err := svc.Decide(first.ID, 1, vacation.StatusApproved); err != nil {
		t.Fatalf("unexpected decide error: %v", err)
	}
	if _, err := svc.Submit(1,
		time.Date(2020, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 9, 8, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}

	rows := reports.EmployeeOverviews()
	if len(rows) != 2 {
		t.Fatalf("expected 2 overview rows, got %d", len(rows))
	}
	if rows[0].EmployeeID != 1 || rows[1].EmployeeID != 2 {
		t.Fatalf("expected rows ordered by employee id, got %+v", rows)
	}
	if rows[0].Approved != 1 || rows[0].Pending != 1 || rows[0].RemainingDays != 13 {
		t.Fatalf("unexpected overview for employee 1: %+v", rows[0])
	}
	if rows[1].Pending != 0 || rows[1].RemainingDays != 20 {
		t.Fatalf("unexpected overview for employee 2: %+v", rows[1])
	}
}

func TestOverviewPDF(t *testing.T) {
	reports, _ := newTestReports()

	data, err := reports.OverviewPDF()
	if err != nil {
		t.Fatalf("unexpected pdf error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}
