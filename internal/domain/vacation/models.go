package vacation

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Manager struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type VacationRequest struct {
	ID          int       `json:"request_id"`
	Applicant   int       `json:"applicant"`
	Status      string    `json:"status"`
	ProcessedBy *int      `json:"processed_by"`
	SubmittedAt time.Time `json:"request_submitted_at"`
	StartDate   time.Time `json:"vacation_start_date"`
	EndDate     time.Time `json:"vacation_end_date"`

	// Days is the business-day count debited at submission. It is kept off
	// the wire; rejection refunds credit back exactly this amount.
	Days int `json:"-"`
}
