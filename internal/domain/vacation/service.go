package vacation

import (
	"sync"
	"time"
)

// Service runs the request lifecycle: it validates and creates requests
// against the ledger, applies manager decisions, and enforces the
// pending -> approved|rejected state machine. A single coarse mutex
// serializes every operation so that Submit's balance-check/debit/append
// sequence and Decide's status-check/mutate sequence are atomic with
// respect to concurrent callers.
type Service struct {
	mu        sync.Mutex
	directory *Directory
	ledger    *Ledger
	store     *Store

	// refundOnReject credits the debited business days back to the
	// applicant when a request is rejected. Off by default: the reference
	// behavior keeps rejected days spent.
	refundOnReject bool

	now func() time.Time
}

func NewService(directory *Directory, ledger *Ledger, store *Store, refundOnReject bool) *Service {
	return &Service{
		directory:      directory,
		ledger:         ledger,
		store:          store,
		refundOnReject: refundOnReject,
		now:            time.Now,
	}
}

// Submit validates and creates a new pending request, debiting the
// applicant's balance by the request's business-day duration.
func (s *Service) Submit(employeeID int, start, end time.Time) (VacationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory.Employee(employeeID); !ok {
		return VacationRequest{}, ErrEmployeeNotFound
	}

	days, err := CountBusinessDays(start, end)
	if err != nil {
		return VacationRequest{}, err
	}

	balance, err := s.ledger.Balance(employeeID)
	if err != nil {
		return VacationRequest{}, err
	}
	if balance < days {
		return VacationRequest{}, ErrInsufficientBalance
	}
	if err := s.ledger.Debit(employeeID, days); err != nil {
		return VacationRequest{}, err
	}

	return s.store.Append(VacationRequest{
		Applicant:   employeeID,
		Status:      StatusPending,
		SubmittedAt: s.now(),
		StartDate:   start,
		EndDate:     end,
		Days:        days,
	}), nil
}

// Decide applies a manager's approve/reject decision to a pending request.
// Decisions are terminal: a processed request never transitions again.
func (s *Service) Decide(requestID, managerID int, decision string) (VacationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.directory.IsManager(managerID) {
		return VacationRequest{}, ErrNotManager
	}
	if decision != StatusApproved && decision != StatusRejected {
		return VacationRequest{}, ErrInvalidStatus
	}

	req, ok := s.store.FindByID(requestID)
	if !ok {
		return VacationRequest{}, ErrRequestNotFound
	}
	if req.Status != StatusPending {
		return VacationRequest{}, ErrAlreadyProcessed
	}

	req.Status = decision
	req.ProcessedBy = &managerID

	if decision == StatusRejected && s.refundOnReject {
		if err := s.ledger.Credit(req.Applicant, req.Days); err != nil {
			return VacationRequest{}, err
		}
	}

	s.store.Update(req)
	return req, nil
}

// IsManager reports whether the given id belongs to a registered manager.
func (s *Service) IsManager(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.IsManager(id)
}

// Balance returns the employee's remaining vacation days.
func (s *Service) Balance(employeeID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Balance(employeeID)
}

// Employees returns the seeded roster ordered by id.
func (s *Service) Employees() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.directory.Employees()
}

// RequestsByApplicant lists an employee's requests in submission order,
// optionally narrowed to a status. Unknown employees yield an empty list.
func (s *Service) RequestsByApplicant(employeeID int, status string) []VacationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	requests := s.store.FilterByApplicant(employeeID)
	if status == "" {
		return requests
	}
	return filterStatus(requests, status)
}

// AllRequests lists every stored request in submission order, optionally
// narrowed to a status.
func (s *Service) AllRequests(status string) []VacationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" {
		return s.store.All()
	}
	return s.store.FilterByStatus(status)
}

func filterStatus(requests []VacationRequest, status string) []VacationRequest {
	var out []VacationRequest
	for _, req := range requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out
}
