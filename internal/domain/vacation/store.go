package vacation

// Store is the in-memory collection of vacation requests and the single
// source of truth for them. Insertion order matches request id order; ids
// are assigned monotonically at append and never reused. Every read hands
// out an independent copy so callers cannot mutate stored state behind the
// lifecycle's back. Like the Ledger, the Store relies on the Service for
// serialization.
type Store struct {
	requests []VacationRequest
	index    map[int]int
	nextID   int
}

func NewStore() *Store {
	return &Store{index: make(map[int]int), nextID: 1}
}

// Append assigns the next sequential id and stores the record, returning
// the stored copy.
func (s *Store) Append(req VacationRequest) VacationRequest {
	req.ID = s.nextID
	s.nextID++
	s.index[req.ID] = len(s.requests)
	s.requests = append(s.requests, req)
	return cloneRequest(req)
}

func (s *Store) FindByID(id int) (VacationRequest, bool) {
	i, ok := s.index[id]
	if !ok {
		return VacationRequest{}, false
	}
	return cloneRequest(s.requests[i]), true
}

// Update replaces the stored record with the same id. Only the lifecycle's
// decision path writes through here.
func (s *Store) Update(req VacationRequest) bool {
	i, ok := s.index[req.ID]
	if !ok {
		return false
	}
	s.requests[i] = cloneRequest(req)
	return true
}

func (s *Store) FilterByApplicant(employeeID int) []VacationRequest {
	var out []VacationRequest
	for _, req := range s.requests {
		if req.Applicant == employeeID {
			out = append(out, cloneRequest(req))
		}
	}
	return out
}

func (s *Store) FilterByStatus(status string) []VacationRequest {
	var out []VacationRequest
	for _, req := range s.requests {
		if req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	return out
}

func (s *Store) All() []VacationRequest {
	out := make([]VacationRequest, 0, len(s.requests))
	for _, req := range s.requests {
		out = append(out, cloneRequest(req))
	}
	return out
}

func (s *Store) Len() int {
	return len(s.requests)
}

func cloneRequest(req VacationRequest) VacationRequest {
	if req.ProcessedBy != nil {
		processedBy := *req.ProcessedBy
		req.ProcessedBy = &processedBy
	}
	return req
}
