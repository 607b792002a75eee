package vacation

// OverlapPair is an unordered pair of approved requests from different
// applicants whose date ranges share at least one calendar day. First
// always carries the lower request id.
type OverlapPair struct {
	First  VacationRequest `json:"first"`
	Second VacationRequest `json:"second"`
}

// FindOverlaps scans a consistent snapshot of the store for overlapping
// approved requests. Each unordered pair appears exactly once, emitted in
// ascending (First.ID, Second.ID) order. The scan is O(n²) over the
// approved subset, which is fine at in-memory scale.
func (s *Service) FindOverlaps() []OverlapPair {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests := s.store.All()
	var pairs []OverlapPair
	for i := 0; i < len(requests); i++ {
		a := requests[i]
		if a.Status != StatusApproved {
			continue
		}
		for j := i + 1; j < len(requests); j++ {
			b := requests[j]
			if b.Status != StatusApproved || b.Applicant == a.Applicant {
				continue
			}
			if rangesOverlap(a, b) {
				pairs = append(pairs, OverlapPair{First: a, Second: b})
			}
		}
	}
	return pairs
}

// rangesOverlap treats ranges as inclusive on both ends, so touching
// endpoints count as overlapping.
func rangesOverlap(a, b VacationRequest) bool {
	return !a.StartDate.After(b.EndDate) && !b.StartDate.After(a.EndDate)
}
