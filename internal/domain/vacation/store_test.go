package vacation

import (
	"testing"
	"time"
)

func TestStoreAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first := store.Append(VacationRequest{Applicant: 1, Status: StatusPending})
	second := store.Append(VacationRequest{Applicant: 2, Status: StatusPending})

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 stored requests, got %d", store.Len())
	}
}

func TestStoreReadsReturnCopies(t *testing.T) {
	store := NewStore()
	manager := 7
	stored := store.Append(VacationRequest{
		Applicant:   1,
		Status:      StatusApproved,
		ProcessedBy: &manager,
		StartDate:   time.Date(2020, 8, 24, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2020, 8, 28, 0, 0, 0, 0, time.UTC),
	})

	stored.Status = StatusRejected
	*stored.ProcessedBy = 99

	reread, ok := store.FindByID(stored.ID)
	if !ok {
		t.Fatalf("expected request %d to exist", stored.ID)
	}
	if reread.Status != StatusApproved {
		t.Fatalf("mutating a returned record altered stored status: %s", reread.Status)
	}
	if *reread.ProcessedBy != 7 {
		t.Fatalf("mutating a returned record altered stored processed_by: %d", *reread.ProcessedBy)
	}
}

func TestStoreFilters(t *testing.T) {
	store := NewStore()
	store.Append(VacationRequest{Applicant: 1, Status: StatusPending})
	store.Append(VacationRequest{Applicant: 2, Status: StatusApproved})
	store.Append(VacationRequest{Applicant: 1, Status: StatusApproved})

	if got := store.FilterByApplicant(1); len(got) != 2 {
		t.Fatalf("expected 2 requests for applicant 1, got %d", len(got))
	}
	approved := store.FilterByStatus(StatusApproved)
	if len(approved) != 2 {
		t.Fatalf("expected 2 approved requests, got %d", len(approved))
	}
	if approved[0].ID > approved[1].ID {
		t.Fatal("expected filter results in insertion order")
	}
	if _, ok := store.FindByID(999); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
