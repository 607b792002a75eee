package vacation

import "testing"

func TestLedgerDebitAndCredit(t *testing.T) {
	ledger := NewLedger([]Employee{{ID: 1, Name: "John Doe"}}, 20)

	if err := ledger.Debit(1, 5); err != nil {
		t.Fatalf("unexpected debit error: %v", err)
	}
	balance, err := ledger.Balance(1)
	if err != nil {
		t.Fatalf("unexpected balance error: %v", err)
	}
	if balance != 15 {
		t.Fatalf("expected balance 15 after debit, got %d", balance)
	}

	if err := ledger.Credit(1, 5); err != nil {
		t.Fatalf("unexpected credit error: %v", err)
	}
	balance, _ = ledger.Balance(1)
	if balance != 20 {
		t.Fatalf("expected balance restored to 20, got %d", balance)
	}
}

func TestLedgerDebitOverdraw(t *testing.T) {
	ledger := NewLedger([]Employee{{ID: 1, Name: "John Doe"}}, 3)

	if err := ledger.Debit(1, 4); err != ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	balance, _ := ledger.Balance(1)
	if balance != 3 {
		t.Fatalf("expected balance unchanged at 3, got %d", balance)
	}
}

func TestLedgerUnknownEmployee(t *testing.T) {
	ledger := NewLedger(nil, 20)

	if _, err := ledger.Balance(42); err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound from Balance, got %v", err)
	}
	if err := ledger.Debit(42, 1); err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound from Debit, got %v", err)
	}
	if err := ledger.Credit(42, 1); err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound from Credit, got %v", err)
	}
}
