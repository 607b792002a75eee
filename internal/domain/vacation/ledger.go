package vacation

// Ledger owns the remaining-balance counter for every employee. Balances
// are expressed in business days and only the request lifecycle mutates
// them: Debit at submission, Credit to reverse a prior debit on rejection.
// The Ledger carries no lock of its own; the Service serializes access.
type Ledger struct {
	balances map[int]int
}

func NewLedger(employees []Employee, defaultDays int) *Ledger {
	l := &Ledger{balances: make(map[int]int, len(employees))}
	for _, e := range employees {
		l.balances[e.ID] = defaultDays
	}
	return l
}

func (l *Ledger) Balance(employeeID int) (int, error) {
	balance, ok := l.balances[employeeID]
	if !ok {
		return 0, ErrEmployeeNotFound
	}
	return balance, nil
}

func (l *Ledger) Debit(employeeID, days int) error {
	balance, ok := l.balances[employeeID]
	if !ok {
		return ErrEmployeeNotFound
	}
	if balance < days {
		return ErrInsufficientBalance
	}
	l.balances[employeeID] = balance - days
	return nil
}

func (l *Ledger) Credit(employeeID, days int) error {
	if _, ok := l.balances[employeeID]; !ok {
		return ErrEmployeeNotFound
	}
	l.balances[employeeID] += days
	return nil
}
