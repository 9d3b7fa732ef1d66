package storage

import (
	"sync"

	"github.com/shopspring/decimal"
	goAtomic "go.uber.org/atomic"

	"github.com/soulgarden/vaultd/dictionary"
)

// Ledger holds per-principal reference-asset balances and the running
// aggregate of everything locked in custody. The aggregate is maintained in
// lock-step with every balance mutation, never derived by summation.
type Ledger struct {
	mx       sync.RWMutex
	balances map[string]decimal.Decimal
	locked   decimal.Decimal
	bankCap  decimal.Decimal

	Deposits    *goAtomic.Uint64
	Withdrawals *goAtomic.Uint64
}

func NewLedger(bankCap decimal.Decimal) *Ledger {
	return &Ledger{
		balances:    make(map[string]decimal.Decimal),
		locked:      decimal.Zero,
		bankCap:     bankCap,
		Deposits:    goAtomic.NewUint64(0),
		Withdrawals: goAtomic.NewUint64(0),
	}
}

// Credit increases the principal's balance and the aggregate by amount.
// The cap check precedes any mutation; a failed credit changes nothing.
func (l *Ledger) Credit(principal string, amount decimal.Decimal) error {
	l.mx.Lock()
	defer l.mx.Unlock()

	if l.locked.Add(amount).GreaterThan(l.bankCap) {
		return dictionary.ErrCapExceeded
	}

	l.balances[principal] = l.balances[principal].Add(amount)
	l.locked = l.locked.Add(amount)

	return nil
}

// Debit decreases the principal's balance and the aggregate by amount. The
// aggregate is clamped at zero to tolerate accounting drift instead of
// underflowing.
func (l *Ledger) Debit(principal string, amount decimal.Decimal) error {
	l.mx.Lock()
	defer l.mx.Unlock()

	balance := l.balances[principal]
	if amount.GreaterThan(balance) {
		return dictionary.ErrInsufficientFunds
	}

	l.balances[principal] = balance.Sub(amount)

	l.locked = l.locked.Sub(amount)
	if l.locked.IsNegative() {
		l.locked = decimal.Zero
	}

	return nil
}

// Restore re-credits a debited amount after a failed external transfer. It
// bypasses the cap check: the funds never left custody, so the pre-debit
// state is by definition within the cap.
func (l *Ledger) Restore(principal string, amount decimal.Decimal) {
	l.mx.Lock()
	defer l.mx.Unlock()

	l.balances[principal] = l.balances[principal].Add(amount)
	l.locked = l.locked.Add(amount)
}

func (l *Ledger) Balance(principal string) decimal.Decimal {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.balances[principal]
}

func (l *Ledger) Locked() decimal.Decimal {
	l.mx.RLock()
	defer l.mx.RUnlock()

	return l.locked
}

// SumOfBalances recomputes the aggregate the slow way. It exists for
// invariant checks, not for the hot path.
func (l *Ledger) SumOfBalances() decimal.Decimal {
	l.mx.RLock()
	defer l.mx.RUnlock()

	sum := decimal.Zero
	for _, balance := range l.balances {
		sum = sum.Add(balance)
	}

	return sum
}
