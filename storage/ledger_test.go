package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/soulgarden/vaultd/dictionary"
)

func TestLedger_Credit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bankCap   string
		credits   []string
		wantErr   error
		wantTotal string
	}{
		{
			name:      "single credit under cap",
			bankCap:   "1000000",
			credits:   []string{"1000"},
			wantErr:   nil,
			wantTotal: "1000",
		},
		{
			name:      "credit exactly at cap",
			bankCap:   "1000",
			credits:   []string{"400", "600"},
			wantErr:   nil,
			wantTotal: "1000",
		},
		{
			name:      "credit over cap rejected",
			bankCap:   "1000",
			credits:   []string{"400", "601"},
			wantErr:   dictionary.ErrCapExceeded,
			wantTotal: "400",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewLedger(decimal.RequireFromString(tt.bankCap))

			var err error

			for _, amount := range tt.credits {
				err = l.Credit("alice", decimal.RequireFromString(amount))
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Credit() error = %v, want %v", err, tt.wantErr)
			}

			if !l.Locked().Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("Locked() = %s, want %s", l.Locked().String(), tt.wantTotal)
			}

			if !l.Balance("alice").Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("Balance() = %s, want %s", l.Balance("alice").String(), tt.wantTotal)
			}
		})
	}
}

func TestLedger_Debit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		credit      string
		debit       string
		wantErr     error
		wantBalance string
	}{
		{
			name:        "partial debit",
			credit:      "1000",
			debit:       "300",
			wantErr:     nil,
			wantBalance: "700",
		},
		{
			name:        "debit full balance",
			credit:      "1000",
			debit:       "1000",
			wantErr:     nil,
			wantBalance: "0",
		},
		{
			name:        "debit over balance rejected",
			credit:      "1000",
			debit:       "1000.000001",
			wantErr:     dictionary.ErrInsufficientFunds,
			wantBalance: "1000",
		},
		{
			name:        "debit from empty principal rejected",
			credit:      "0",
			debit:       "1",
			wantErr:     dictionary.ErrInsufficientFunds,
			wantBalance: "0",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewLedger(decimal.RequireFromString("1000000"))

			credit := decimal.RequireFromString(tt.credit)
			if credit.IsPositive() {
				if err := l.Credit("bob", credit); err != nil {
					t.Fatalf("Credit() error = %v", err)
				}
			}

			err := l.Debit("bob", decimal.RequireFromString(tt.debit))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Debit() error = %v, want %v", err, tt.wantErr)
			}

			if !l.Balance("bob").Equal(decimal.RequireFromString(tt.wantBalance)) {
				t.Errorf("Balance() = %s, want %s", l.Balance("bob").String(), tt.wantBalance)
			}
		})
	}
}

func TestLedger_AggregateMatchesSum(t *testing.T) {
	t.Parallel()

	l := NewLedger(decimal.RequireFromString("1000000"))

	if err := l.Credit("alice", decimal.RequireFromString("123.456789")); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}

	if err := l.Credit("bob", decimal.RequireFromString("876.543211")); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}

	if err := l.Debit("alice", decimal.RequireFromString("23.456789")); err != nil {
		t.Fatalf("Debit() error = %v", err)
	}

	if !l.Locked().Equal(l.SumOfBalances()) {
		t.Errorf("Locked() = %s, SumOfBalances() = %s", l.Locked().String(), l.SumOfBalances().String())
	}
}

func TestLedger_Restore(t *testing.T) {
	t.Parallel()

	l := NewLedger(decimal.RequireFromString("1000"))

	if err := l.Credit("alice", decimal.RequireFromString("1000")); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}

	if err := l.Debit("alice", decimal.RequireFromString("400")); err != nil {
		t.Fatalf("Debit() error = %v", err)
	}

	l.Restore("alice", decimal.RequireFromString("400"))

	if !l.Balance("alice").Equal(decimal.RequireFromString("1000")) {
		t.Errorf("Balance() = %s, want 1000", l.Balance("alice").String())
	}

	if !l.Locked().Equal(decimal.RequireFromString("1000")) {
		t.Errorf("Locked() = %s, want 1000", l.Locked().String())
	}
}

func TestDumpLedger_DumpRecover(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vault.state.json")

	l := NewLedger(decimal.RequireFromString("1000000"))

	if err := l.Credit("alice", decimal.RequireFromString("100.5")); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}

	if err := l.Credit("bob", decimal.RequireFromString("42.000001")); err != nil {
		t.Fatalf("Credit() error = %v", err)
	}

	l.Deposits.Store(2)
	l.Withdrawals.Store(1)

	if err := NewDumpLedger(l).Dump(path); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	recovered := NewLedger(decimal.RequireFromString("1000000"))

	if err := NewDumpLedger(recovered).Recover(path); err != nil {
		t.Fatalf("Recover() error = %v", err)
	}

	if !recovered.Balance("alice").Equal(decimal.RequireFromString("100.5")) {
		t.Errorf("Balance(alice) = %s, want 100.5", recovered.Balance("alice").String())
	}

	if !recovered.Balance("bob").Equal(decimal.RequireFromString("42.000001")) {
		t.Errorf("Balance(bob) = %s, want 42.000001", recovered.Balance("bob").String())
	}

	if !recovered.Locked().Equal(l.Locked()) {
		t.Errorf("Locked() = %s, want %s", recovered.Locked().String(), l.Locked().String())
	}

	if recovered.Deposits.Load() != 2 || recovered.Withdrawals.Load() != 1 {
		t.Errorf(
			"counters = %d/%d, want 2/1",
			recovered.Deposits.Load(),
			recovered.Withdrawals.Load(),
		)
	}
}

func BenchmarkLedger_Credit(b *testing.B) {
	l := NewLedger(decimal.New(1, 18))
	amount := decimal.RequireFromString("0.000001")

	for i := 0; i < b.N; i++ {
		if err := l.Credit("alice", amount); err != nil {
			b.Error(err)
			b.FailNow()
		}
	}
}
