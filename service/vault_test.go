package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/dictionary"
	"github.com/soulgarden/vaultd/storage"
)

type fakeConverter struct {
	out       decimal.Decimal
	err       error
	calls     int
	onConvert func()
}

func (f *fakeConverter) Convert(
	_ context.Context,
	_, _ string,
	_, _ decimal.Decimal,
) (decimal.Decimal, error) {
	f.calls++

	if f.onConvert != nil {
		f.onConvert()
	}

	return f.out, f.err
}

type fakeGate struct {
	active bool
}

func (f *fakeGate) IsActive() bool {
	return f.active
}

type fakeKeyring struct {
	operators map[string]bool
}

func (f *fakeKeyring) HasCapability(actor, capability string) bool {
	if capability != dictionary.CapabilityOperator {
		return false
	}

	return f.operators[actor]
}

type vaultFixture struct {
	vault     *Vault
	ledger    *storage.Ledger
	converter *fakeConverter
	mover     *fakeMover
	router    *fakeRouter
	gate      *fakeGate
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	logger := zerolog.Nop()

	f := &vaultFixture{
		ledger:    storage.NewLedger(decimal.RequireFromString("100000")),
		converter: &fakeConverter{out: decimal.RequireFromString("100")},
		mover:     &fakeMover{},
		router:    &fakeRouter{},
		gate:      &fakeGate{active: true},
	}

	vault, err := NewVault(
		Config{
			WithdrawLimit:  decimal.RequireFromString("10000"),
			BankCap:        decimal.RequireFromString("100000"),
			ReferenceAsset: "REF",
			BridgeAsset:    "BRIDGE",
			CustodyAccount: "custody",
		},
		f.ledger,
		f.converter,
		f.mover,
		f.router,
		f.gate,
		&fakeKeyring{operators: map[string]bool{"ops": true}},
		broker.New(&logger),
		&logger,
	)
	require.NoError(t, err)

	f.vault = vault

	return f
}

func TestNewVault_Validation(t *testing.T) {
	t.Parallel()

	valid := Config{
		WithdrawLimit:  decimal.RequireFromString("10000"),
		BankCap:        decimal.RequireFromString("100000"),
		ReferenceAsset: "REF",
		BridgeAsset:    "BRIDGE",
		CustodyAccount: "custody",
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero withdraw limit", mutate: func(c *Config) { c.WithdrawLimit = decimal.Zero }},
		{name: "negative bank cap", mutate: func(c *Config) { c.BankCap = decimal.RequireFromString("-1") }},
		{name: "empty reference asset", mutate: func(c *Config) { c.ReferenceAsset = "" }},
		{name: "empty bridge asset", mutate: func(c *Config) { c.BridgeAsset = "" }},
		{name: "empty custody account", mutate: func(c *Config) { c.CustodyAccount = "" }},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			logger := zerolog.Nop()

			_, err := NewVault(cfg, nil, nil, nil, nil, nil, nil, broker.New(&logger), &logger)
			assert.ErrorIs(t, err, dictionary.ErrInvalidParameter)
		})
	}
}

func TestVault_Deposit(t *testing.T) {
	t.Parallel()

	t.Run("reference asset is credited as-is", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		result, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"REF",
			decimal.RequireFromString("1000"),
			decimal.Zero,
		)
		require.NoError(t, err)

		assert.True(t, result.Credited.Equal(decimal.RequireFromString("1000")))
		assert.Equal(t, 1, f.mover.transferIns)
		assert.Equal(t, 0, f.converter.calls)
		assert.True(t, f.ledger.Balance("alice").Equal(decimal.RequireFromString("1000")))
		assert.Equal(t, uint64(1), f.ledger.Deposits.Load())
	})

	t.Run("other assets go through conversion", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		f.converter.out = decimal.RequireFromString("42.5")

		result, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"ABC",
			decimal.RequireFromString("10"),
			decimal.Zero,
		)
		require.NoError(t, err)

		assert.True(t, result.Credited.Equal(decimal.RequireFromString("42.5")))
		assert.Equal(t, 1, f.converter.calls)
		assert.Equal(t, 0, f.mover.transferIns)
		assert.True(t, f.ledger.Balance("alice").Equal(decimal.RequireFromString("42.5")))
	})

	t.Run("native deposits convert like any other asset", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		_, err := f.vault.Deposit(
			context.Background(),
			"alice",
			dictionary.NativeAsset,
			decimal.RequireFromString("1"),
			decimal.Zero,
		)
		require.NoError(t, err)

		assert.Equal(t, 1, f.converter.calls)
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		_, err := f.vault.Deposit(context.Background(), "alice", "REF", decimal.Zero, decimal.Zero)
		assert.ErrorIs(t, err, dictionary.ErrZeroAmount)
		assert.Equal(t, 0, f.mover.transferIns)
	})

	t.Run("paused vault rejects deposits", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		f.gate.active = false

		_, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"REF",
			decimal.RequireFromString("1"),
			decimal.Zero,
		)
		assert.ErrorIs(t, err, dictionary.ErrInactive)
	})

	t.Run("cap exceeded after conversion leaves ledger unchanged", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		f.converter.out = decimal.RequireFromString("100001")

		_, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"ABC",
			decimal.RequireFromString("10"),
			decimal.Zero,
		)
		assert.ErrorIs(t, err, dictionary.ErrCapExceeded)
		assert.True(t, f.ledger.Balance("alice").IsZero())
		assert.True(t, f.ledger.Locked().IsZero())
		assert.Equal(t, uint64(0), f.ledger.Deposits.Load())
	})

	t.Run("nested operation is rejected", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		var nestedErr error

		f.converter.onConvert = func() {
			_, nestedErr = f.vault.Withdraw(
				context.Background(),
				"alice",
				"dest",
				decimal.RequireFromString("1"),
			)
		}

		_, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"ABC",
			decimal.RequireFromString("10"),
			decimal.Zero,
		)
		require.NoError(t, err)

		assert.ErrorIs(t, nestedErr, dictionary.ErrReentrantCall)
	})
}

func TestVault_Withdraw(t *testing.T) {
	t.Parallel()

	deposit := func(t *testing.T, f *vaultFixture, amount string) {
		t.Helper()

		_, err := f.vault.Deposit(
			context.Background(),
			"alice",
			"REF",
			decimal.RequireFromString(amount),
			decimal.Zero,
		)
		require.NoError(t, err)
	}

	t.Run("pays out and debits the balance", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "1000")

		_, err := f.vault.Withdraw(context.Background(), "alice", "dest", decimal.RequireFromString("400"))
		require.NoError(t, err)

		assert.Equal(t, 1, f.mover.transferOuts)
		assert.True(t, f.ledger.Balance("alice").Equal(decimal.RequireFromString("600")))
		assert.Equal(t, uint64(1), f.ledger.Withdrawals.Load())
	})

	t.Run("full balance can be withdrawn", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "1000")

		_, err := f.vault.Withdraw(context.Background(), "alice", "dest", decimal.RequireFromString("1000"))
		require.NoError(t, err)

		assert.True(t, f.ledger.Balance("alice").IsZero())
		assert.True(t, f.ledger.Locked().IsZero())
	})

	t.Run("per-withdrawal limit is enforced", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "20000")

		_, err := f.vault.Withdraw(
			context.Background(),
			"alice",
			"dest",
			decimal.RequireFromString("10001"),
		)
		assert.ErrorIs(t, err, dictionary.ErrWithdrawLimitExceeded)
		assert.Equal(t, 0, f.mover.transferOuts)
		assert.True(t, f.ledger.Balance("alice").Equal(decimal.RequireFromString("20000")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "100")

		_, err := f.vault.Withdraw(context.Background(), "alice", "dest", decimal.RequireFromString("101"))
		assert.ErrorIs(t, err, dictionary.ErrInsufficientFunds)
		assert.Equal(t, 0, f.mover.transferOuts)
	})

	t.Run("failed payout restores the balance", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "1000")

		f.mover.outErr = dictionary.ErrTransferFailed

		_, err := f.vault.Withdraw(context.Background(), "alice", "dest", decimal.RequireFromString("400"))
		assert.ErrorIs(t, err, dictionary.ErrTransferFailed)
		assert.True(t, f.ledger.Balance("alice").Equal(decimal.RequireFromString("1000")))
		assert.True(t, f.ledger.Locked().Equal(decimal.RequireFromString("1000")))
		assert.Equal(t, uint64(0), f.ledger.Withdrawals.Load())
	})

	t.Run("aggregate tracks the sum of balances", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)
		deposit(t, f, "1000")

		_, err := f.vault.Deposit(
			context.Background(),
			"bob",
			"REF",
			decimal.RequireFromString("500"),
			decimal.Zero,
		)
		require.NoError(t, err)

		_, err = f.vault.Withdraw(context.Background(), "alice", "dest", decimal.RequireFromString("300"))
		require.NoError(t, err)

		assert.True(t, f.ledger.Locked().Equal(f.ledger.SumOfBalances()))
	})
}

func TestVault_EmergencyWithdraw(t *testing.T) {
	t.Parallel()

	t.Run("requires the operator capability", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		err := f.vault.EmergencyWithdraw(
			context.Background(),
			"mallory",
			"REF",
			"dest",
			decimal.RequireFromString("1"),
		)
		assert.ErrorIs(t, err, dictionary.ErrUnauthorized)
		assert.Equal(t, 0, f.mover.transferOuts)
	})

	t.Run("moves custody funds without touching the ledger", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		err := f.vault.EmergencyWithdraw(
			context.Background(),
			"ops",
			"REF",
			"dest",
			decimal.RequireFromString("42"),
		)
		require.NoError(t, err)

		assert.Equal(t, 1, f.mover.transferOuts)
		assert.True(t, f.ledger.Locked().IsZero())
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		err := f.vault.EmergencyWithdraw(context.Background(), "ops", "REF", "dest", decimal.Zero)
		assert.ErrorIs(t, err, dictionary.ErrZeroAmount)
	})

	t.Run("destination is required", func(t *testing.T) {
		t.Parallel()

		f := newVaultFixture(t)

		err := f.vault.EmergencyWithdraw(
			context.Background(),
			"ops",
			"REF",
			"",
			decimal.RequireFromString("1"),
		)
		assert.ErrorIs(t, err, dictionary.ErrInvalidParameter)
	})
}

func TestVault_Drift(t *testing.T) {
	t.Parallel()

	f := newVaultFixture(t)
	f.router.balances = []decimal.Decimal{decimal.RequireFromString("150")}

	_, err := f.vault.Deposit(
		context.Background(),
		"alice",
		"REF",
		decimal.RequireFromString("100"),
		decimal.Zero,
	)
	require.NoError(t, err)

	report, err := f.vault.Drift(context.Background())
	require.NoError(t, err)

	assert.True(t, report.CustodyTotal.Equal(decimal.RequireFromString("150")))
	assert.True(t, report.LedgerTotal.Equal(decimal.RequireFromString("100")))
	assert.True(t, report.Drift.Equal(decimal.RequireFromString("50")))
}
