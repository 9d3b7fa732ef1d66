package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/dictionary"
	"github.com/soulgarden/vaultd/storage"
	"github.com/tevino/abool"
)

type depositKind int

const (
	depositNative depositKind = iota
	depositReference
	depositConvertible
)

// Gate lets operations check whether the vault accepts state changes.
type Gate interface {
	IsActive() bool
}

// Converter turns a deposited asset into the reference asset and reports
// the reference amount gained.
type Converter interface {
	Convert(
		ctx context.Context,
		principal, source string,
		amountIn, minAmountOut decimal.Decimal,
	) (decimal.Decimal, error)
}

type Config struct {
	WithdrawLimit  decimal.Decimal
	BankCap        decimal.Decimal
	ReferenceAsset string
	BridgeAsset    string
	CustodyAccount string
}

func (c *Config) validate() error {
	if !c.WithdrawLimit.IsPositive() {
		return fmt.Errorf("%w: withdraw limit must be positive", dictionary.ErrInvalidParameter)
	}

	if !c.BankCap.IsPositive() {
		return fmt.Errorf("%w: bank cap must be positive", dictionary.ErrInvalidParameter)
	}

	if c.ReferenceAsset == "" {
		return fmt.Errorf("%w: reference asset is required", dictionary.ErrInvalidParameter)
	}

	if c.BridgeAsset == "" {
		return fmt.Errorf("%w: bridge asset is required", dictionary.ErrInvalidParameter)
	}

	if c.CustodyAccount == "" {
		return fmt.Errorf("%w: custody account is required", dictionary.ErrInvalidParameter)
	}

	return nil
}

type DepositResult struct {
	OperationID string
	AcceptedIn  decimal.Decimal
	Credited    decimal.Decimal
}

type DriftReport struct {
	CustodyTotal decimal.Decimal
	LedgerTotal  decimal.Decimal
	Drift        decimal.Decimal
}

// Vault orchestrates deposits and withdrawals over the ledger, the
// exchange and the router. State-changing entry points are serialized
// through a try-lock: a second call while one is in flight, nested or
// concurrent, is rejected rather than queued.
type Vault struct {
	cfg         Config
	ledger      *storage.Ledger
	converter   Converter
	mover       AssetMover
	router      Router
	gate        Gate
	keyring     Keyring
	eventBroker *broker.Broker
	logger      *zerolog.Logger

	opInFlight *abool.AtomicBool
}

func NewVault(
	cfg Config,
	ledger *storage.Ledger,
	converter Converter,
	mover AssetMover,
	router Router,
	gate Gate,
	keyring Keyring,
	eventBroker *broker.Broker,
	logger *zerolog.Logger,
) (*Vault, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Vault{
		cfg:         cfg,
		ledger:      ledger,
		converter:   converter,
		mover:       mover,
		router:      router,
		gate:        gate,
		keyring:     keyring,
		eventBroker: eventBroker,
		logger:      logger,
		opInFlight:  abool.New(),
	}, nil
}

func (v *Vault) classify(asset string) depositKind {
	switch asset {
	case dictionary.NativeAsset:
		return depositNative
	case v.cfg.ReferenceAsset:
		return depositReference
	default:
		return depositConvertible
	}
}

// Deposit accepts amount of asset from the principal, converts it to the
// reference asset when needed and credits the principal's balance. The
// ledger credit is the sole cap enforcement point: a deposit that would
// push the aggregate over the bank cap is rejected after conversion, the
// converted funds stay in custody for emergency recovery.
func (v *Vault) Deposit(
	ctx context.Context,
	principal, asset string,
	amount, minAmountOut decimal.Decimal,
) (*DepositResult, error) {
	if !v.opInFlight.SetToIf(false, true) {
		return nil, dictionary.ErrReentrantCall
	}
	defer v.opInFlight.UnSet()

	if !v.gate.IsActive() {
		return nil, dictionary.ErrInactive
	}

	if !amount.IsPositive() {
		return nil, dictionary.ErrZeroAmount
	}

	if principal == "" {
		return nil, fmt.Errorf("%w: principal is required", dictionary.ErrInvalidParameter)
	}

	operationID := uuid.NewV4().String()
	kind := v.classify(asset)

	var credited decimal.Decimal

	var err error

	if kind == depositReference {
		if err = v.mover.TransferIn(ctx, asset, principal, amount); err != nil {
			return nil, err
		}

		credited = amount
	} else {
		credited, err = v.converter.Convert(ctx, principal, asset, amount, minAmountOut)
		if err != nil {
			return nil, err
		}
	}

	if err = v.ledger.Credit(principal, credited); err != nil {
		v.logger.Err(err).
			Str("operation_id", operationID).
			Str("principal", principal).
			Str("asset", asset).
			Str("credited", credited.String()).
			Msg("credit rejected, converted funds remain in custody")

		return nil, err
	}

	v.ledger.Deposits.Inc()

	v.logger.Info().
		Str("operation_id", operationID).
		Str("principal", principal).
		Str("asset", asset).
		Int("kind", int(kind)).
		Str("amount", amount.String()).
		Str("credited", credited.String()).
		Msg("deposit completed")

	v.eventBroker.Publish(DepositCompleted{
		OperationID: operationID,
		Principal:   principal,
		Asset:       asset,
		AmountIn:    amount,
		Credited:    credited,
	})

	return &DepositResult{OperationID: operationID, AcceptedIn: amount, Credited: credited}, nil
}

// Withdraw debits the principal's balance and pays the reference asset out
// to the destination. The debit happens before the external transfer and
// is restored if the transfer fails.
func (v *Vault) Withdraw(
	ctx context.Context,
	principal, destination string,
	amount decimal.Decimal,
) (string, error) {
	if !v.opInFlight.SetToIf(false, true) {
		return "", dictionary.ErrReentrantCall
	}
	defer v.opInFlight.UnSet()

	if !v.gate.IsActive() {
		return "", dictionary.ErrInactive
	}

	if !amount.IsPositive() {
		return "", dictionary.ErrZeroAmount
	}

	if destination == "" {
		return "", fmt.Errorf("%w: destination is required", dictionary.ErrInvalidParameter)
	}

	if amount.GreaterThan(v.cfg.WithdrawLimit) {
		return "", fmt.Errorf(
			"%w: %s > %s",
			dictionary.ErrWithdrawLimitExceeded,
			amount.String(),
			v.cfg.WithdrawLimit.String(),
		)
	}

	if err := v.ledger.Debit(principal, amount); err != nil {
		return "", err
	}

	operationID := uuid.NewV4().String()

	if err := v.mover.TransferOut(ctx, v.cfg.ReferenceAsset, destination, amount); err != nil {
		v.ledger.Restore(principal, amount)

		v.logger.Err(err).
			Str("operation_id", operationID).
			Str("principal", principal).
			Str("amount", amount.String()).
			Msg("payout failed, balance restored")

		return "", err
	}

	v.ledger.Withdrawals.Inc()

	v.logger.Info().
		Str("operation_id", operationID).
		Str("principal", principal).
		Str("destination", destination).
		Str("amount", amount.String()).
		Msg("withdrawal completed")

	v.eventBroker.Publish(WithdrawalCompleted{
		OperationID: operationID,
		Principal:   principal,
		Destination: destination,
		Amount:      amount,
	})

	return operationID, nil
}

// EmergencyWithdraw moves assets straight out of custody without touching
// the ledger. It exists to recover funds stranded by rejected credits or
// unroutable assets and is restricted to operators. It deliberately runs
// outside the operation lock so recovery works while an operation hangs.
func (v *Vault) EmergencyWithdraw(
	ctx context.Context,
	actor, asset, destination string,
	amount decimal.Decimal,
) error {
	if !v.keyring.HasCapability(actor, dictionary.CapabilityOperator) {
		return fmt.Errorf("%w: %s is not an operator", dictionary.ErrUnauthorized, actor)
	}

	if !amount.IsPositive() {
		return dictionary.ErrZeroAmount
	}

	if destination == "" {
		return fmt.Errorf("%w: destination is required", dictionary.ErrInvalidParameter)
	}

	if err := v.mover.TransferOut(ctx, asset, destination, amount); err != nil {
		return err
	}

	v.logger.Warn().
		Str("actor", actor).
		Str("asset", asset).
		Str("destination", destination).
		Str("amount", amount.String()).
		Msg("emergency withdrawal")

	v.eventBroker.Publish(EmergencyRecovery{
		Actor:       actor,
		Asset:       asset,
		Destination: destination,
		Amount:      amount,
	})

	return nil
}

// Drift compares the reference asset held in custody with the ledger
// aggregate. Positive drift is stranded value, negative drift means the
// books promise more than custody holds.
func (v *Vault) Drift(ctx context.Context) (*DriftReport, error) {
	custody, err := v.router.CustodyBalance(ctx, v.cfg.ReferenceAsset)
	if err != nil {
		return nil, err
	}

	ledgerTotal := v.ledger.Locked()

	return &DriftReport{
		CustodyTotal: custody,
		LedgerTotal:  ledgerTotal,
		Drift:        custody.Sub(ledgerTotal),
	}, nil
}
