package service

import "github.com/shopspring/decimal"

// Domain events published to the event broker after a state change has
// been committed. Subscribers must not assume ordering across principals.

type DepositCompleted struct {
	OperationID string
	Principal   string
	Asset       string
	AmountIn    decimal.Decimal
	Credited    decimal.Decimal
}

type WithdrawalCompleted struct {
	OperationID string
	Principal   string
	Destination string
	Amount      decimal.Decimal
}

type ConversionCompleted struct {
	Principal string
	Asset     string
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
	Route     []string
}

type EmergencyRecovery struct {
	Actor       string
	Asset       string
	Destination string
	Amount      decimal.Decimal
}

type GatePaused struct {
	Actor string
}

type GateResumed struct {
	Actor string
}
