package dictionary

import "time"

// Router protocol message types.
const (
	AuthType             = "auth"
	AuthorizeSpend       = "authorizeSpend"
	ExecuteSwap          = "executeSwap"
	GetPairsAndSubscribe = "getPairsAndSubscribe"
	GetCustodyBalance    = "getCustodyBalance"
	TransferIn           = "transferIn"
	TransferOut          = "transferOut"
	SubscribeOperations  = "subscribeOperations"
	OperationResult      = "operationResult"
)

// Operation kinds carried by the gateway stream.
const (
	OpDeposit           = "deposit"
	OpWithdraw          = "withdraw"
	OpEmergencyWithdraw = "emergencyWithdraw"
)

// Operation result statuses reported back to the gateway.
const (
	OpStatusCompleted = "completed"
	OpStatusFailed    = "failed"
)

// Capability tags checked through the keyring.
const (
	CapabilityOperator = "OPERATOR"
	CapabilityPauser   = "PAUSER"
	CapabilityAdmin    = "ADMIN"
)

// NativeAsset is the sentinel asset code for native-currency deposits.
const NativeAsset = "NATIVE"

// AmountScale is the number of fractional digits every ledger amount carries.
const AmountScale = 6

const DefaultIntBase = 10

const SignalChLen = 1024

const ShutDownDuration = time.Second * 15

const DumpFilePermissions = 0o644

// PairStateActive marks a liquidity pair as tradable in the registry.
const PairStateActive = 1
