package dictionary

import "errors"

var ErrInvalidParameter = errors.New("invalid parameter")

var ErrZeroAmount = errors.New("amount must be positive")

var ErrCapExceeded = errors.New("bank cap exceeded")

var ErrWithdrawLimitExceeded = errors.New("withdraw limit exceeded")

var ErrInsufficientFunds = errors.New("insufficient funds")

var ErrNoRoute = errors.New("no conversion route to reference asset")

var ErrSwapFailed = errors.New("swap yielded zero output")

var ErrTransferFailed = errors.New("asset transfer rejected")

var ErrInactive = errors.New("vault is not active")

var ErrReentrantCall = errors.New("operation already in progress")

var ErrUnauthorized = errors.New("capability check failed")

var ErrParseAmount = errors.New("parse string as decimal")

var ErrResponse = errors.New("router error response")

var ErrCallTimeout = errors.New("router call timed out")

var ErrWsReadChannelClosed = errors.New("ws read channel closed")

var ErrEventChannelClosed = errors.New("event channel closed")

var ErrCantConvertInterfaceToBytes = errors.New("can't convert interface to bytes")

var ErrChannelOverflowed = errors.New("channel overflowed")
