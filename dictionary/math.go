package dictionary

import "github.com/shopspring/decimal"

var ZeroAmount = decimal.Zero //nolint: gochecknoglobals
