package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/vaultd/dictionary"
)

// AssetMover moves assets between external accounts and custody.
type AssetMover interface {
	TransferIn(ctx context.Context, asset, from string, amount decimal.Decimal) error
	TransferOut(ctx context.Context, asset, to string, amount decimal.Decimal) error
}

// Mover backs AssetMover with router transfers. A rejected transfer leaves
// no partial state behind, the router either settles or refuses.
type Mover struct {
	wsSvc  AssetMover
	logger *zerolog.Logger
}

func NewMover(wsSvc *WS, logger *zerolog.Logger) *Mover {
	return &Mover{wsSvc: wsSvc, logger: logger}
}

func (m *Mover) TransferIn(ctx context.Context, asset, from string, amount decimal.Decimal) error {
	if err := m.wsSvc.TransferIn(ctx, asset, from, amount); err != nil {
		m.logger.Err(err).
			Str("asset", asset).
			Str("from", from).
			Str("amount", amount.String()).
			Msg("transfer in")

		return fmt.Errorf("%w: %s", dictionary.ErrTransferFailed, err.Error())
	}

	return nil
}

func (m *Mover) TransferOut(ctx context.Context, asset, to string, amount decimal.Decimal) error {
	if err := m.wsSvc.TransferOut(ctx, asset, to, amount); err != nil {
		m.logger.Err(err).
			Str("asset", asset).
			Str("to", to).
			Str("amount", amount.String()).
			Msg("transfer out")

		return fmt.Errorf("%w: %s", dictionary.ErrTransferFailed, err.Error())
	}

	return nil
}
