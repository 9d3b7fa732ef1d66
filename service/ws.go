package service

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/client"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/dictionary"
)

type WS struct {
	cfg         *conf.Vault
	logger      *zerolog.Logger
	eventBroker *broker.Broker
	cli         *client.Client
}

func NewWS(cfg *conf.Vault, eventBroker *broker.Broker, logger *zerolog.Logger) *WS {
	return &WS{cfg: cfg, eventBroker: eventBroker, logger: logger}
}

func (s *WS) Connect(interrupt chan<- os.Signal) error {
	var err error

	s.cli, err = client.NewWsCli(s.cfg, interrupt, s.logger)
	if err != nil {
		s.logger.Err(err).Msg("connection error")

		return err
	}

	err = s.cli.Auth()
	if err != nil {
		s.logger.Err(err).Msg("auth error")

		return err
	}

	return nil
}

func (s *WS) Start(ctx context.Context) error {
	s.logger.Warn().Msg("start listen ws")
	defer s.logger.Warn().Msg("stop listen ws")

	for {
		select {
		case msg, ok := <-s.cli.ReadCh:
			if !ok {
				s.logger.Err(dictionary.ErrWsReadChannelClosed).Msg("read channel closed")

				return dictionary.ErrWsReadChannelClosed
			}

			s.eventBroker.Publish(msg)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *WS) Authorize(ctx context.Context, asset string, amount decimal.Decimal) error {
	return s.cli.Authorize(ctx, asset, amount)
}

func (s *WS) Swap(
	ctx context.Context,
	amountIn, minAmountOut decimal.Decimal,
	route []string,
	recipient string,
	deadline time.Time,
) error {
	return s.cli.Swap(ctx, amountIn, minAmountOut, route, recipient, deadline)
}

func (s *WS) CustodyBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	return s.cli.CustodyBalance(ctx, asset)
}

func (s *WS) TransferIn(ctx context.Context, asset, from string, amount decimal.Decimal) error {
	return s.cli.TransferIn(ctx, asset, from, amount)
}

func (s *WS) TransferOut(ctx context.Context, asset, to string, amount decimal.Decimal) error {
	return s.cli.TransferOut(ctx, asset, to, amount)
}

func (s *WS) GetPairsAndSubscribe() (int64, error) {
	return s.cli.GetPairsAndSubscribe()
}

func (s *WS) SubscribeOperations() (int64, error) {
	return s.cli.SubscribeOperations()
}

func (s *WS) SendOperationResult(operationID, status, amountIn, amountOut, reason string) error {
	return s.cli.SendOperationResult(operationID, status, amountIn, amountOut, reason)
}

func (s *WS) Close() {
	s.cli.Close()
}
