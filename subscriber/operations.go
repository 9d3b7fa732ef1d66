package subscriber

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mailru/easyjson"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/service"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/dictionary"
	"github.com/soulgarden/vaultd/response"
)

// Operations is the vault's ingress: it consumes deposit and withdrawal
// requests arriving on the gateway stream, runs them through the
// orchestrator and reports the outcome back.
type Operations struct {
	vault       *service.Vault
	eventBroker *broker.Broker
	wsSvc       *service.WS
	logger      *zerolog.Logger
}

func NewOperations(
	vault *service.Vault,
	eventBroker *broker.Broker,
	wsSvc *service.WS,
	logger *zerolog.Logger,
) *Operations {
	return &Operations{vault: vault, eventBroker: eventBroker, wsSvc: wsSvc, logger: logger}
}

func (s *Operations) Start(ctx context.Context) error {
	s.logger.Warn().Msg("operations subscriber starting...")
	defer s.logger.Warn().Msg("operations subscriber stopped")

	eventsCh := s.eventBroker.Subscribe()
	defer s.eventBroker.Unsubscribe(eventsCh)

	id, err := s.wsSvc.SubscribeOperations()
	if err != nil {
		s.logger.Err(err).Msg("subscribe operations")

		return err
	}

	subID := strconv.FormatInt(id, dictionary.DefaultIntBase)

	for {
		select {
		case e, ok := <-eventsCh:
			if !ok {
				s.logger.Err(dictionary.ErrEventChannelClosed).Msg("event channel closed")

				return dictionary.ErrEventChannelClosed
			}

			msg, ok := e.([]byte)
			if !ok {
				continue
			}

			rid := &response.ID{}

			if err := easyjson.Unmarshal(msg, rid); err != nil {
				s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

				return err
			}

			if rid.ID == subID {
				if err := s.checkErrorResponse(msg); err != nil {
					s.logger.Err(err).Msg("check error response")

					return err
				}

				continue
			}

			op := &response.Operation{}

			if err := easyjson.Unmarshal(msg, op); err != nil {
				s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

				continue
			}

			if op.Op == "" {
				continue
			}

			s.dispatch(ctx, op)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Operations) dispatch(ctx context.Context, op *response.Operation) {
	switch op.Op {
	case dictionary.OpDeposit:
		s.deposit(ctx, op)
	case dictionary.OpWithdraw:
		s.withdraw(ctx, op)
	case dictionary.OpEmergencyWithdraw:
		s.emergencyWithdraw(ctx, op)
	default:
		s.logger.Warn().Str("op", op.Op).Str("operation_id", op.OperationID).Msg("unknown operation kind")
	}
}

func (s *Operations) deposit(ctx context.Context, op *response.Operation) {
	amountStr := op.Amount
	if op.Asset == dictionary.NativeAsset && op.NativeValue != "" {
		amountStr = op.NativeValue
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		s.fail(op, fmt.Errorf("%w: %q", dictionary.ErrParseAmount, amountStr))

		return
	}

	minAmountOut := dictionary.ZeroAmount

	if op.MinAmountOut != "" {
		minAmountOut, err = decimal.NewFromString(op.MinAmountOut)
		if err != nil {
			s.fail(op, fmt.Errorf("%w: %q", dictionary.ErrParseAmount, op.MinAmountOut))

			return
		}
	}

	result, err := s.vault.Deposit(ctx, op.Principal, op.Asset, amount, minAmountOut)
	if err != nil {
		s.fail(op, err)

		return
	}

	s.reply(
		op.OperationID,
		dictionary.OpStatusCompleted,
		result.AcceptedIn.StringFixed(dictionary.AmountScale),
		result.Credited.StringFixed(dictionary.AmountScale),
		"",
	)
}

func (s *Operations) withdraw(ctx context.Context, op *response.Operation) {
	amount, err := decimal.NewFromString(op.Amount)
	if err != nil {
		s.fail(op, fmt.Errorf("%w: %q", dictionary.ErrParseAmount, op.Amount))

		return
	}

	if _, err := s.vault.Withdraw(ctx, op.Principal, op.Destination, amount); err != nil {
		s.fail(op, err)

		return
	}

	s.reply(
		op.OperationID,
		dictionary.OpStatusCompleted,
		amount.StringFixed(dictionary.AmountScale),
		amount.StringFixed(dictionary.AmountScale),
		"",
	)
}

func (s *Operations) emergencyWithdraw(ctx context.Context, op *response.Operation) {
	amount, err := decimal.NewFromString(op.Amount)
	if err != nil {
		s.fail(op, fmt.Errorf("%w: %q", dictionary.ErrParseAmount, op.Amount))

		return
	}

	if err := s.vault.EmergencyWithdraw(ctx, op.Actor, op.Asset, op.Destination, amount); err != nil {
		s.fail(op, err)

		return
	}

	s.reply(op.OperationID, dictionary.OpStatusCompleted, amount.StringFixed(dictionary.AmountScale), "", "")
}

func (s *Operations) fail(op *response.Operation, err error) {
	s.logger.Err(err).
		Str("op", op.Op).
		Str("operation_id", op.OperationID).
		Str("principal", op.Principal).
		Msg("operation failed")

	s.reply(op.OperationID, dictionary.OpStatusFailed, "", "", err.Error())
}

func (s *Operations) reply(operationID, status, amountIn, amountOut, reason string) {
	if err := s.wsSvc.SendOperationResult(operationID, status, amountIn, amountOut, reason); err != nil {
		s.logger.Err(err).Str("operation_id", operationID).Msg("send operation result")
	}
}

func (s *Operations) checkErrorResponse(msg []byte) error {
	er := &response.Error{}

	err := easyjson.Unmarshal(msg, er)
	if err != nil {
		s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

		return err
	}

	if er.Error != nil {
		err = fmt.Errorf("%w: %s", dictionary.ErrResponse, er.Error.Reason)
		s.logger.Err(err).Bytes("response", msg).Msg("received error")

		return err
	}

	return nil
}
