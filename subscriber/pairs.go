package subscriber

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mailru/easyjson"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/service"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/dictionary"
	"github.com/soulgarden/vaultd/response"
	"github.com/soulgarden/vaultd/storage"
)

// Pairs keeps the pair registry in sync with the router's liquidity
// listing so route resolution works from live data.
type Pairs struct {
	cfg         *conf.Vault
	registry    *storage.PairRegistry
	eventBroker *broker.Broker
	wsSvc       *service.WS
	logger      *zerolog.Logger
}

func NewPairs(
	cfg *conf.Vault,
	registry *storage.PairRegistry,
	eventBroker *broker.Broker,
	wsSvc *service.WS,
	logger *zerolog.Logger,
) *Pairs {
	return &Pairs{cfg: cfg, registry: registry, eventBroker: eventBroker, wsSvc: wsSvc, logger: logger}
}

func (s *Pairs) Start(ctx context.Context) error {
	s.logger.Warn().Msg("pairs subscriber starting...")
	defer s.logger.Warn().Msg("pairs subscriber stopped")

	eventsCh := s.eventBroker.Subscribe()
	defer s.eventBroker.Unsubscribe(eventsCh)

	id, err := s.wsSvc.GetPairsAndSubscribe()
	if err != nil {
		s.logger.Err(err).Msg("get pairs and subscribe")

		return err
	}

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

			err := easyjson.Unmarshal(msg, rid)
			if err != nil {
				s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

				return err
			}

			if strconv.FormatInt(id, dictionary.DefaultIntBase) != rid.ID {
				continue
			}

			err = s.checkErrorResponse(msg)
			if err != nil {
				s.logger.Err(err).Msg("check error response")

				return err
			}

			r := &response.Pairs{}

			err = easyjson.Unmarshal(msg, r)
			if err != nil {
				s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

				return err
			}

			pairs := []*storage.Pair{}

			for _, pair := range r.Pairs {
				pairs = append(pairs, &storage.Pair{
					BaseCurrency:  pair.BaseCurrency,
					QuoteCurrency: pair.QuoteCurrency,
					Price:         pair.Price,
					State:         pair.State,
				})
			}

			s.registry.UpsertPairs(pairs)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Pairs) checkErrorResponse(msg []byte) error {
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
