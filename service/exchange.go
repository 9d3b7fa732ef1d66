package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/dictionary"
)

const swapDeadline = 15 * time.Minute

// Router is the slice of the gateway surface conversion needs.
type Router interface {
	Authorize(ctx context.Context, asset string, amount decimal.Decimal) error
	Swap(
		ctx context.Context,
		amountIn, minAmountOut decimal.Decimal,
		route []string,
		recipient string,
		deadline time.Time,
	) error
	CustodyBalance(ctx context.Context, asset string) (decimal.Decimal, error)
}

// RouteResolver maps a source asset to a swap route ending in the
// reference asset.
type RouteResolver interface {
	Resolve(source string) ([]string, error)
	IsConvertible(source string) bool
}

// Exchange converts deposited assets into the reference asset on the
// router. The credited value is measured as the custody balance delta
// around the swap, not taken from the router's reply.
type Exchange struct {
	referenceAsset string
	custodyAccount string
	router         Router
	mover          AssetMover
	resolver       RouteResolver
	eventBroker    *broker.Broker
	logger         *zerolog.Logger
}

func NewExchange(
	referenceAsset string,
	custodyAccount string,
	router Router,
	mover AssetMover,
	resolver RouteResolver,
	eventBroker *broker.Broker,
	logger *zerolog.Logger,
) *Exchange {
	return &Exchange{
		referenceAsset: referenceAsset,
		custodyAccount: custodyAccount,
		router:         router,
		mover:          mover,
		resolver:       resolver,
		eventBroker:    eventBroker,
		logger:         logger,
	}
}

// Convert pulls amountIn of the source asset from the principal into
// custody and swaps it for the reference asset. The route is resolved
// before any asset moves, so an unroutable deposit aborts with custody
// untouched. Returns the reference amount gained.
func (e *Exchange) Convert(
	ctx context.Context,
	principal, source string,
	amountIn, minAmountOut decimal.Decimal,
) (decimal.Decimal, error) {
	route, err := e.resolver.Resolve(source)
	if err != nil {
		return dictionary.ZeroAmount, err
	}

	if err := e.mover.TransferIn(ctx, source, principal, amountIn); err != nil {
		return dictionary.ZeroAmount, err
	}

	if err := e.router.Authorize(ctx, source, amountIn); err != nil {
		return dictionary.ZeroAmount, err
	}

	// The standing authorization must not outlive this conversion,
	// whatever path we leave on.
	defer func() {
		if err := e.router.Authorize(ctx, source, dictionary.ZeroAmount); err != nil {
			e.logger.Err(err).Str("asset", source).Msg("reset spend authorization")
		}
	}()

	before, err := e.router.CustodyBalance(ctx, e.referenceAsset)
	if err != nil {
		return dictionary.ZeroAmount, err
	}

	deadline := time.Now().Add(swapDeadline)

	if err := e.router.Swap(ctx, amountIn, minAmountOut, route, e.custodyAccount, deadline); err != nil {
		return dictionary.ZeroAmount, err
	}

	after, err := e.router.CustodyBalance(ctx, e.referenceAsset)
	if err != nil {
		return dictionary.ZeroAmount, err
	}

	delta := after.Sub(before)

	if !delta.IsPositive() {
		e.logger.Err(dictionary.ErrSwapFailed).
			Str("source", source).
			Str("amount_in", amountIn.String()).
			Str("delta", delta.String()).
			Msg("swap produced no output")

		return dictionary.ZeroAmount, dictionary.ErrSwapFailed
	}

	e.eventBroker.Publish(ConversionCompleted{
		Principal: principal,
		Asset:     source,
		AmountIn:  amountIn,
		AmountOut: delta,
		Route:     route,
	})

	return delta, nil
}
