package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/dictionary"
)

// PairSource reports whether an active liquidity pair exists for two assets,
// in either orientation.
type PairSource interface {
	PairExists(base, quote string) bool
}

// Resolver finds a conversion route from a source asset to the reference
// asset: the direct pair when it exists, otherwise a single hop over the
// bridge asset. Longer routes are never attempted.
type Resolver struct {
	referenceAsset string
	bridgeAsset    string
	pairs          PairSource
	logger         *zerolog.Logger
}

func NewResolver(referenceAsset, bridgeAsset string, pairs PairSource, logger *zerolog.Logger) *Resolver {
	return &Resolver{
		referenceAsset: referenceAsset,
		bridgeAsset:    bridgeAsset,
		pairs:          pairs,
		logger:         logger,
	}
}

func (r *Resolver) Resolve(source string) ([]string, error) {
	if source == r.referenceAsset {
		return []string{source}, nil
	}

	if r.pairs.PairExists(source, r.referenceAsset) {
		return []string{source, r.referenceAsset}, nil
	}

	if source != r.bridgeAsset &&
		r.pairs.PairExists(source, r.bridgeAsset) &&
		r.pairs.PairExists(r.bridgeAsset, r.referenceAsset) {
		return []string{source, r.bridgeAsset, r.referenceAsset}, nil
	}

	r.logger.Warn().Str("source", source).Msg("no route to reference asset")

	return nil, fmt.Errorf("%w: %s", dictionary.ErrNoRoute, source)
}

func (r *Resolver) IsConvertible(source string) bool {
	_, err := r.Resolve(source)

	return err == nil
}
