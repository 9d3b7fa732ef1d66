package storage

import (
	"sync"

	"github.com/soulgarden/vaultd/dictionary"
)

type Pair struct {
	BaseCurrency  string
	QuoteCurrency string
	Price         string
	State         int
}

func (p *Pair) GetPairName() string {
	return p.BaseCurrency + "/" + p.QuoteCurrency
}

// PairRegistry mirrors the router's liquidity pair listing. It is fed by the
// pairs subscriber and read by the route resolver.
type PairRegistry struct {
	mx    sync.RWMutex
	pairs map[string]*Pair
}

func NewPairRegistry() *PairRegistry {
	return &PairRegistry{pairs: make(map[string]*Pair)}
}

func (r *PairRegistry) UpsertPairs(pairs []*Pair) {
	r.mx.Lock()
	defer r.mx.Unlock()

	for _, pair := range pairs {
		r.pairs[pair.GetPairName()] = pair
	}
}

func (r *PairRegistry) GetPair(pairName string) *Pair {
	r.mx.RLock()
	defer r.mx.RUnlock()

	pair, ok := r.pairs[pairName]
	if !ok {
		return nil
	}

	return pair
}

// PairExists reports whether an active pair joins the two assets, in either
// orientation.
func (r *PairRegistry) PairExists(assetA, assetB string) bool {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if pair, ok := r.pairs[assetA+"/"+assetB]; ok && pair.State == dictionary.PairStateActive {
		return true
	}

	if pair, ok := r.pairs[assetB+"/"+assetA]; ok && pair.State == dictionary.PairStateActive {
		return true
	}

	return false
}
