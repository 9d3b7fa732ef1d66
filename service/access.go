package service

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/dictionary"
	"github.com/tevino/abool"
)

// Keyring answers whether an actor holds a capability.
type Keyring interface {
	HasCapability(actor, capability string) bool
}

// StaticKeyring resolves capabilities from the configured actor lists.
// Admins hold every capability.
type StaticKeyring struct {
	operators map[string]struct{}
	pausers   map[string]struct{}
	admins    map[string]struct{}
}

func NewStaticKeyring(cfg *conf.Vault) *StaticKeyring {
	k := &StaticKeyring{
		operators: make(map[string]struct{}),
		pausers:   make(map[string]struct{}),
		admins:    make(map[string]struct{}),
	}

	for _, actor := range cfg.Operators {
		k.operators[actor] = struct{}{}
	}

	for _, actor := range cfg.Pausers {
		k.pausers[actor] = struct{}{}
	}

	for _, actor := range cfg.Admins {
		k.admins[actor] = struct{}{}
	}

	return k
}

func (k *StaticKeyring) HasCapability(actor, capability string) bool {
	if _, ok := k.admins[actor]; ok {
		return true
	}

	switch capability {
	case dictionary.CapabilityOperator:
		_, ok := k.operators[actor]

		return ok
	case dictionary.CapabilityPauser:
		_, ok := k.pausers[actor]

		return ok
	case dictionary.CapabilityAdmin:
		_, ok := k.admins[actor]

		return ok
	}

	return false
}

// SwitchGate is the pause switch for state-changing operations. The vault
// starts active and stays so until a pauser flips it.
type SwitchGate struct {
	active      *abool.AtomicBool
	keyring     Keyring
	eventBroker *broker.Broker
	logger      *zerolog.Logger
}

func NewSwitchGate(keyring Keyring, eventBroker *broker.Broker, logger *zerolog.Logger) *SwitchGate {
	return &SwitchGate{
		active:      abool.NewBool(true),
		keyring:     keyring,
		eventBroker: eventBroker,
		logger:      logger,
	}
}

func (g *SwitchGate) IsActive() bool {
	return g.active.IsSet()
}

func (g *SwitchGate) Pause(actor string) error {
	if !g.keyring.HasCapability(actor, dictionary.CapabilityPauser) {
		return fmt.Errorf("%w: %s is not a pauser", dictionary.ErrUnauthorized, actor)
	}

	if !g.active.SetToIf(true, false) {
		return nil
	}

	g.logger.Warn().Str("actor", actor).Msg("vault paused")
	g.eventBroker.Publish(GatePaused{Actor: actor})

	return nil
}

func (g *SwitchGate) Resume(actor string) error {
	if !g.keyring.HasCapability(actor, dictionary.CapabilityPauser) {
		return fmt.Errorf("%w: %s is not a pauser", dictionary.ErrUnauthorized, actor)
	}

	if !g.active.SetToIf(false, true) {
		return nil
	}

	g.logger.Warn().Str("actor", actor).Msg("vault resumed")
	g.eventBroker.Publish(GateResumed{Actor: actor})

	return nil
}
