package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/dictionary"

	"github.com/soulgarden/vaultd/conf"

	"github.com/rs/zerolog"
	tb "gopkg.in/tucnak/telebot.v2"
)

const sendDelay = time.Millisecond * 500
const queueSize = 256

type Telegram struct {
	cfg    *conf.Vault
	logger *zerolog.Logger
	bot    *tb.Bot
	sendCh chan string
}

func NewTelegram(cfg *conf.Vault, bot *tb.Bot, logger *zerolog.Logger) *Telegram {
	return &Telegram{
		cfg:    cfg,
		logger: logger,
		sendCh: make(chan string, queueSize),
		bot:    bot,
	}
}

func (s *Telegram) Start() {
	for msg := range s.sendCh {
		_ = s.send(msg)

		time.Sleep(sendDelay)
	}
}

func (s *Telegram) SendAsync(msg string) {
	if len(s.sendCh) == queueSize {
		s.logger.
			Err(dictionary.ErrChannelOverflowed).
			Interface("msg", msg).
			Msg(dictionary.ErrChannelOverflowed.Error())

		return
	}

	s.sendCh <- msg
}

func (s *Telegram) SendSync(msg string) {
	_ = s.send(msg)
}

// WatchEvents relays vault audit events to the configured chat.
func (s *Telegram) WatchEvents(ctx context.Context, eventBroker *broker.Broker) error {
	eventsCh := eventBroker.Subscribe()
	defer eventBroker.Unsubscribe(eventsCh)

	for {
		select {
		case e, ok := <-eventsCh:
			if !ok {
				return dictionary.ErrEventChannelClosed
			}

			if msg := formatEvent(s.cfg.Env, e); msg != "" {
				s.SendAsync(msg)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func formatEvent(env string, e interface{}) string {
	switch event := e.(type) {
	case DepositCompleted:
		return fmt.Sprintf(
			"env: %s\ndeposit completed\nprincipal: %s\nasset: %s\nin: %s\ncredited: %s",
			env, event.Principal, event.Asset, event.AmountIn.String(), event.Credited.String(),
		)
	case WithdrawalCompleted:
		return fmt.Sprintf(
			"env: %s\nwithdrawal completed\nprincipal: %s\ndestination: %s\namount: %s",
			env, event.Principal, event.Destination, event.Amount.String(),
		)
	case EmergencyRecovery:
		return fmt.Sprintf(
			"env: %s\nemergency withdrawal\nactor: %s\nasset: %s\ndestination: %s\namount: %s",
			env, event.Actor, event.Asset, event.Destination, event.Amount.String(),
		)
	case GatePaused:
		return fmt.Sprintf("env: %s\nvault paused by %s", env, event.Actor)
	case GateResumed:
		return fmt.Sprintf("env: %s\nvault resumed by %s", env, event.Actor)
	}

	return ""
}

func (s *Telegram) send(msg string) error {
	_, err := s.bot.Send(&tb.Chat{ID: s.cfg.Telegram.ChatID}, msg)
	if err != nil {
		s.logger.Err(err).Str("msg", msg).Msg("send message")

		return err
	}

	return nil
}
