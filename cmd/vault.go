package cmd

import (
	"fmt"
	"os"
	"syscall"

	tb "gopkg.in/tucnak/telebot.v2"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/broker"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/service"
	"github.com/soulgarden/vaultd/storage"
	"github.com/soulgarden/vaultd/subscriber"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newVaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vault",
		Short: "Start the custodial value vault daemon",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := conf.New()

			defaultLogLevel := zerolog.InfoLevel
			if cfg.Debug {
				defaultLogLevel = zerolog.DebugLevel
			}

			logger := zerolog.New(os.Stdout).Level(defaultLogLevel).With().Timestamp().Caller().Logger()

			withdrawLimit, bankCap, err := cfg.ParseLimits()
			if err != nil {
				logger.Err(err).Msg("parse limits")

				return
			}

			wsEventBroker := broker.New(&logger)
			auditEventBroker := broker.New(&logger)

			registry := storage.NewPairRegistry()
			ledger := storage.NewLedger(bankCap)

			statePath := fmt.Sprintf(cfg.StateDumpPath, cfg.Env)
			dump := storage.NewDumpLedger(ledger)

			if _, err := os.Stat(statePath); err == nil {
				if err := dump.Recover(statePath); err != nil {
					logger.Err(err).Str("path", statePath).Msg("recover ledger state")

					return
				}

				logger.Info().Str("path", statePath).Msg("ledger state recovered")
			}

			tgBot, err := tb.NewBot(tb.Settings{
				Token: cfg.Telegram.Token,
			})
			if err != nil {
				logger.Err(err).Msg("new tg bot")

				return
			}

			cmdManager := service.NewManager(&logger)

			ctx, interrupt := cmdManager.ListenSignal()

			g, ctx := errgroup.WithContext(ctx)

			tgSvc := service.NewTelegram(cfg, tgBot, &logger)

			go tgSvc.Start()

			tgSvc.SendAsync(fmt.Sprintf("env: %s, vault daemon starting", cfg.Env))
			defer tgSvc.SendSync(fmt.Sprintf("env: %s, vault daemon shutting down", cfg.Env))

			wsSvc := service.NewWS(cfg, wsEventBroker, &logger)

			if err := wsSvc.Connect(interrupt); err != nil {
				interrupt <- syscall.SIGINT

				return
			}

			g.Go(func() error { return wsSvc.Start(ctx) })

			go wsEventBroker.Start()
			go auditEventBroker.Start()

			keyring := service.NewStaticKeyring(cfg)
			gate := service.NewSwitchGate(keyring, auditEventBroker, &logger)
			mover := service.NewMover(wsSvc, &logger)
			resolver := service.NewResolver(cfg.ReferenceAsset, cfg.BridgeAsset, registry, &logger)
			exchange := service.NewExchange(
				cfg.ReferenceAsset,
				cfg.CustodyAccount,
				wsSvc,
				mover,
				resolver,
				auditEventBroker,
				&logger,
			)

			vault, err := service.NewVault(
				service.Config{
					WithdrawLimit:  withdrawLimit,
					BankCap:        bankCap,
					ReferenceAsset: cfg.ReferenceAsset,
					BridgeAsset:    cfg.BridgeAsset,
					CustodyAccount: cfg.CustodyAccount,
				},
				ledger,
				exchange,
				mover,
				wsSvc,
				gate,
				keyring,
				auditEventBroker,
				&logger,
			)
			if err != nil {
				logger.Err(err).Msg("new vault")

				interrupt <- syscall.SIGINT

				return
			}

			pairsSub := subscriber.NewPairs(cfg, registry, wsEventBroker, wsSvc, &logger)
			opsSub := subscriber.NewOperations(vault, wsEventBroker, wsSvc, &logger)

			g.Go(func() error { return pairsSub.Start(ctx) })
			g.Go(func() error { return opsSub.Start(ctx) })
			g.Go(func() error { return tgSvc.WatchEvents(ctx, auditEventBroker) })

			err = g.Wait()

			logger.Err(err).Msg("wait goroutines")

			wsSvc.Close()

			err = dump.Dump(statePath)
			logger.Err(err).Msg("dump ledger state to file")
		},
	}
}
