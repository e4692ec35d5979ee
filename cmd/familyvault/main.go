package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/adapter"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/app"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/client"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/config"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/crypto"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/logger"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/profile"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/service"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/store"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/tui"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/internal/vault"
	"github.com/uktryouts-cpu/FamilyConnect-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("familyvault", cfg.Log.Dir)
	log.Debug().Str("driver", cfg.Storage.Driver).Str("vault", cfg.Vault.ID).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	persistence, err := store.NewPersistence(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create storage")
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		return 1
	}
	defer func() {
		if closeErr := persistence.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close storage")
		}
	}()

	opts, err := vault.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	secureVault := vault.New(persistence, crypto.NewKeyChainService(), opts, log)
	profiles := profile.New(persistence, cfg.Vault.ID, log)

	ai, err := adapter.NewHTTPAIBackend(cfg.Adapter, log)
	if err != nil {
		log.Warn().Err(err).Msg("ai backend disabled")
	}

	services := service.NewClientServices(secureVault, profiles, ai, log)
	settings := client.Settings{
		VaultKey:  vault.StorageKey(cfg.Vault.ID),
		Driver:    cfg.Storage.Driver,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}
	application := client.NewApp(services, tui.New(log), settings, os.Stdout, log)

	err = application.Run(ctx, cfg.Command)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tui.ErrUserQuit):
		return 0
	case errors.Is(err, client.ErrUsage):
		fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, client.Usage)
		return 2
	default:
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		return 1
	}
}
