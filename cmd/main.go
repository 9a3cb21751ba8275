package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/account"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/alert"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/export"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/handler"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/ledger"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository/postgresql"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, envFile, err := config.Load(cwd)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()
	defer func() { _ = log.Sync() }()

	if envFile == "" {
		log.Info("no .env file found, using process environment")
	} else {
		log.Info("loaded environment", zap.String("file", envFile))
	}

	database, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		log.Error("database init error", zap.Error(err))
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		log.Error("migration failed", zap.Error(err))
		return err
	}

	packageRepo := postgresql.NewPackageRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	userRepo := postgresql.NewUserRepo(database)

	ldg := ledger.New(database, packageRepo, historyRepo, log)
	accounts := account.NewService(userRepo, cfg.BcryptCost, log)
	if _, err := accounts.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Error("failed to create default admin", zap.Error(err))
		return err
	}

	carriers, err := carrier.NewRegistry(cfg.Carriers)
	if err != nil {
		return fmt.Errorf("%w: CARRIERS: %v", config.ErrInvalid, err)
	}

	dispatcher := alert.NewDispatcher(newPlayer(cfg), cfg.AlertBuffer, log)

	h := handler.New(handler.Deps{
		Ledger:   ldg,
		Accounts: accounts,
		Exporter: export.NewExporter(packageRepo, cfg.ExportDir, log),
		Notifier: dispatcher,
		Carriers: carriers,
		Out:      os.Stdout,
	})
	session := handler.NewSession(h, os.Stdin)

	if err := session.Login(ctx); err != nil {
		return err
	}
	log.Info("operator logged in", zap.String("username", h.User().Username))

	g, gctx := errgroup.WithContext(ctx)
	sessionCtx, stopSession := context.WithCancel(gctx)
	defer stopSession()

	g.Go(func() error {
		return dispatcher.Run(sessionCtx)
	})

	// Reading stdin cannot be interrupted, so the session runs outside the
	// group and a signal ends the program without waiting for it.
	done := make(chan error, 1)
	go func() {
		done <- session.Run(sessionCtx)
	}()

	g.Go(func() error {
		defer stopSession()
		select {
		case err := <-done:
			return err
		case <-gctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("session stopped with error", zap.Error(err))
		return err
	}

	log.Info("session closed", zap.String("username", h.User().Username))
	return nil
}

func newPlayer(cfg *config.Config) alert.Player {
	bell := alert.NewBellPlayer(os.Stdout)
	if len(cfg.AlertCommand) == 0 {
		return bell
	}
	return &alert.CommandPlayer{
		Command:   cfg.AlertCommand[0],
		Args:      cfg.AlertCommand[1:],
		SoundPath: cfg.AlertSoundPath,
		Fallback:  bell,
	}
}
