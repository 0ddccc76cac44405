package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/sadopc/studiodesk/internal/auth"
	"github.com/sadopc/studiodesk/internal/cli"
	"github.com/sadopc/studiodesk/internal/config"
	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := cfg.Level()

	// The dashboard owns the terminal, so it logs to a file instead.
	logger := log.NewWriter(os.Stderr, level)
	log.SetDefault(logger)

	s, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	catalog, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.WithComponent(log.ComponentStore).Debug("catalog loaded",
		log.FieldPath, cfg.DBPath, "clients", len(catalog.Clients), "projects", len(catalog.Projects))

	app := &cli.App{
		Catalog:  catalog,
		Auth:     auth.NewService(cfg.AuthDelay, cfg.PasswordDelay, logger),
		Logger:   logger,
		PageSize: cfg.PageSize,
		IsInteractive: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		RunTUI: func(ctx context.Context) error {
			fileLogger, closer, err := log.OpenFile(cfg.LogFile, level)
			if err != nil {
				return err
			}
			defer closer.Close()

			fileLogger.WithComponent(log.ComponentApp).Info("starting dashboard",
				log.NewFields().WithOperation(log.OpStartup).With(log.FieldPath, cfg.DBPath).ToSlice()...)

			m := tui.NewApp(catalog, tui.Options{
				Context:   log.NewContext(ctx, fileLogger),
				PageSize:  cfg.PageSize,
				Auth:      auth.NewService(cfg.AuthDelay, cfg.PasswordDelay, fileLogger),
				SkipLogin: cfg.SkipLogin,
			})
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	return cli.Execute(ctx, app, os.Args[1:])
}
