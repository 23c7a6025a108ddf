package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/classify"
	"github.com/csheth/mailcat/internal/config"
	"github.com/csheth/mailcat/internal/draft"
	"github.com/csheth/mailcat/internal/logging"
	"github.com/csheth/mailcat/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "mailcat:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags("mailcat")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var initial string
	if cfg.EmailFile != "" {
		initial, err = draft.Load(cfg.EmailFile)
		if err != nil {
			return err
		}
	}

	client := classify.New(classify.Config{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
		Logger:   log,
	})
	log.Info("starting",
		zap.String("endpoint", client.Endpoint()),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("preloaded", initial != ""),
	)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Predictor:   client,
			Logger:      log,
			InitialText: initial,
			Endpoint:    client.Endpoint(),
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		log.Error("program error", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	log.Info("exited")
	return nil
}
