package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/csheth/mailcat/internal/backendstub"
	"github.com/csheth/mailcat/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "predict-stub:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("predict-stub", pflag.ContinueOnError)
	addr := fs.String("addr", backendstub.DefaultAddr, "listen address")
	rulesPath := fs.String("rules", "", "YAML keyword table; built-in rules when empty")
	status := fs.Int("status", 0, "force every response to this HTTP status")
	delay := fs.Duration("delay", 0, "wait this long before answering")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := logging.NewConsole(*logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rules := backendstub.DefaultRules()
	if *rulesPath != "" {
		if rules, err = backendstub.LoadRules(*rulesPath); err != nil {
			return err
		}
	}

	shutdown, endpoint, err := backendstub.Start(*addr, backendstub.Options{
		Rules:  rules,
		Status: *status,
		Delay:  *delay,
		Logger: log,
	})
	if err != nil {
		return err
	}
	log.Info("serving", zap.String("endpoint", endpoint), zap.Int("rules", len(rules.Rules)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("stopped")
	return nil
}
