// duelsim resolves duels from the command line.
//
// Usage:
//
//	go run ./cmd/duelsim simulate -seed 0xdeadbeef
//	go run ./cmd/duelsim batch -count 10000 -workers 8
//	go run ./cmd/duelsim decode 0000010002...
//	go run ./cmd/duelsim show 6f1c...-uuid
//
// Fighters, lethality and the archive database come from config/duelsim.yaml
// (path overridable with DUELSIM_CONFIG) and DUELSIM_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/la2duel/internal/config"
)

const ConfigPath = "config/duelsim.yaml"

var errUsage = errors.New("usage: duelsim <simulate|batch|decode|show> [flags]")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("DUELSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadDuelSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr; stdout carries the duel output.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if len(args) == 0 {
		return errUsage
	}

	cmd := command{cfg: cfg, out: out}
	switch args[0] {
	case "simulate":
		return cmd.simulate(ctx, args[1:])
	case "batch":
		return cmd.batch(ctx, args[1:])
	case "decode":
		return cmd.decode(args[1:])
	case "show":
		return cmd.show(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
