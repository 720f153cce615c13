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

	"github.com/ctxos/desktop/backend/internal/infrastructure/config"
	"github.com/ctxos/desktop/backend/internal/infrastructure/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ctxos: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("ctxos-server", pflag.ContinueOnError)
	port := flagSet.String("port", cfg.Server.Port, "server port (env PORT)")
	host := flagSet.String("host", cfg.Server.Host, "listen host (env HOST)")
	dev := flagSet.Bool("dev", cfg.Logging.Development, "development mode: console logs at debug level (env LOG_DEV)")
	tree := flagSet.String("tree", cfg.Desktop.TreePath, "yaml, toml or json file tree to serve instead of the embedded one (env DESKTOP_TREE_PATH)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Desktop.TreePath = *tree
	if flagSet.Changed("dev") {
		cfg.Logging.Development = *dev
		if *dev {
			cfg.Logging.Level = "debug"
		}
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}
