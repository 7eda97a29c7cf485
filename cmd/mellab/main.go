package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/amaumene/mellab/internal/api"
	"github.com/amaumene/mellab/internal/config"
	"github.com/amaumene/mellab/internal/utils"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mellab",
		Short:         "Movie and TV metadata aggregation with generated analyses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newInvokeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the search and analyze handlers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <search|analyze|health> [key=value...]",
		Short: "Run one handler invocation and print its envelope",
		Example: `  mellab invoke search title=Inception
  mellab invoke analyze title="Breaking Bad" mode=synopsis season="Season 2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			return invoke(cmd.Context(), args[0], params)
		},
	}
}

// parseParams turns key=value arguments into a flat parameter mapping
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}

func invoke(ctx context.Context, name string, params map[string]string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Logs go to stderr so stdout holds only the envelope
	logger := utils.NewLoggerTo(os.Stderr, cfg.LogLevel)

	a, err := newApp(cfg, logger, false)
	if err != nil {
		return err
	}
	defer a.close()

	inv, err := a.invoker(name)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	resp := inv.Invoke(ctx, params)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func serve() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Mellab")
	if cfg.TMDBAPIKey == "" || cfg.GeminiAPIKey == "" {
		logger.Warn("TMDB_API_KEY or GEMINI_API_KEY not set, affected handlers will answer 500")
	}

	// 3. Wire services, controllers and handlers
	a, err := newApp(cfg, logger, true)
	if err != nil {
		return err
	}
	defer a.close()

	// 4. Initialize HTTP server
	server := api.NewServer(cfg, a.search, a.analyze, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 5. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Mellab is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Mellab stopped")
	return nil
}
