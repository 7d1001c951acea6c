package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/pushover-mcp/internal/build"
	"github.com/shaharia-lab/pushover-mcp/internal/config"
	"github.com/shaharia-lab/pushover-mcp/internal/logger"
	"github.com/shaharia-lab/pushover-mcp/internal/pushover"
	"github.com/shaharia-lab/pushover-mcp/internal/telemetry"
	"github.com/shaharia-lab/pushover-mcp/internal/tools"
)

var rootCmd = &cobra.Command{
	Use:   "pushover-mcp",
	Short: "Pushover push notifications as an MCP tool",
	Long: `Run an MCP server over stdin/stdout exposing the send_push tool, which
delivers push notifications through the Pushover API.

Credentials are read from PUSHOVER_TOKEN and PUSHOVER_USER on every call.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServer(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runServer(parent context.Context) error {
	// A missing .env file is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sysLogger, closer, err := logger.New(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closer.Close() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			sysLogger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	client := pushover.NewClient(
		pushover.WithTimeout(cfg.HTTPTimeout),
		pushover.WithLogger(sysLogger),
	)

	server, err := tools.NewServer(client, config.LoadCredentials, sysLogger)
	if err != nil {
		return err
	}

	sysLogger.Info("pushover-mcp starting",
		slog.String("transport", "stdio"),
		slog.String("version", build.Version),
		slog.String("commit", build.CommitSHA),
		slog.String("build_date", build.BuildDate),
		slog.Bool("tracing", tracing.Enabled()),
	)

	if err := tools.Serve(ctx, server); err != nil {
		sysLogger.Error("server stopped with error", "error", err)
		return err
	}

	sysLogger.Info("pushover-mcp stopped")
	return nil
}
