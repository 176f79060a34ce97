package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/docker-stats/internal/api"
	"github.com/rusenback/docker-stats/internal/collector"
	"github.com/rusenback/docker-stats/internal/config"
	"github.com/rusenback/docker-stats/internal/docker"
	"github.com/rusenback/docker-stats/internal/logging"
	"github.com/rusenback/docker-stats/internal/tui"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type options struct {
	configPath string
	debug      bool
	cfg        config.Config
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dockerstats",
		Short:         "Serve per-container memory and CPU usage as JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if opts.debug {
				level = logging.LevelDebug
			}
			if err := logging.Configure(level); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "/etc/dockerstats/config.yaml", "Config file path")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.AddCommand(serveCmd(opts), topCmd(opts))
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP stats endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}
}

func topCmd(opts *options) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show container stats in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			// Log lines would tear the alt screen
			if err := logging.ConfigureWriter(io.Discard, logging.LevelError); err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(newCollector(client, opts.cfg, otel.Tracer(tracerName)), interval), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Refresh interval")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	tp, err := newTracerProvider(ctx)
	if err != nil {
		return err
	}
	defer shutdownTracing(tp)

	log := slog.Default()
	handler := api.NewHandler(newCollector(client, cfg, tp.Tracer(tracerName)), log)
	return api.NewServer(cfg.Listen, handler, log).Run(ctx)
}

// connect builds the one Docker client shared by every collection cycle.
func connect(ctx context.Context, cfg config.Config) (*docker.Client, error) {
	client, err := docker.NewClient(ctx, cfg.Docker())
	if err != nil {
		return nil, fmt.Errorf("connect to docker at %s: %w", cfg.DockerHost, err)
	}
	slog.Debug("Connected to Docker.", "host", cfg.DockerHost, "tls", cfg.TLSVerify)
	return client, nil
}

func newCollector(source docker.StatsSource, cfg config.Config, tracer trace.Tracer) *collector.Collector {
	return collector.New(source,
		collector.WithFetchTimeout(cfg.FetchTimeout),
		collector.WithConcurrency(cfg.Concurrency),
		collector.WithLogger(slog.Default()),
		collector.WithTracer(tracer),
	)
}
