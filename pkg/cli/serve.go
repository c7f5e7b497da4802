package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/getmockd/mockdb/pkg/config"
	"github.com/getmockd/mockdb/pkg/engine"
	"github.com/getmockd/mockdb/pkg/metrics"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	port        int
	host        string
	configFile  string
	metricsAddr string
	maxBodySize int64
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve [port] [config]",
	Short: "Start the mock server",
	Long: `Start the mock server with the endpoints and documents from a configuration file.

The port and config file can be given as flags or, positionally, as
"serve <port> <config>".`,
	Example: `  # Serve mockdb.yaml on the default port
  mockdb serve --config mockdb.yaml

  # Positional form
  mockdb serve 3000 mockdb.json

  # Expose Prometheus metrics on a separate listener
  mockdb serve -c mockdb.toml --metrics-addr :9090`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := serveFlagVals
		if err := applyServeArgs(&f, args, cmd.Flags().Changed("port")); err != nil {
			return err
		}

		log, closer, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, f, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	defaults := config.DefaultServerConfig()
	serveCmd.Flags().IntVarP(&f.port, "port", "p", envIntOr("MOCKDB_PORT", defaults.Port), "HTTP server port (env MOCKDB_PORT)")
	serveCmd.Flags().StringVar(&f.host, "host", defaults.Host, "Interface to listen on")
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (.json, .yaml, .toml)")
	serveCmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "Address for the Prometheus metrics listener (disabled when empty)")
	serveCmd.Flags().Int64Var(&f.maxBodySize, "max-body-size", defaults.MaxBodySize, "Maximum request body size in bytes")
}

// applyServeArgs folds the positional forms "serve <config>" and
// "serve <port> <config>" into f. An unparseable positional port falls back
// to 8080 unless --port was given.
func applyServeArgs(f *serveFlags, args []string, portFlagSet bool) error {
	switch len(args) {
	case 0:
	case 1:
		f.configFile = args[0]
	default:
		if !portFlagSet {
			port, err := strconv.Atoi(args[0])
			if err != nil || port < 0 || port > 65535 {
				port = config.DefaultServerConfig().Port
			}
			f.port = port
		}
		f.configFile = args[1]
	}
	if f.configFile == "" {
		return errors.New("a configuration file is required (--config or positional argument)")
	}
	return nil
}

// runServe loads the configuration and serves until ctx is cancelled.
func runServe(ctx context.Context, f serveFlags, log *slog.Logger) error {
	cfg, err := config.LoadFromFile(f.configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration %s:\n%w", f.configFile, err)
	}
	for _, w := range cfg.MountWarnings() {
		log.Warn("mount configuration problem", "error", w)
	}

	srvCfg := config.DefaultServerConfig()
	srvCfg.Host = f.host
	srvCfg.Port = f.port
	srvCfg.MetricsAddr = f.metricsAddr
	if f.maxBodySize > 0 {
		srvCfg.MaxBodySize = f.maxBodySize
	}

	m := metrics.New()
	resolver := engine.NewResolver(cfg, log)
	srv := engine.NewServer(srvCfg, resolver, engine.WithLogger(log), engine.WithMetrics(m))

	log.Info("configuration loaded",
		"file", f.configFile,
		"endpoints", resolver.Routes().Len(),
		"mounts", resolver.Registry().Len(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	if srvCfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, srvCfg, m, log)
		})
	}
	return g.Wait()
}

// serveMetrics runs the Prometheus listener until ctx is done.
func serveMetrics(ctx context.Context, cfg config.ServerConfig, m *metrics.Metrics, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:        cfg.MetricsAddr,
		Handler:     mux,
		ReadTimeout: cfg.ReadTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting metrics server", "addr", cfg.MetricsAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	return nil
}
