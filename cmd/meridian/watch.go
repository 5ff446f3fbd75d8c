package main

import (
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"privacyhq/meridian/pkg/manifest"
	"privacyhq/meridian/pkg/taxonomy"
	"privacyhq/meridian/pkg/telemetry/metrics"
)

var watchFlags struct {
	debounce    time.Duration
	metricsAddr string
}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Revalidate taxonomy manifests on change",
	Long: `Watch a manifest file or directory and rerun validation after every
edit. Results are logged; with --metrics-addr, a Prometheus endpoint
reports validation runs, resource counts, and violations by type.

Examples:
  # Watch the current directory
  meridian watch

  # Watch a directory and expose metrics
  meridian watch ./manifests --metrics-addr :9105`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", manifest.DefaultDebounceInterval, "quiet period before revalidation")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (disabled when empty)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	logger := slog.Default()
	collector := metrics.NewCollector(nil)

	if watchFlags.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
		server := &http.Server{Addr: watchFlags.metricsAddr, Handler: mux}
		go func() {
			logger.Info("Metrics endpoint started", "addr", watchFlags.metricsAddr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics endpoint failed", "error", err)
			}
		}()
		defer server.Close()
	}

	revalidate := func() error {
		manifests, err := manifest.Discover(path)
		if err != nil {
			return err
		}

		start := time.Now()
		t, err := taxonomy.ParseAndValidateMulti(manifests)
		collector.RecordRun(t, time.Since(start), err)

		if err != nil {
			logger.Error("Taxonomy invalid", "manifests", len(manifests), "error", err)
			return nil // keep watching
		}

		logger.Info("Taxonomy valid", "manifests", len(manifests), "resources", t.ResourceCount())
		return nil
	}

	// Validate once up front so the first result does not wait for an
	// edit.
	if err := revalidate(); err != nil {
		return err
	}

	watcher, err := manifest.NewWatcher(path, watchFlags.debounce, logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, revalidate)
}
