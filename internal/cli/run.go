package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/okian/gamepulse/internal/adapters/batch"
	"github.com/okian/gamepulse/internal/adapters/history"
	"github.com/okian/gamepulse/internal/app"
	"github.com/okian/gamepulse/pkg/logger"
	"github.com/okian/gamepulse/pkg/metrics"
)

const metricsReadHeaderTimeout = 5 * time.Second

var (
	runBatchFile string
	runOutFile   string
	runNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Produce a full weekly digest from a scraped batch",
	Long: `Run reads one scraped telemetry batch, enriches and ranks every title,
mines developer communications, classifies community posts, synthesizes
per-title takeaways and market highlights, builds the release calendar,
and writes the digest as JSON. A history snapshot is saved so the next
run can report week-over-week deltas.`,
	RunE: runDigest,
}

func init() {
	runCmd.Flags().StringVarP(&runBatchFile, "batch", "b", "", "scraped batch JSON file (required)")
	runCmd.Flags().StringVarP(&runOutFile, "out", "o", "", "digest output file (default from config, \"-\" for stdout)")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "skip history load and snapshot save")
	_ = runCmd.MarkFlagRequired("batch")
}

func runDigest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.Get()

	if cfg.MetricsAddr != "" {
		startMetricsListener(cfg.MetricsAddr)
	}

	b, err := batch.Load(runBatchFile)
	if err != nil {
		return err
	}
	log.Info(ctx, "batch loaded",
		logger.String("file", runBatchFile),
		logger.Int("titles", len(b.Games)),
		logger.Int("failed", len(b.Failed)))

	opts := []app.Option{
		app.WithLogger(log),
		app.WithCatalog(cat),
		app.WithMetrics(metrics.New()),
		app.WithCalendarHorizon(cfg.HorizonMonths),
	}
	if !runNoHistory {
		store := history.New(cfg.HistoryDir, history.WithLogger(log.Named("history")))
		opts = append(opts, app.WithHistoryStore(store))
	}

	digest, err := app.New(opts...).Run(ctx, b.Games, b.Failed)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode digest: %w", err)
	}

	target := runOutFile
	if target == "" {
		target = cfg.OutputFile
	}
	return writeOutput(target, out)
}

// startMetricsListener exposes /metrics for the duration of the run. The
// process exits when the run finishes, so there is no graceful shutdown.
func startMetricsListener(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
	go func() {
		_ = srv.ListenAndServe()
	}()
}
