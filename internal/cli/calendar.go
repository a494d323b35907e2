package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/gamepulse/internal/adapters/batch"
	"github.com/okian/gamepulse/internal/domain/calendar"
	"github.com/okian/gamepulse/internal/domain/devcomms"
	"github.com/okian/gamepulse/internal/domain/enrich"
	"github.com/okian/gamepulse/pkg/logger"
)

var (
	calBatchFile string
	calOutFile   string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Build only the release calendar from a scraped batch",
	Long: `Calendar mines dated announcements and upcoming-event mentions out of a
scraped batch and prints the forward-looking release calendar, without
running the rest of the digest pipeline. Useful for checking what the
date miner and cadence projector see.`,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVarP(&calBatchFile, "batch", "b", "", "scraped batch JSON file (required)")
	calendarCmd.Flags().StringVarP(&calOutFile, "out", "o", "-", "output file (\"-\" for stdout)")
	_ = calendarCmd.MarkFlagRequired("batch")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	b, err := batch.Load(calBatchFile)
	if err != nil {
		return err
	}
	logger.Get().Info(cmd.Context(), "building calendar",
		logger.Int("titles", len(b.Games)))

	// The calendar needs ranked titles with mined upcoming details, so the
	// enrichment and devcomms stages still run; everything else is skipped.
	titles := enrich.Enrich(b.Games)
	for i := range titles {
		titles[i].DevComms = devcomms.Extract(titles[i].News)
	}

	builder := calendar.New(
		calendar.WithCatalog(cat),
		calendar.WithHorizonMonths(cfg.HorizonMonths),
	)
	out, err := json.MarshalIndent(builder.Build(titles), "", "  ")
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return writeOutput(calOutFile, out)
}
