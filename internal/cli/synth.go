package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/gamepulse/internal/synth"
)

var (
	synthTitles int
	synthSeed   int64
	synthOut    string
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate a synthetic telemetry batch",
	Long: `Synth writes a deterministic synthetic batch covering the analysis
archetypes (surging, declining, stable, cross-platform, sparse), suitable
as input to "gamepulse run" for demos and smoke checks.`,
	RunE: runSynth,
}

func init() {
	synthCmd.Flags().IntVarP(&synthTitles, "titles", "n", 10, "number of titles to generate")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 1, "random seed")
	synthCmd.Flags().StringVarP(&synthOut, "out", "o", "-", "output file (\"-\" for stdout)")
}

func runSynth(cmd *cobra.Command, args []string) error {
	gen := synth.New(synth.WithSeed(synthSeed))
	out, err := json.MarshalIndent(gen.Batch(synthTitles), "", "  ")
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	return writeOutput(synthOut, out)
}
