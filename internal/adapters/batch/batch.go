// Package batch reads a scraped telemetry batch from disk.
//
// A batch is the raw output of the upstream collector: one JSON document
// with the tracked titles that scraped cleanly and the names of those
// that did not.
package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/gamepulse/internal/domain/model"
)

// Batch is one collector run, ready for enrichment.
type Batch struct {
	Games  []model.Title `json:"games"`
	Failed []string      `json:"failed,omitempty"`
}

// Load reads and decodes a batch file.
func Load(path string) (Batch, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrReadBatch, err)
	}
	var b Batch
	if err := json.Unmarshal(raw, &b); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrParseBatch, err)
	}
	return b, nil
}
