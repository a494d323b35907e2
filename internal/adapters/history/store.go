// Package history persists one digest snapshot per calendar day and serves
// the previous run's snapshot back to the pipeline.
//
// The lifecycle is deliberately narrow: a snapshot is written once per run,
// read once as "previous" by the next run, and never mutated after write.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/pkg/clock"
	"github.com/okian/gamepulse/pkg/logger"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	dateForm = "2006-01-02"
)

// Store reads and writes per-day snapshot files under a base directory.
type Store struct {
	dir   string
	clock clock.Clock
	log   logger.Logger
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithClock sets the time source used for day boundaries.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:   dir,
		clock: clock.System(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadPrevious returns the most recent snapshot from a day before today,
// keyed by title name. A missing directory, no prior file, or a corrupt
// file all yield a nil map and no error: the caller treats it as a first
// run.
func (s *Store) LoadPrevious(ctx context.Context) map[string]model.SnapshotTitle {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	today := s.clock.Now().Format(dateForm)
	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if strings.TrimSuffix(name, ".json") == today {
			continue
		}
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.StringSlice(candidates)))

	path := filepath.Join(s.dir, candidates[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt history is treated as "no previous run", never fatal.
		if s.log != nil {
			s.log.Warn(ctx, "history snapshot unreadable, ignoring",
				logger.String("path", path), logger.Error(err))
		}
		return nil
	}

	out := make(map[string]model.SnapshotTitle, len(snap.Games))
	for _, g := range snap.Games {
		out[g.Name] = g
	}
	return out
}

// Save writes the snapshot as <date>.json. An existing file for the same
// day is left untouched: the first write of the day wins.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateDir, err)
	}

	path := filepath.Join(s.dir, snap.Date+".json")
	if _, err := os.Stat(path); err == nil {
		if s.log != nil {
			s.log.Info(ctx, "snapshot already written today, keeping existing",
				logger.String("path", path))
		}
		return nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeSnapshot, err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteSnapshot, err)
	}
	return nil
}
