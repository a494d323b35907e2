// Package app wires the analysis pipeline into a single digest run.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gamepulse/internal/adapters/catalog"
	"github.com/okian/gamepulse/internal/domain/calendar"
	"github.com/okian/gamepulse/internal/domain/category"
	"github.com/okian/gamepulse/internal/domain/devcomms"
	"github.com/okian/gamepulse/internal/domain/enrich"
	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/sentiment"
	"github.com/okian/gamepulse/internal/domain/takeaway"
	"github.com/okian/gamepulse/pkg/clock"
	"github.com/okian/gamepulse/pkg/logger"
	"github.com/okian/gamepulse/pkg/metrics"
)

const dateForm = "2006-01-02"

// HistoryStore is the persistence collaborator for run-over-run deltas.
type HistoryStore interface {
	// LoadPrevious returns the prior snapshot keyed by title name, or nil
	// on a first run or unreadable history.
	LoadPrevious(ctx context.Context) map[string]model.SnapshotTitle

	// Save persists the snapshot; at most one write per calendar day.
	Save(ctx context.Context, snap model.Snapshot) error
}

// Service runs the full weekly analysis over one scraped batch.
type Service struct {
	log       logger.Logger
	clk       clock.Clock
	cat       *catalog.Catalog
	store     HistoryStore
	met       *metrics.Manager
	sentiment *sentiment.Classifier
	horizon   int
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source for the calendar and snapshot dating.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clk = c
		}
	}
}

// WithCatalog sets the static title catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.cat = c
		}
	}
}

// WithHistoryStore sets the snapshot persistence collaborator. Without one
// the run still works; deltas are simply nil.
func WithHistoryStore(store HistoryStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.met = m
		}
	}
}

// WithCalendarHorizon sets how many future months the calendar covers.
func WithCalendarHorizon(months int) Option {
	return func(s *Service) {
		if months > 0 {
			s.horizon = months
		}
	}
}

// New constructs a Service with defaults.
func New(opts ...Option) *Service {
	s := &Service{
		log:       logger.Nop(),
		clk:       clock.System(),
		cat:       catalog.Default(),
		met:       metrics.New(metrics.WithEnabled(false)),
		sentiment: sentiment.New(),
		horizon:   10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one digest over the scraped batch. failedNames lists titles
// whose scrape failed upstream; they are reported, never silently dropped.
// Zero usable titles is not an error: the digest simply lists every name as
// failed, with a warning.
func (s *Service) Run(ctx context.Context, titles []model.Title, failedNames []string) (model.Digest, error) {
	now := s.clk.Now()
	digest := model.Digest{
		RunID:       uuid.NewString(),
		Date:        now.Format(dateForm),
		FailedNames: failedNames,
	}

	if len(titles) == 0 {
		s.log.Warn(ctx, "no usable titles in batch; emitting failure-only digest",
			logger.Int("failed", len(failedNames)))
		digest.Highlights = []string{"Insufficient trend data for market analysis."}
		s.met.RecordRun()
		s.met.RecordTitles(0, len(failedNames))
		return digest, nil
	}

	start := time.Now()
	enriched := enrich.Enrich(titles)
	s.met.ObserveStage("enrich", time.Since(start))

	previous := s.loadPrevious(ctx)
	enrich.ComputeDeltas(enriched, previous)

	start = time.Now()
	for i := range enriched {
		t := &enriched[i]
		t.RedditWeek = s.categorized(t.RedditWeek)
		t.RedditMonth = s.categorized(t.RedditMonth)
		t.DevComms = devcomms.Extract(t.News)
		s.recordDevComms(t.DevComms)
		t.Sentiment = s.sentiment.ForTitle(t.Title)
		s.met.RecordSentiment(t.Sentiment)
	}
	s.met.ObserveStage("classify", time.Since(start))

	start = time.Now()
	for i := range enriched {
		t := &enriched[i]
		t.Takeaway, t.TakeawayText = takeaway.Synthesize(*t)
	}
	digest.Highlights = takeaway.Highlights(enriched)
	digest.Movers = takeaway.Movers(enriched)
	s.met.ObserveStage("takeaways", time.Since(start))

	start = time.Now()
	builder := calendar.New(
		calendar.WithClock(s.clk),
		calendar.WithCatalog(s.cat),
		calendar.WithHorizonMonths(s.horizon),
	)
	cal, calStats := builder.BuildStats(enriched)
	digest.Calendar = cal
	s.met.ObserveStage("calendar", time.Since(start))
	s.met.RecordCalendar(calStats.Mined, calStats.Kept, calStats.Projected)

	digest.Titles = enriched

	if err := s.saveSnapshot(ctx, digest); err != nil {
		// History is best-effort: a failed write degrades next week's
		// deltas, it does not fail this week's digest.
		s.log.Error(ctx, "saving history snapshot failed", logger.Error(err))
	}

	s.met.RecordRun()
	s.met.RecordTitles(len(enriched), len(failedNames))
	s.log.Info(ctx, "digest run complete",
		logger.String("run_id", digest.RunID),
		logger.Int("titles", len(enriched)),
		logger.Int("failed", len(failedNames)))
	return digest, nil
}

func (s *Service) loadPrevious(ctx context.Context) map[string]model.SnapshotTitle {
	if s.store == nil {
		return nil
	}
	previous := s.store.LoadPrevious(ctx)
	if previous == nil {
		s.met.RecordHistoryMiss()
		s.log.Info(ctx, "no previous snapshot; deltas disabled for this run")
	}
	return previous
}

// categorized returns a copy of posts with categories assigned. The input
// slice is never written through; it may alias the caller's raw batch.
func (s *Service) categorized(posts []model.CommunityPost) []model.CommunityPost {
	if len(posts) == 0 {
		return posts
	}
	out := make([]model.CommunityPost, len(posts))
	for i, p := range posts {
		p.Category = category.Classify(p.Title, p.Flair)
		s.met.RecordPostCategory(p.Category)
		out[i] = p
	}
	return out
}

func (s *Service) recordDevComms(d model.DevCommsSummary) {
	for kind, present := range map[string]bool{
		"season":   d.HasNewSeason,
		"map":      d.HasNewMap,
		"balance":  d.HasBalanceChanges,
		"content":  d.HasNewContent,
		"bugfix":   d.HasBugFixes,
		"upcoming": d.HasUpcomingEvent,
	} {
		if present {
			s.met.RecordDevCommsSignal(kind)
		}
	}
}

func (s *Service) saveSnapshot(ctx context.Context, digest model.Digest) error {
	if s.store == nil {
		return nil
	}
	snap := model.Snapshot{Date: digest.Date}
	for _, t := range digest.Titles {
		snap.Games = append(snap.Games, model.SnapshotFrom(t))
	}
	if err := s.store.Save(ctx, snap); err != nil {
		return err
	}
	s.met.RecordSnapshotWritten()
	return nil
}
