// Package metrics provides Prometheus metrics for the digest pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Defaults for metric registration.
const (
	defaultNamespace = "gamepulse"
	defaultSubsystem = "digest"
)

var defaultBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// Manager owns every Prometheus metric the pipeline emits.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	enabled   bool
	registry  prometheus.Registerer

	// Pipeline throughput
	runsTotal      prometheus.Counter
	titlesEnriched prometheus.Counter
	titlesFailed   prometheus.Counter

	// Classifier activity
	postsCategorized *prometheus.CounterVec
	sentimentTallies *prometheus.CounterVec
	devCommsSignals  *prometheus.CounterVec

	// Calendar quality
	calendarEntriesMined   prometheus.Counter
	calendarEntriesDeduped prometheus.Counter
	calendarProjections    prometheus.Counter

	// Stage timings
	stageDuration *prometheus.HistogramVec

	// History store
	snapshotsWritten prometheus.Counter
	historyMisses    prometheus.Counter
}

// New creates a Manager and registers all metrics.
func New(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		buckets:   defaultBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.enabled {
		return m
	}

	factory := promauto.With(m.registry)

	m.runsTotal = factory.NewCounter(m.counterOpts("runs_total",
		"Total digest runs executed."))
	m.titlesEnriched = factory.NewCounter(m.counterOpts("titles_enriched_total",
		"Titles that completed enrichment."))
	m.titlesFailed = factory.NewCounter(m.counterOpts("titles_failed_total",
		"Titles excluded from a run because their scrape failed."))

	m.postsCategorized = factory.NewCounterVec(m.counterOpts("posts_categorized_total",
		"Community posts classified, by tag."), []string{"tag"})
	m.sentimentTallies = factory.NewCounterVec(m.counterOpts("sentiment_total",
		"Aggregate per-title sentiment results, by polarity."), []string{"polarity"})
	m.devCommsSignals = factory.NewCounterVec(m.counterOpts("dev_comms_signals_total",
		"Developer-comms signals detected, by kind."), []string{"kind"})

	m.calendarEntriesMined = factory.NewCounter(m.counterOpts("calendar_entries_mined_total",
		"Raw calendar entries mined before deduplication."))
	m.calendarEntriesDeduped = factory.NewCounter(m.counterOpts("calendar_entries_total",
		"Calendar entries surviving deduplication."))
	m.calendarProjections = factory.NewCounter(m.counterOpts("calendar_projections_total",
		"Cadence-projected (estimated) calendar entries."))

	m.stageDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Wall time spent per pipeline stage.",
		Buckets:   m.buckets,
	}, []string{"stage"})

	m.snapshotsWritten = factory.NewCounter(m.counterOpts("snapshots_written_total",
		"History snapshots persisted."))
	m.historyMisses = factory.NewCounter(m.counterOpts("history_misses_total",
		"Runs that found no usable previous snapshot."))

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}
}

// RecordRun counts one completed digest run.
func (m *Manager) RecordRun() {
	if m.enabled {
		m.runsTotal.Inc()
	}
}

// RecordTitles counts enriched and failed titles for one run.
func (m *Manager) RecordTitles(enriched, failed int) {
	if m.enabled {
		m.titlesEnriched.Add(float64(enriched))
		m.titlesFailed.Add(float64(failed))
	}
}

// RecordPostCategory counts one categorized community post.
func (m *Manager) RecordPostCategory(tag string) {
	if m.enabled {
		m.postsCategorized.WithLabelValues(tag).Inc()
	}
}

// RecordSentiment counts one per-title aggregate sentiment result.
func (m *Manager) RecordSentiment(polarity string) {
	if m.enabled {
		m.sentimentTallies.WithLabelValues(polarity).Inc()
	}
}

// RecordDevCommsSignal counts one detected dev-comms signal kind.
func (m *Manager) RecordDevCommsSignal(kind string) {
	if m.enabled {
		m.devCommsSignals.WithLabelValues(kind).Inc()
	}
}

// RecordCalendar counts mined and surviving calendar entries plus cadence
// projections for one run.
func (m *Manager) RecordCalendar(mined, kept, projected int) {
	if m.enabled {
		m.calendarEntriesMined.Add(float64(mined))
		m.calendarEntriesDeduped.Add(float64(kept))
		m.calendarProjections.Add(float64(projected))
	}
}

// ObserveStage records one stage's wall time.
func (m *Manager) ObserveStage(stage string, d time.Duration) {
	if m.enabled {
		m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// RecordSnapshotWritten counts one persisted history snapshot.
func (m *Manager) RecordSnapshotWritten() {
	if m.enabled {
		m.snapshotsWritten.Inc()
	}
}

// RecordHistoryMiss counts a run with no usable previous snapshot.
func (m *Manager) RecordHistoryMiss() {
	if m.enabled {
		m.historyMisses.Inc()
	}
}
