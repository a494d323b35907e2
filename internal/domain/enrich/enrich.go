// Package enrich turns raw title telemetry into ranked, derived metrics.
//
// Enrich is a pure transform: the input slice and its Titles are never
// written through; every computed field lives on the returned EnrichedTitle
// values. Step order matters and mirrors the digest contract.
package enrich

import (
	"sort"

	"github.com/okian/gamepulse/internal/domain/model"
)

// Trend band thresholds, in percent month-over-month.
const (
	trendUpThreshold   = 2.0
	trendDownThreshold = -2.0
)

// Trend arrows and the CSS hints renderers read directly.
const (
	ArrowUp      = "▲"
	ArrowDown    = "▼"
	ArrowFlat    = "▶"
	ArrowUnknown = "?"
)

// Window sizes over the newest-first month sequence.
const (
	avgTrendWindow = 4
	peak3mWindow   = 3
	peak6mWindow   = 6
)

// Enrich ranks titles by 24h peak and computes all derived metrics.
// Rank is dense 1..N with ties broken by input order (stable sort).
func Enrich(titles []model.Title) []model.EnrichedTitle {
	out := make([]model.EnrichedTitle, len(titles))
	for i, t := range titles {
		out[i] = model.EnrichedTitle{Title: t}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Peak24h > out[j].Peak24h
	})

	for i := range out {
		t := &out[i]
		t.Rank = i + 1

		if t.PeakAll > 0 {
			t.PctAll = float64(t.Peak24h) / float64(t.PeakAll) * 100
		}

		t.TrendPct = latestPctGain(t.Months)
		t.TrendArrow, t.TrendCSS = TrendArrow(t.TrendPct)

		t.AvgTrend = avgTrend(t.Months)
		t.Peak30d = monthPeak(t.Months, 1)
		t.Peak3m = monthPeak(t.Months, peak3mWindow)
		t.Peak6m = monthPeak(t.Months, peak6mWindow)

		t.SteamOnly = t.SteamShare >= 1.0
		if t.SteamShare > 0 {
			t.EstTotal24h = int(float64(t.Peak24h) / t.SteamShare)
			t.EstTotalAll = int(float64(t.PeakAll) / t.SteamShare)
		} else {
			t.EstTotal24h = t.Peak24h
			t.EstTotalAll = t.PeakAll
		}
	}
	return out
}

// TrendArrow maps a month-over-month percentage to its arrow glyph and CSS
// class. Nil means no trend data at all.
func TrendArrow(pct *float64) (arrow, css string) {
	switch {
	case pct == nil:
		return ArrowUnknown, "neutral"
	case *pct > trendUpThreshold:
		return ArrowUp, "up"
	case *pct < trendDownThreshold:
		return ArrowDown, "down"
	default:
		return ArrowFlat, "flat"
	}
}

// latestPctGain returns the first non-nil PctGain among the two newest
// months, or nil.
func latestPctGain(months []model.MonthStat) *float64 {
	for i := 0; i < len(months) && i < 2; i++ {
		if months[i].PctGain != nil {
			return months[i].PctGain
		}
	}
	return nil
}

// avgTrend returns the newest avgTrendWindow months that carry an average,
// reversed so the oldest comes first (chart order).
func avgTrend(months []model.MonthStat) []model.MonthStat {
	var picked []model.MonthStat
	for i := 0; i < len(months) && i < avgTrendWindow; i++ {
		if months[i].Avg != nil {
			picked = append(picked, months[i])
		}
	}
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked
}

// monthPeak returns the max Peak over the newest window months, or nil when
// no month in the window has one.
func monthPeak(months []model.MonthStat, window int) *int {
	var best *int
	for i := 0; i < len(months) && i < window; i++ {
		p := months[i].Peak
		if p != nil && (best == nil || *p > *best) {
			best = p
		}
	}
	return best
}
