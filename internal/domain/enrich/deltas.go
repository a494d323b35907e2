package enrich

import "github.com/okian/gamepulse/internal/domain/model"

// ComputeDeltas copies the prior run's figures into each title and computes
// run-over-run deltas. previous maps title name to its snapshot entry; a nil
// map (first run) or a missing name yields nil deltas, never an error.
// RankDelta is previous minus current, so positive means the title moved up.
func ComputeDeltas(titles []model.EnrichedTitle, previous map[string]model.SnapshotTitle) {
	for i := range titles {
		t := &titles[i]
		t.Prev = nil
		t.Peak24hDelta = nil
		t.RankDelta = nil
		if previous == nil {
			continue
		}

		prev, ok := previous[t.Name]
		if !ok {
			continue
		}

		prevRank := prev.Rank
		prevPeak := prev.Peak24h
		t.Prev = &model.PrevStats{
			Rank:     &prevRank,
			Peak24h:  &prevPeak,
			TrendPct: prev.TrendPct,
			Takeaway: prev.Takeaway,
		}
		if prevPeak != 0 {
			d := t.Peak24h - prevPeak
			t.Peak24hDelta = &d
		}
		if prevRank != 0 {
			d := prevRank - t.Rank
			t.RankDelta = &d
		}
	}
}
