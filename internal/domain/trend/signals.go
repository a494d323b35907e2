package trend

import "github.com/okian/gamepulse/internal/domain/model"

// SignalsFor collects the branch inputs for one enriched title.
func SignalsFor(t model.EnrichedTitle) Signals {
	s := Signals{
		TrendPct:       t.TrendPct,
		PctAll:         t.PctAll,
		HasSeason:      t.DevComms.HasNewSeason,
		HasContent:     t.DevComms.HasNewContent,
		HasBalance:     t.DevComms.HasBalanceChanges,
		HasBugs:        t.DevComms.HasBugFixes,
		HasNews:        len(t.News) > 0,
		SeasonName:     t.DevComms.SeasonName,
		ContentDetails: t.DevComms.NewContentDetails,
	}
	if len(t.News) > 0 {
		s.LatestNewsDate = t.News[0].Date
	}
	return s
}
