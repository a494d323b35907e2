package takeaway

import (
	"math"
	"sort"

	"github.com/okian/gamepulse/internal/domain/model"
)

// Movers splits titles into winners (> +2% MoM), losers (< -2%), and
// neutrals. Titles without trend data land in neutrals, after the rest.
func Movers(titles []model.EnrichedTitle) model.MoverSets {
	var winners, losers, neutrals []model.EnrichedTitle
	var noTrend []model.EnrichedTitle

	for _, t := range titles {
		switch {
		case t.TrendPct == nil:
			noTrend = append(noTrend, t)
		case *t.TrendPct > growthBand:
			winners = append(winners, t)
		case *t.TrendPct < -growthBand:
			losers = append(losers, t)
		default:
			neutrals = append(neutrals, t)
		}
	}

	sort.SliceStable(winners, func(i, j int) bool { return *winners[i].TrendPct > *winners[j].TrendPct })
	sort.SliceStable(losers, func(i, j int) bool { return *losers[i].TrendPct < *losers[j].TrendPct })
	sort.SliceStable(neutrals, func(i, j int) bool {
		return math.Abs(*neutrals[i].TrendPct) < math.Abs(*neutrals[j].TrendPct)
	})
	neutrals = append(neutrals, noTrend...)

	return model.MoverSets{
		Winners:  movers(winners),
		Neutrals: movers(neutrals),
		Losers:   movers(losers),
	}
}

func movers(titles []model.EnrichedTitle) []model.Mover {
	out := make([]model.Mover, 0, len(titles))
	for _, t := range titles {
		out = append(out, model.Mover{
			Name:       t.Name,
			TrendPct:   t.TrendPct,
			TrendArrow: t.TrendArrow,
			Peak24h:    t.Peak24h,
		})
	}
	return out
}
