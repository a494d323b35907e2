// Package takeaway assembles the per-title 4-part narrative and the
// digest-level executive summary.
package takeaway

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/gamepulse/internal/domain/category"
	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/trend"
)

// Gates for the state and outlook sentences, in percent.
const (
	surgeBand   = 10.0
	growthBand  = 2.0
	declineBand = -10.0

	accelerationGap = 5.0 // |current - previous| MoM gap worth calling out
	nearPeakPct     = 70.0
	farFromPeakPct  = 15.0

	recoveryPrevFloor = -5.0
	bugFixMentionMin  = 3 // bug fixes only worth a fact above this count
)

// Gates for executive-summary bullets.
const (
	highlightGainPct = 5.0
	highlightDropPct = -5.0
)

// dominantShare is the fraction of substantive posts one category needs to
// be called the week's theme.
const dominantShare = 0.6

var categoryDescriptions = map[string]string{
	category.News:       "game updates and announcements",
	category.Criticism:  "player frustrations and complaints",
	category.Praise:     "positive reception and appreciation",
	category.Discussion: "gameplay discussion and strategy",
}

// Synthesize builds the 4-part narrative for one enriched title. The parts
// are also flattened into a single string for history-snapshot compatibility;
// both are returned.
func Synthesize(t model.EnrichedTitle) (model.TakeawayParts, string) {
	parts := model.TakeawayParts{
		State:     stateSentences(t),
		Context:   contextSentences(t),
		Community: communitySentences(t),
		Outlook:   outlookSentences(t),
	}

	combined := []string{parts.State, parts.Context}
	if parts.Community != "" {
		combined = append(combined, parts.Community)
	}
	if parts.Outlook != "" {
		combined = append(combined, parts.Outlook)
	}
	return parts, strings.Join(combined, " ")
}

func stateSentences(t model.EnrichedTitle) string {
	var out []string

	if t.TrendPct != nil {
		pct := *t.TrendPct
		avgSuffix := ""
		if n := len(t.AvgTrend); n > 0 && t.AvgTrend[n-1].Avg != nil {
			avgSuffix = fmt.Sprintf(", averaging %s players over the last 30 days",
				FormatK(*t.AvgTrend[n-1].Avg))
		}

		var s string
		switch {
		case pct > surgeBand:
			s = fmt.Sprintf("%s is surging (%+.1f%% MoM%s)", t.Name, pct, avgSuffix)
		case pct > growthBand:
			s = fmt.Sprintf("%s is growing (%+.1f%% MoM%s)", t.Name, pct, avgSuffix)
		case pct > -growthBand:
			s = fmt.Sprintf("%s is holding steady (%+.1f%%%s)", t.Name, pct, avgSuffix)
		case pct > declineBand:
			s = fmt.Sprintf("%s is declining (%+.1f%% MoM%s)", t.Name, pct, avgSuffix)
		default:
			s = fmt.Sprintf("%s is dropping sharply (%+.1f%% MoM%s)", t.Name, pct, avgSuffix)
		}

		if t.Prev != nil && t.Prev.TrendPct != nil {
			switch prev := *t.Prev.TrendPct; {
			case pct > prev+accelerationGap:
				s += ", accelerating vs. last run"
			case pct < prev-accelerationGap:
				s += ", decelerating vs. last run"
			}
		}
		out = append(out, s+".")
	}

	switch {
	case t.PctAll > nearPeakPct:
		out = append(out, fmt.Sprintf("Currently at %.0f%% of all-time peak - near historical highs.", t.PctAll))
	case t.PctAll < farFromPeakPct:
		out = append(out, fmt.Sprintf("At just %.0f%% of all-time peak - well below historical levels.", t.PctAll))
	}

	if len(out) == 0 {
		return t.Name + ": insufficient trend data."
	}
	return strings.Join(out, " ")
}

func contextSentences(t model.EnrichedTitle) string {
	parts := []string{trend.Hypothesize(trend.SignalsFor(t))}

	var facts []string
	dev := t.DevComms
	if dev.HasNewSeason {
		season := dev.SeasonName
		if season == "" {
			season = "a new season"
		}
		if dev.NewContentDetails != "" {
			facts = append(facts, fmt.Sprintf("%s launched with %s", season, dev.NewContentDetails))
		} else {
			facts = append(facts, season+" launched recently")
		}
	}
	if dev.HasBalanceChanges && dev.BalanceDetails != "" {
		facts = append(facts, "Balance changes to "+dev.BalanceDetails)
	}
	if dev.HasBugFixes && dev.BugFixCount > bugFixMentionMin {
		facts = append(facts, fmt.Sprintf("%d+ bug fixes deployed", dev.BugFixCount))
	}
	if len(facts) > 0 {
		parts = append(parts, "Dev activity: "+strings.Join(facts, "; ")+".")
	}
	return strings.Join(parts, " ")
}

// communitySentences summarizes the category distribution over substantive
// posts (clips, memes, and fan art excluded) plus press coverage. Raw post
// titles are never quoted.
func communitySentences(t model.EnrichedTitle) string {
	var out []string

	counts := map[string]int{}
	var order []string // first-seen category order, keeps tie-breaks stable
	total := 0
	for _, p := range append(append([]model.CommunityPost{}, t.RedditWeek...), t.RedditMonth...) {
		switch p.Category {
		case category.News, category.Criticism, category.Discussion, category.Praise:
			if counts[p.Category] == 0 {
				order = append(order, p.Category)
			}
			counts[p.Category]++
			total++
		}
	}

	if total > 0 {
		sort.SliceStable(order, func(i, j int) bool {
			return counts[order[i]] > counts[order[j]]
		})
		topCat := order[0]
		topCount := counts[topCat]
		desc := categoryDescriptions[topCat]

		switch {
		case total >= 3 && float64(topCount) >= float64(total)*dominantShare:
			switch topCat {
			case category.Criticism:
				out = append(out, fmt.Sprintf("Community sentiment is strongly negative this week - "+
					"%d of %d substantive posts focus on %s.", topCount, total, desc))
			case category.Praise:
				out = append(out, fmt.Sprintf("Community sentiment is strongly positive - "+
					"%d of %d substantive posts express %s.", topCount, total, desc))
			case category.News:
				out = append(out, fmt.Sprintf("Community discussion this week centers on %s - "+
					"%d of %d posts are news-focused.", desc, topCount, total))
			default:
				out = append(out, fmt.Sprintf("Community is actively engaged in %s - "+
					"%d of %d posts this period.", desc, topCount, total))
			}
		case total >= 2:
			var split []string
			for _, cat := range order[:2] {
				split = append(split, fmt.Sprintf("%s (%d posts)", categoryDescriptions[cat], counts[cat]))
			}
			out = append(out, "Mixed community sentiment - discussion split between "+
				strings.Join(split, " and ")+".")
		default:
			out = append(out, "Limited community activity - one substantive post about "+desc+".")
		}
	}

	if press := pressSentence(t.ExternalNews); press != "" {
		out = append(out, press)
	}
	return strings.Join(out, " ")
}

// pressSentence names up to 3 unique outlets covering the title this week.
func pressSentence(articles []model.PressArticle) string {
	if len(articles) == 0 {
		return ""
	}
	var sources []string
	seen := map[string]bool{}
	for i, a := range articles {
		if i == 4 {
			break
		}
		if a.Source == "" || seen[a.Source] {
			continue
		}
		seen[a.Source] = true
		sources = append(sources, a.Source)
		if len(sources) == 3 {
			break
		}
	}

	if len(articles) >= 3 {
		src := "multiple outlets"
		if len(sources) > 0 {
			src = strings.Join(sources, ", ")
		}
		return fmt.Sprintf("Active press coverage from %s (%d articles from gaming press in the past week).",
			src, len(articles))
	}
	src := "press"
	if len(sources) > 0 {
		src = sources[0]
	}
	noun := "articles"
	if len(articles) == 1 {
		noun = "article"
	}
	return fmt.Sprintf("Press coverage from %s (%d %s from gaming press in the past week).",
		src, len(articles), noun)
}

func outlookSentences(t model.EnrichedTitle) string {
	var out []string

	if t.DevComms.HasUpcomingEvent && t.DevComms.UpcomingDetails != "" {
		out = append(out, "Looking ahead: "+t.DevComms.UpcomingDetails)
	}

	if t.Prev != nil && t.Prev.TrendPct != nil && t.TrendPct != nil {
		prev, cur := *t.Prev.TrendPct, *t.TrendPct
		switch {
		case prev < -growthBand && cur < -growthBand:
			out = append(out, "Continued decline from last period - watch for content response.")
		case prev > growthBand && cur > growthBand:
			out = append(out, "Sustained growth trajectory.")
		case prev < recoveryPrevFloor && cur > growthBand:
			out = append(out, "Recovery signal - reversed previous decline.")
		}
	}
	return strings.Join(out, " ")
}

// Highlights produces the executive-summary bullets for the digest header.
func Highlights(titles []model.EnrichedTitle) []string {
	var withTrend []model.EnrichedTitle
	for _, t := range titles {
		if t.TrendPct != nil {
			withTrend = append(withTrend, t)
		}
	}
	if len(withTrend) == 0 {
		return []string{"Insufficient trend data for market analysis."}
	}

	var out []string

	gainer, loser := withTrend[0], withTrend[0]
	for _, t := range withTrend[1:] {
		if *t.TrendPct > *gainer.TrendPct {
			gainer = t
		}
		if *t.TrendPct < *loser.TrendPct {
			loser = t
		}
	}
	if *gainer.TrendPct > highlightGainPct {
		out = append(out, fmt.Sprintf("Biggest mover: %s at %+.1f%% month-over-month.",
			gainer.Name, *gainer.TrendPct))
	}
	if *loser.TrendPct < highlightDropPct {
		out = append(out, fmt.Sprintf("Steepest decline: %s at %+.1f%% month-over-month.",
			loser.Name, *loser.TrendPct))
	}

	// Week-over-week combined 24h peaks, over titles seen in both runs.
	var curTotal, prevTotal int
	for _, t := range titles {
		if t.Prev != nil && t.Prev.Peak24h != nil && *t.Prev.Peak24h > 0 {
			curTotal += t.Peak24h
			prevTotal += *t.Prev.Peak24h
		}
	}
	if prevTotal > 0 {
		delta := float64(curTotal-prevTotal) / float64(prevTotal) * 100
		direction := "down"
		if delta > 0 {
			direction = "up"
		}
		out = append(out, fmt.Sprintf("Combined 24h peaks across all %d tracked titles are %s %.1f%% vs. last week.",
			len(titles), direction, math.Abs(delta)))
	}

	if len(out) == 0 {
		out = append(out, fmt.Sprintf("Tracking %d titles this week.", len(titles)))
	}
	return out
}
