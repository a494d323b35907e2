// Package trend generates the narrative hypothesis linking a title's
// player-count movement to its developer activity.
//
// The engine is a fixed, ordered list of (predicate, template) branches
// evaluated top to bottom; the first match wins. Bands overlap conceptually
// (a surge is also growth), so branch order is part of the contract. Keep
// it as data, never fold it into nested conditionals.
package trend

import "fmt"

// Band thresholds in percent month-over-month.
const (
	surgeThreshold        = 10.0
	growthThreshold       = 2.0
	declineThreshold      = -2.0
	sharpDeclineThreshold = -10.0

	// elevatedPctAll marks a title still near its all-time peak, where a
	// sharp drop reads as post-launch normalization rather than trouble.
	elevatedPctAll = 40.0
)

// Signals is everything the engine branches on for one title.
type Signals struct {
	TrendPct *float64
	PctAll   float64

	HasSeason  bool
	HasContent bool
	HasBalance bool
	HasBugs    bool
	HasNews    bool

	SeasonName     string
	ContentDetails string
	LatestNewsDate string
}

func (s Signals) surging() bool   { return s.TrendPct != nil && *s.TrendPct > surgeThreshold }
func (s Signals) growing() bool   { return s.TrendPct != nil && *s.TrendPct > growthThreshold }
func (s Signals) declining() bool { return s.TrendPct != nil && *s.TrendPct < declineThreshold }
func (s Signals) sharplyDeclining() bool {
	return s.TrendPct != nil && *s.TrendPct < sharpDeclineThreshold
}
func (s Signals) stable() bool { return s.TrendPct != nil && !s.growing() && !s.declining() }

// branch is one (predicate, outcome) pair in the decision chain.
type branch struct {
	match  func(Signals) bool
	render func(Signals) string
}

var branches = []branch{
	{
		match: func(s Signals) bool { return s.surging() && s.HasSeason },
		render: func(s Signals) string {
			return fmt.Sprintf("Surge likely driven by new season launch%s. "+
				"Fresh content typically triggers a player spike in the first 2-4 weeks.",
				parenthesized(s.SeasonName))
		},
	},
	{
		match: func(s Signals) bool { return s.growing() && s.HasSeason },
		render: func(s Signals) string {
			return fmt.Sprintf("Growth likely driven by%s season launch bringing returning and new players.",
				parenthesized(s.SeasonName))
		},
	},
	{
		match: func(s Signals) bool { return s.growing() && s.HasContent },
		render: func(s Signals) string {
			return fmt.Sprintf("New content%s appears to be driving engagement. "+
				"Player interest tends to spike around major content drops.",
				parenthesized(s.ContentDetails))
		},
	},
	{
		match: func(s Signals) bool { return s.growing() && s.HasBalance },
		render: func(Signals) string {
			return "Growth coincides with recent balance changes - meta shifts often " +
				"re-engage lapsed players curious about the new state of play."
		},
	},
	{
		match: func(s Signals) bool {
			return s.growing() && s.HasBugs && !s.HasContent && !s.HasSeason
		},
		render: func(Signals) string {
			return "Growth despite no major content - bug fixes and quality-of-life " +
				"patches may be improving player retention."
		},
	},
	{
		match: func(s Signals) bool { return s.growing() && !s.HasNews },
		render: func(Signals) string {
			return "Organic growth with no recent content updates - may indicate external " +
				"factors such as streamer coverage, a sale, or issues with competing titles."
		},
	},
	{
		match: func(s Signals) bool { return s.growing() },
		render: func(Signals) string {
			return "Growth aligns with recent developer activity. " +
				"Sustained engagement will depend on content cadence."
		},
	},
	{
		match: func(s Signals) bool { return s.sharplyDeclining() && s.PctAll > elevatedPctAll },
		render: func(Signals) string {
			return "Sharp decline from elevated levels - likely post-launch or post-season " +
				"normalization as initial hype fades. This is a typical pattern."
		},
	},
	{
		match: func(s Signals) bool { return s.sharplyDeclining() && s.HasSeason },
		render: func(Signals) string {
			return "Declining sharply despite new season content - may indicate content quality " +
				"concerns or post-launch player churn exceeding new player acquisition."
		},
	},
	{
		match: func(s Signals) bool { return s.declining() && !s.HasNews },
		render: func(s Signals) string {
			since := ""
			if s.LatestNewsDate != "" {
				since = " since " + s.LatestNewsDate
			}
			return fmt.Sprintf("Decline coincides with no developer updates%s - possible content "+
				"drought. Players may be migrating to competing titles with fresher content.", since)
		},
	},
	{
		match: func(s Signals) bool { return s.declining() && s.HasSeason },
		render: func(Signals) string {
			return "Declining despite active season - may signal that the current content cycle " +
				"is not resonating with the player base, or competition is pulling players away."
		},
	},
	{
		match: func(s Signals) bool { return s.declining() && s.HasContent },
		render: func(Signals) string {
			return "Declining despite new content additions - the updates may not be addressing " +
				"core player concerns, or the player base is in a natural contraction cycle."
		},
	},
	{
		match: func(s Signals) bool { return s.declining() },
		render: func(Signals) string {
			return "Decline aligns with typical end-of-content-cycle patterns. " +
				"Watch for upcoming announcements that could reverse the trend."
		},
	},
	{
		match: func(s Signals) bool { return s.stable() && s.HasSeason },
		render: func(Signals) string {
			return "Stable player base despite new season - suggests the game has found its core " +
				"audience. Season content is maintaining but not expanding the player pool."
		},
	},
	{
		match: func(s Signals) bool { return s.stable() && !s.HasNews },
		render: func(Signals) string {
			return "Stable without recent updates - indicates a loyal core player base. " +
				"Growth will likely require fresh content or events."
		},
	},
	{
		match: func(s Signals) bool { return s.stable() },
		render: func(Signals) string {
			return "Stable player base suggests healthy retention with existing content. " +
				"The game is maintaining its audience effectively."
		},
	},
}

// Hypothesize returns the first matching narrative for the given signals.
func Hypothesize(s Signals) string {
	if s.TrendPct == nil {
		return "Insufficient data to determine trend drivers."
	}
	for _, b := range branches {
		if b.match(s) {
			return b.render(s)
		}
	}
	return "Mixed signals - insufficient data to determine a clear trend driver."
}

func parenthesized(detail string) string {
	if detail == "" {
		return ""
	}
	return " (" + detail + ")"
}
