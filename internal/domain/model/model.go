// Package model contains domain models passed between pipeline stages.
package model

import "time"

// Title is one tracked game as delivered by the scraper collaborator.
// It is rebuilt from scratch every run and never mutated by the pipeline;
// computed fields live on EnrichedTitle.
type Title struct {
	Name       string  `json:"name"`
	AppID      int     `json:"app_id"`
	Subreddit  string  `json:"subreddit"`
	Genre      string  `json:"genre"`
	SteamShare float64 `json:"steam_share"` // fraction of total players visible via Steam, (0,1]

	Peak24h int         `json:"peak_24h"`
	PeakAll int         `json:"peak_all"`
	Months  []MonthStat `json:"months"` // newest first, at most 12

	News         []NewsItem      `json:"news"`
	ExternalNews []PressArticle  `json:"external_news"`
	RedditWeek   []CommunityPost `json:"reddit_week"`
	RedditMonth  []CommunityPost `json:"reddit_month"`
}

// MonthStat is one month of player-count telemetry. Nil pointers mean the
// upstream source had no value for that field.
type MonthStat struct {
	Month   string   `json:"month"`
	Avg     *float64 `json:"avg"`
	Gain    *float64 `json:"gain"`
	PctGain *float64 `json:"pct_gain"`
	Peak    *int     `json:"peak"`
}

// NewsItem is one official developer announcement.
type NewsItem struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // publication date as scraped, e.g. "Feb 12"
	URL      string `json:"url"`
	IsPatch  bool   `json:"is_patch"`
	Contents string `json:"contents"`
}

// PressArticle is one external press item about a title.
type PressArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	Date        string `json:"date"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CommunityPost is one community (Reddit) post. Category is assigned by the
// post categorizer, not by the scraper.
type CommunityPost struct {
	Title       string   `json:"title"`
	Score       int      `json:"score"`
	Flair       string   `json:"flair"`
	Permalink   string   `json:"permalink"`
	Category    string   `json:"category,omitempty"`
	TopComments []string `json:"top_comments,omitempty"`
}

// DevCommsSummary holds structured facts mined from a title's news feed.
type DevCommsSummary struct {
	HasNewSeason      bool `json:"has_new_season"`
	HasNewMap         bool `json:"has_new_map"`
	HasBalanceChanges bool `json:"has_balance_changes"`
	HasNewContent     bool `json:"has_new_content"`
	HasBugFixes       bool `json:"has_bug_fixes"`
	HasUpcomingEvent  bool `json:"has_upcoming_event"`

	SeasonName        string `json:"season_name,omitempty"`
	NewContentDetails string `json:"new_content_details,omitempty"`
	BalanceDetails    string `json:"balance_details,omitempty"`
	UpcomingDetails   string `json:"upcoming_details,omitempty"`
	ContentSummary    string `json:"content_summary,omitempty"`
	BugFixCount       int    `json:"bug_fix_count"`
}

// TakeawayParts is the structured 4-part weekly narrative for a title.
type TakeawayParts struct {
	State     string `json:"state"`
	Context   string `json:"context"`
	Community string `json:"community"`
	Outlook   string `json:"outlook"`
}

// PrevStats carries the prior run's figures for a title, copied from the
// history snapshot during delta computation.
type PrevStats struct {
	Rank     *int     `json:"rank"`
	Peak24h  *int     `json:"peak_24h"`
	TrendPct *float64 `json:"trend_pct"`
	Takeaway string   `json:"takeaway,omitempty"`
}

// EnrichedTitle is a Title plus everything the analysis pipeline computes.
type EnrichedTitle struct {
	Title

	Rank       int         `json:"rank"`
	PctAll     float64     `json:"pct_all"`   // peak_24h as a percentage of all-time peak
	TrendPct   *float64    `json:"trend_pct"` // month-over-month change, nil when unknown
	TrendArrow string      `json:"trend_arrow"`
	TrendCSS   string      `json:"trend_css"`
	AvgTrend   []MonthStat `json:"avg_trend"` // oldest first, at most 4
	Peak30d    *int        `json:"peak_30d"`
	Peak3m     *int        `json:"peak_3m"`
	Peak6m     *int        `json:"peak_6m"`

	SteamOnly   bool `json:"steam_only"`
	EstTotal24h int  `json:"est_total_24h"`
	EstTotalAll int  `json:"est_total_all"`

	Prev         *PrevStats `json:"prev,omitempty"`
	Peak24hDelta *int       `json:"peak_24h_delta"`
	RankDelta    *int       `json:"rank_delta"` // positive = moved up since the previous run

	DevComms     DevCommsSummary `json:"dev_comms"`
	Sentiment    string          `json:"sentiment"` // aggregate: positive, negative, or mixed
	Takeaway     TakeawayParts   `json:"takeaway"`
	TakeawayText string          `json:"takeaway_text"` // flattened takeaway kept for history snapshots
}

// Calendar event types.
const (
	EventSeason     = "Season"
	EventPatch      = "Patch"
	EventEvent      = "Event"
	EventContent    = "Content"
	EventRoadmap    = "Roadmap"
	EventIndustry   = "Industry"
	EventNewRelease = "New Release"
)

// Calendar entry importance tiers. Lower is more important.
const (
	ImportanceMust = 1 // always surfaced
	ImportanceNice = 2 // surfaced if space
	ImportanceSkip = 3 // suppressed noise
)

// CalendarEntry is one dated (or projected) release/patch/event fact.
type CalendarEntry struct {
	Game       string     `json:"game"`
	Type       string     `json:"type"`
	DateStr    string     `json:"date_str"`
	Date       *time.Time `json:"date,omitempty"` // nil when the date could not be resolved
	Desc       string     `json:"desc"`
	URL        string     `json:"url,omitempty"`
	Estimated  bool       `json:"estimated"`
	Importance int        `json:"importance"`
}

// MonthBucket groups calendar entries under a "January 2026" style label.
type MonthBucket struct {
	Label   string          `json:"label"`
	Entries []CalendarEntry `json:"entries"`
}

// Calendar is the forward-looking release view built once per digest.
type Calendar struct {
	ThisWeek  []CalendarEntry `json:"this_week"`
	ComingUp  []CalendarEntry `json:"coming_up"`
	Months    []MonthBucket   `json:"months"` // next 10 calendar months, in order
	Estimated []CalendarEntry `json:"estimated"`
}

// MoverSets groups titles into winners, neutrals, and losers by trend.
type MoverSets struct {
	Winners  []Mover `json:"winners"`
	Neutrals []Mover `json:"neutrals"`
	Losers   []Mover `json:"losers"`
}

// Mover is the compact per-title row used in the movers rollup.
type Mover struct {
	Name       string   `json:"name"`
	TrendPct   *float64 `json:"trend_pct"`
	TrendArrow string   `json:"trend_arrow"`
	Peak24h    int      `json:"peak_24h"`
}

// Digest is the complete output of one analysis run.
type Digest struct {
	RunID       string          `json:"run_id"`
	Date        string          `json:"date"`
	Titles      []EnrichedTitle `json:"titles"`
	FailedNames []string        `json:"failed,omitempty"`
	Highlights  []string        `json:"highlights"`
	Movers      MoverSets       `json:"movers"`
	Calendar    Calendar        `json:"calendar"`
}
