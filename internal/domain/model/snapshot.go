package model

// Snapshot is the per-day history record. It is written once per run and
// read back as "previous" by the next run; the JSON field names are part of
// the on-disk contract and must not change.
type Snapshot struct {
	Date  string          `json:"date"`
	Games []SnapshotTitle `json:"games"`
}

// SnapshotTitle is the per-title slice of a Snapshot.
type SnapshotTitle struct {
	Name               string      `json:"name"`
	AppID              int         `json:"app_id"`
	Rank               int         `json:"rank"`
	Peak24h            int         `json:"peak_24h"`
	PeakAll            int         `json:"peak_all"`
	PctAll             float64     `json:"pct_all"`
	TrendPct           *float64    `json:"trend_pct"`
	Months             []MonthStat `json:"months"`
	NewsTitles         []string    `json:"news_titles"`
	RedditWeekTopScore *int        `json:"reddit_week_top_score"`
	Takeaway           string      `json:"takeaway"`
	SteamShare         float64     `json:"steam_share"`
	EstTotal24h        int         `json:"est_total_24h"`
}

// SnapshotFrom flattens an enriched title into its history form.
func SnapshotFrom(t EnrichedTitle) SnapshotTitle {
	st := SnapshotTitle{
		Name:        t.Name,
		AppID:       t.AppID,
		Rank:        t.Rank,
		Peak24h:     t.Peak24h,
		PeakAll:     t.PeakAll,
		PctAll:      t.PctAll,
		TrendPct:    t.TrendPct,
		Months:      t.Months,
		Takeaway:    t.TakeawayText,
		SteamShare:  t.SteamShare,
		EstTotal24h: t.EstTotal24h,
	}
	for _, n := range t.News {
		st.NewsTitles = append(st.NewsTitles, n.Title)
	}
	if len(t.RedditWeek) > 0 {
		score := t.RedditWeek[0].Score
		st.RedditWeekTopScore = &score
	}
	return st
}
