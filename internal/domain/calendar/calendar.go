// Package calendar builds the forward-looking release and patch calendar.
//
// Entries are mined from three sources per title (news classification,
// future-date mentions embedded in news bodies, and the upcoming-details
// text from dev comms), merged with the curated industry release list,
// deduplicated, and bucketed relative to an injected clock.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okian/gamepulse/internal/adapters/catalog"
	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/textnorm"
	"github.com/okian/gamepulse/pkg/clock"
)

// Window and horizon defaults.
const (
	defaultHorizonMonths = 10
	thisWeekDays         = 7
	comingUpDays         = 14
	upcomingDescChars    = 200
	cadenceProjections   = 2
)

const summerFestNote = "Summer Game Fest window - expect major shooter reveals and announcements"

// Builder assembles calendars. Construct with New; the zero value is not
// usable.
type Builder struct {
	clock         clock.Clock
	catalog       *catalog.Catalog
	horizonMonths int
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithClock sets the time source. Tests freeze it.
func WithClock(c clock.Clock) Option {
	return func(b *Builder) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithCatalog sets the static catalog supplying cadences and the industry
// release list.
func WithCatalog(c *catalog.Catalog) Option {
	return func(b *Builder) {
		if c != nil {
			b.catalog = c
		}
	}
}

// WithHorizonMonths sets how many future month buckets the calendar covers.
func WithHorizonMonths(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.horizonMonths = n
		}
	}
}

// New creates a Builder with the system clock and the default catalog.
func New(opts ...Option) *Builder {
	b := &Builder{
		clock:         clock.System(),
		catalog:       catalog.Default(),
		horizonMonths: defaultHorizonMonths,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Stats reports entry counts from one Build pass.
type Stats struct {
	// Mined is the raw per-title entry count before deduplication.
	Mined int

	// Kept is the entry count surviving deduplication.
	Kept int

	// Projected is the cadence-projected (estimated) entry count.
	Projected int
}

// Build assembles the calendar for the given enriched titles.
func (b *Builder) Build(titles []model.EnrichedTitle) model.Calendar {
	cal, _ := b.BuildStats(titles)
	return cal
}

// BuildStats assembles the calendar and reports mining counts.
func (b *Builder) BuildStats(titles []model.EnrichedTitle) (model.Calendar, Stats) {
	now := b.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -thisWeekDays)
	twoWeeksAhead := today.AddDate(0, 0, comingUpDays)

	months := b.monthBuckets(now)
	monthIndex := map[string]int{}
	for i, m := range months {
		monthIndex[m.Label] = i
	}

	raw := b.mineEntries(titles, today, monthIndex)
	deduped := deduplicate(raw)

	var thisWeek, comingUp []model.CalendarEntry
	for _, e := range deduped {
		switch {
		case e.Date == nil:
			// Undated entries have no bucket to land in.
		case !e.Date.Before(weekAgo) && !e.Date.After(today):
			thisWeek = append(thisWeek, e)
		case e.Date.After(today) && !e.Date.After(twoWeeksAhead):
			comingUp = append(comingUp, e)
		default:
			if i, ok := monthIndex[monthLabel(*e.Date)]; ok {
				months[i].Entries = append(months[i].Entries, e)
			}
		}
	}

	thisWeek = capPerGame(thisWeek)

	estimated := b.projectCadences(deduped, today, months, monthIndex)

	// Industry-wide releases are curated facts, merged after dedup.
	for _, rel := range b.catalog.IndustryReleases {
		e, ok := industryEntry(rel)
		if !ok {
			continue
		}
		switch {
		case !e.Date.Before(weekAgo) && !e.Date.After(today):
			thisWeek = append(thisWeek, e)
		case e.Date.After(today) && !e.Date.After(twoWeeksAhead):
			comingUp = append(comingUp, e)
		default:
			if i, ok := monthIndex[monthLabel(*e.Date)]; ok {
				months[i].Entries = append(months[i].Entries, e)
			}
		}
	}

	sortByDate(thisWeek, today)
	sortByDate(comingUp, today)
	for i := range months {
		sortByDate(months[i].Entries, today)
	}

	injectSummerNote(months)

	cal := model.Calendar{
		ThisWeek:  thisWeek,
		ComingUp:  comingUp,
		Months:    months,
		Estimated: estimated,
	}
	return cal, Stats{
		Mined:     len(raw),
		Kept:      len(deduped),
		Projected: len(estimated),
	}
}

// mineEntries collects raw calendar entries from every per-title source.
func (b *Builder) mineEntries(titles []model.EnrichedTitle, today time.Time, monthIndex map[string]int) []model.CalendarEntry {
	currentYear := today.Year()
	var raw []model.CalendarEntry

	for _, t := range titles {
		for _, n := range t.News {
			imp := importance(n.Title, n.IsPatch)
			if imp >= model.ImportanceSkip {
				continue
			}
			typ := eventType(n.Title, n.IsPatch)
			desc := textnorm.Normalize(n.Title)

			dateStr := n.Date
			if dateStr == "" {
				dateStr = "Recent"
			}
			raw = append(raw, model.CalendarEntry{
				Game:       t.Name,
				Type:       typ,
				DateStr:    dateStr,
				Date:       publicationDate(n.Date, currentYear),
				Desc:       desc,
				URL:        n.URL,
				Importance: imp,
			})

			// The article body often names the actual event date.
			for _, ref := range minedDates(n.Contents, currentYear) {
				if !ref.t.After(today) {
					continue
				}
				if _, ok := monthIndex[monthLabel(ref.t)]; !ok {
					continue
				}
				mentioned := ref.t
				raw = append(raw, model.CalendarEntry{
					Game:       t.Name,
					Type:       typ,
					DateStr:    mentioned.Format("Jan 02"),
					Date:       &mentioned,
					Desc:       desc + " (mentioned: " + ref.raw + ")",
					URL:        n.URL,
					Importance: imp,
				})
			}
		}

		if t.DevComms.HasUpcomingEvent && t.DevComms.UpcomingDetails != "" {
			detail := textnorm.Normalize(textnorm.Truncate(t.DevComms.UpcomingDetails, upcomingDescChars))
			imp := importance(detail, false)
			if imp < model.ImportanceSkip {
				for _, ref := range minedDates(detail, currentYear) {
					mentioned := ref.t
					raw = append(raw, model.CalendarEntry{
						Game:       t.Name,
						Type:       eventType(detail, false),
						DateStr:    mentioned.Format("Jan 02"),
						Date:       &mentioned,
						Desc:       detail,
						Importance: imp,
					})
				}
			}
		}
	}
	return raw
}

// projectCadences projects up to two future occurrences per title from its
// most recent tier-1 launch, at the catalog's expected cadence. A month that
// already carries a confirmed entry for the title is left alone.
func (b *Builder) projectCadences(deduped []model.CalendarEntry, today time.Time, months []model.MonthBucket, monthIndex map[string]int) []model.CalendarEntry {
	lastMajor := map[string]model.CalendarEntry{}
	for _, e := range deduped {
		if e.Date == nil || e.Importance != model.ImportanceMust {
			continue
		}
		if e.Type != model.EventSeason && e.Type != model.EventContent && e.Type != model.EventEvent {
			continue
		}
		if prev, ok := lastMajor[e.Game]; !ok || e.Date.After(*prev.Date) {
			lastMajor[e.Game] = e
		}
	}

	var estimated []model.CalendarEntry
	games := make([]string, 0, len(lastMajor))
	for game := range lastMajor {
		games = append(games, game)
	}
	sort.Strings(games)

	for _, game := range games {
		cadence, ok := b.catalog.Cadences[game]
		if !ok || cadence.Weeks <= 0 {
			continue
		}
		gap := time.Duration(cadence.Weeks) * 7 * 24 * time.Hour

		next := lastMajor[game].Date.Add(gap)
		for i := 0; i < cadenceProjections; i++ {
			if !next.After(today) {
				next = next.Add(gap)
				continue
			}
			if idx, ok := monthIndex[monthLabel(next)]; ok && !bucketHasGame(months[idx], game) {
				projected := next
				entry := model.CalendarEntry{
					Game:    game,
					Type:    cadence.Label,
					DateStr: "~" + projected.Format("Jan"),
					Date:    &projected,
					Desc: fmt.Sprintf("Next %s expected (based on ~%d-week cadence)",
						strings.ToLower(cadence.Label), cadence.Weeks),
					Estimated:  true,
					Importance: model.ImportanceNice,
				}
				estimated = append(estimated, entry)
				months[idx].Entries = append(months[idx].Entries, entry)
			}
			next = next.Add(gap)
		}
	}
	return estimated
}

// monthBuckets returns the next horizonMonths empty buckets, current month
// excluded (it is covered by this_week and coming_up).
func (b *Builder) monthBuckets(now time.Time) []model.MonthBucket {
	buckets := make([]model.MonthBucket, 0, b.horizonMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for offset := 1; offset <= b.horizonMonths; offset++ {
		buckets = append(buckets, model.MonthBucket{Label: monthLabel(first.AddDate(0, offset, 0))})
	}
	return buckets
}

func industryEntry(rel catalog.IndustryRelease) (model.CalendarEntry, bool) {
	t, err := time.Parse("2006-01-02", rel.Date)
	if err != nil {
		return model.CalendarEntry{}, false
	}
	dateStr := t.Format("Jan 02")
	if !rel.Confirmed {
		dateStr = "~" + t.Format("Jan")
	}
	return model.CalendarEntry{
		Game:       rel.Game,
		Type:       rel.Type,
		DateStr:    dateStr,
		Date:       &t,
		Desc:       rel.Desc,
		Estimated:  !rel.Confirmed,
		Importance: model.ImportanceMust,
	}, true
}

// capPerGame keeps the single highest-importance entry per game.
func capPerGame(entries []model.CalendarEntry) []model.CalendarEntry {
	sorted := make([]model.CalendarEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Importance < sorted[j].Importance })

	seen := map[string]bool{}
	var out []model.CalendarEntry
	for _, e := range sorted {
		if seen[e.Game] {
			continue
		}
		seen[e.Game] = true
		out = append(out, e)
	}
	return out
}

func injectSummerNote(months []model.MonthBucket) {
	for i := range months {
		if !isSummerFestMonth(months[i].Label) {
			continue
		}
		hasNote := false
		for _, e := range months[i].Entries {
			if e.Type == model.EventIndustry {
				hasNote = true
				break
			}
		}
		if hasNote {
			continue
		}
		months[i].Entries = append(months[i].Entries, model.CalendarEntry{
			Game:       "Industry",
			Type:       model.EventIndustry,
			DateStr:    months[i].Label[:3],
			Desc:       summerFestNote,
			Estimated:  true,
			Importance: model.ImportanceMust,
		})
	}
}

func isSummerFestMonth(label string) bool {
	return len(label) >= 4 && (label[:4] == "June" || label[:4] == "July")
}

func bucketHasGame(bucket model.MonthBucket, game string) bool {
	for _, e := range bucket.Entries {
		if e.Game == game {
			return true
		}
	}
	return false
}

func sortByDate(entries []model.CalendarEntry, fallback time.Time) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entryDate(entries[i], fallback).Before(entryDate(entries[j], fallback))
	})
}

func entryDate(e model.CalendarEntry, fallback time.Time) time.Time {
	if e.Date != nil {
		return *e.Date
	}
	return fallback
}

func monthLabel(t time.Time) string {
	return t.Format("January 2006")
}
