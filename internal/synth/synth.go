// Package synth generates synthetic telemetry batches.
//
// The generator exists for demos and for exercising the pipeline without a
// live scrape: each archetype produces a title whose month history, news
// feed, and community posts light up a different set of analysis paths.
// Output is deterministic for a given seed.
package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/gamepulse/internal/adapters/batch"
	"github.com/okian/gamepulse/internal/domain/model"
)

// Archetype indices. Generation cycles through them.
const (
	archSurging = iota
	archDeclining
	archStable
	archSteamOnly
	archSparse
	archCount
)

// Generation ranges.
const (
	basePeakMin    = 20_000
	basePeakRange  = 480_000
	monthsPerTitle = 8
	weekPostCount  = 6
	monthPostCount = 4

	surgeGainPct   = 18.0
	declineGainPct = -14.0
	stableJitter   = 1.5
	steamShareLow  = 0.35
)

// Generator produces synthetic batches.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source. Identical seeds produce identical
// batches for the same title count and reference time.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNow sets the reference time used for month labels and news dates.
func WithNow(now time.Time) Option {
	return func(g *Generator) {
		if !now.IsZero() {
			g.now = now
		}
	}
}

// New constructs a Generator with defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Batch generates n titles plus one synthetic scrape failure for every
// five titles, so failure reporting paths stay exercised.
func (g *Generator) Batch(n int) batch.Batch {
	var b batch.Batch
	for i := 0; i < n; i++ {
		b.Games = append(b.Games, g.title(i))
	}
	for i := 0; i < n/5; i++ {
		b.Failed = append(b.Failed, fmt.Sprintf("Unreachable Title %d", i+1))
	}
	return b
}

func (g *Generator) title(i int) model.Title {
	arch := i % archCount
	name := fmt.Sprintf("%s %d", archName(arch), i+1)
	peak := basePeakMin + g.rng.Intn(basePeakRange)

	t := model.Title{
		Name:       name,
		AppID:      100000 + i,
		Subreddit:  fmt.Sprintf("r/synth%d", i+1),
		Genre:      "Shooter",
		SteamShare: 1.0,
		Peak24h:    peak,
		PeakAll:    peak * (2 + g.rng.Intn(4)),
		Months:     g.months(arch),
	}
	if arch == archSteamOnly {
		t.SteamShare = steamShareLow
	}
	if arch != archSparse {
		t.News = g.news(name)
		t.ExternalNews = g.press(name)
		t.RedditWeek = g.posts(name, weekPostCount)
		t.RedditMonth = g.posts(name, monthPostCount)
	}
	return t
}

func archName(arch int) string {
	switch arch {
	case archSurging:
		return "Surge Arena"
	case archDeclining:
		return "Fading Realm"
	case archStable:
		return "Steady State"
	case archSteamOnly:
		return "Crossplay Siege"
	default:
		return "Quiet Signal"
	}
}

// months builds a newest-first history whose pct_gain trajectory matches
// the archetype. The sparse archetype gets nil gains so the no-trend
// fallbacks run.
func (g *Generator) months(arch int) []model.MonthStat {
	months := make([]model.MonthStat, 0, monthsPerTitle)
	for m := 0; m < monthsPerTitle; m++ {
		label := g.now.AddDate(0, -m, 0).Format("Jan 2006")
		avg := 10_000 + g.rng.Float64()*90_000
		peak := int(avg * 2)
		stat := model.MonthStat{Month: label, Avg: &avg, Peak: &peak}
		if arch != archSparse {
			pct := g.gainFor(arch)
			gain := avg * pct / 100
			stat.PctGain = &pct
			stat.Gain = &gain
		}
		months = append(months, stat)
	}
	return months
}

func (g *Generator) gainFor(arch int) float64 {
	switch arch {
	case archSurging:
		return surgeGainPct + g.rng.Float64()*4
	case archDeclining:
		return declineGainPct - g.rng.Float64()*4
	default:
		return -stableJitter + g.rng.Float64()*2*stableJitter
	}
}

func (g *Generator) news(name string) []model.NewsItem {
	dated := g.now.AddDate(0, 0, 14).Format("January 2")
	return []model.NewsItem{
		{
			Title:    fmt.Sprintf("%s Season 3: Ashfall is live", name),
			Date:     g.now.AddDate(0, 0, -2).Format("Jan 2"),
			URL:      "https://example.com/news/season-3",
			Contents: "Season 3: Ashfall launches today with a new map called Caldera Ridge. Weapon balance changes hit the SMG class. Fixed an issue causing crashes on startup. Fixed a bug with party invites.",
		},
		{
			Title:    fmt.Sprintf("%s roadmap update", name),
			IsPatch:  false,
			Date:     g.now.AddDate(0, 0, -5).Format("Jan 2"),
			URL:      "https://example.com/news/roadmap",
			Contents: fmt.Sprintf("The ranked playlist arrives on %s. More details coming soon.", dated),
		},
		{
			Title:    "Patch notes 3.0.1",
			IsPatch:  true,
			Date:     g.now.AddDate(0, 0, -1).Format("Jan 2"),
			URL:      "https://example.com/news/patch-301",
			Contents: "Fixed an exploit with ladder clipping. Resolved a memory leak on long sessions.",
		},
	}
}

func (g *Generator) press(name string) []model.PressArticle {
	return []model.PressArticle{
		{Title: fmt.Sprintf("%s review roundup", name), Source: "Synth Gaming Weekly", Date: g.now.Format("Jan 2, 2006"), URL: "https://example.com/press/1"},
		{Title: fmt.Sprintf("Why %s keeps growing", name), Source: "The Playtest", Date: g.now.Format("Jan 2, 2006"), URL: "https://example.com/press/2"},
	}
}

// posts cycles templates so the categorizer sees every rule fire.
func (g *Generator) posts(name string, n int) []model.CommunityPost {
	templates := []model.CommunityPost{
		{Title: "New season announcement megathread", Flair: "News"},
		{Title: "Why can't they fix the servers", Flair: ""},
		{Title: "This game is amazing, best update yet", Flair: ""},
		{Title: "Insane clutch to win the final circle", Flair: "Gameplay"},
		{Title: fmt.Sprintf("I painted the %s logo on my wall", name), Flair: "Creative"},
		{Title: "What loadout are you running this week?", Flair: ""},
	}
	posts := make([]model.CommunityPost, 0, n)
	for i := 0; i < n; i++ {
		p := templates[i%len(templates)]
		p.Score = 50 + g.rng.Intn(5000)
		p.Permalink = fmt.Sprintf("https://reddit.example/%d", i)
		posts = append(posts, p)
	}
	return posts
}
