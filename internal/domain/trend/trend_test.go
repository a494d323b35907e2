package trend_test

import (
	"testing"

	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/trend"
	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }

func TestHypothesize(t *testing.T) {
	Convey("Given trend signals", t, func() {
		Convey("When there is no trend data", func() {
			out := trend.Hypothesize(trend.Signals{})

			Convey("Then the engine admits it", func() {
				So(out, ShouldEqual, "Insufficient data to determine trend drivers.")
			})
		})

		Convey("When a surge coincides with a season launch", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:   fp(25.0),
				HasSeason:  true,
				SeasonName: "Season 5: Reckoning",
			})

			Convey("Then the surge branch wins and names the season", func() {
				So(out, ShouldContainSubstring, "Surge likely driven by new season launch")
				So(out, ShouldContainSubstring, "(Season 5: Reckoning)")
			})
		})

		Convey("When a surge has no season but new content exists", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:   fp(15.0),
				HasContent: true,
				HasNews:    true,
			})

			Convey("Then it falls through to the content branch", func() {
				So(out, ShouldContainSubstring, "New content")
				So(out, ShouldContainSubstring, "driving engagement")
			})
		})

		Convey("When growth coincides with balance changes only", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:   fp(5.0),
				HasBalance: true,
				HasNews:    true,
			})

			So(out, ShouldContainSubstring, "balance changes")
		})

		Convey("When growth happens with only bug fixes", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct: fp(3.0),
				HasBugs:  true,
				HasNews:  true,
			})

			So(out, ShouldContainSubstring, "bug fixes and quality-of-life")
		})

		Convey("When growth happens with no news at all", func() {
			out := trend.Hypothesize(trend.Signals{TrendPct: fp(4.0)})

			So(out, ShouldContainSubstring, "Organic growth")
		})

		Convey("When a sharp decline starts from near the all-time peak", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:  fp(-20.0),
				PctAll:    60.0,
				HasSeason: true,
			})

			Convey("Then normalization beats the season-quality branch", func() {
				So(out, ShouldContainSubstring, "post-launch or post-season")
			})
		})

		Convey("When a sharp decline happens despite a new season at low levels", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:  fp(-15.0),
				PctAll:    10.0,
				HasSeason: true,
			})

			So(out, ShouldContainSubstring, "Declining sharply despite new season")
		})

		Convey("When a decline coincides with a content drought", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:       fp(-5.0),
				LatestNewsDate: "Jan 12",
			})

			Convey("Then the drought branch fires without a news date qualifier", func() {
				So(out, ShouldContainSubstring, "no developer updates since Jan 12")
			})
		})

		Convey("When a mild decline has news but no other signal", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct: fp(-4.0),
				HasNews:  true,
			})

			So(out, ShouldContainSubstring, "end-of-content-cycle")
		})

		Convey("When the trend is flat with a running season", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct:  fp(0.5),
				HasSeason: true,
				HasNews:   true,
			})

			So(out, ShouldContainSubstring, "Stable player base despite new season")
		})

		Convey("When the trend is flat with no news", func() {
			out := trend.Hypothesize(trend.Signals{TrendPct: fp(-1.0)})

			So(out, ShouldContainSubstring, "loyal core player base")
		})

		Convey("When the trend is flat with ordinary news", func() {
			out := trend.Hypothesize(trend.Signals{
				TrendPct: fp(1.0),
				HasNews:  true,
			})

			So(out, ShouldContainSubstring, "healthy retention")
		})
	})
}

func TestSignalsFor(t *testing.T) {
	Convey("Given an enriched title", t, func() {
		title := model.EnrichedTitle{
			Title: model.Title{
				News: []model.NewsItem{{Title: "Patch", Date: "Feb 3"}},
			},
			TrendPct: fp(7.0),
			PctAll:   42.0,
			DevComms: model.DevCommsSummary{
				HasNewSeason: true,
				SeasonName:   "Season 2",
			},
		}

		Convey("When signals are collected", func() {
			s := trend.SignalsFor(title)

			Convey("Then every field maps through", func() {
				So(*s.TrendPct, ShouldEqual, 7.0)
				So(s.PctAll, ShouldEqual, 42.0)
				So(s.HasSeason, ShouldBeTrue)
				So(s.HasNews, ShouldBeTrue)
				So(s.SeasonName, ShouldEqual, "Season 2")
				So(s.LatestNewsDate, ShouldEqual, "Feb 3")
			})
		})
	})
}
