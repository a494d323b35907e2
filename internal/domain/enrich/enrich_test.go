package enrich_test

import (
	"testing"

	"github.com/okian/gamepulse/internal/domain/enrich"
	"github.com/okian/gamepulse/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestEnrich(t *testing.T) {
	Convey("Given raw titles to enrich", t, func() {
		Convey("When titles are ranked", func() {
			titles := []model.Title{
				{Name: "C", Peak24h: 100},
				{Name: "A", Peak24h: 900},
				{Name: "B", Peak24h: 500},
			}
			out := enrich.Enrich(titles)

			Convey("Then rank is a dense 1..N permutation by 24h peak descending", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].Name, ShouldEqual, "A")
				So(out[0].Rank, ShouldEqual, 1)
				So(out[1].Name, ShouldEqual, "B")
				So(out[1].Rank, ShouldEqual, 2)
				So(out[2].Name, ShouldEqual, "C")
				So(out[2].Rank, ShouldEqual, 3)
			})

			Convey("Then the input slice order is untouched", func() {
				So(titles[0].Name, ShouldEqual, "C")
			})
		})

		Convey("When two titles tie on 24h peak", func() {
			out := enrich.Enrich([]model.Title{
				{Name: "First", Peak24h: 100},
				{Name: "Second", Peak24h: 100},
			})

			Convey("Then input order breaks the tie", func() {
				So(out[0].Name, ShouldEqual, "First")
				So(out[1].Name, ShouldEqual, "Second")
			})
		})

		Convey("When computing share of all-time peak", func() {
			out := enrich.Enrich([]model.Title{
				{Name: "A", Peak24h: 50000, PeakAll: 50000},
				{Name: "B", Peak24h: 10000, PeakAll: 100000},
				{Name: "Z", Peak24h: 10, PeakAll: 0},
			})

			Convey("Then pct_all follows the contract", func() {
				So(out[0].PctAll, ShouldEqual, 100.0)
				So(out[1].PctAll, ShouldEqual, 10.0)
				So(out[2].PctAll, ShouldEqual, 0.0)
			})
		})

		Convey("When the newest month has a pct_gain", func() {
			out := enrich.Enrich([]model.Title{{
				Name:    "A",
				Months:  []model.MonthStat{{Month: "Aug 2026", Avg: fp(1000), PctGain: fp(12.0)}},
				Peak24h: 1,
			}})

			Convey("Then trend fields derive from it", func() {
				So(*out[0].TrendPct, ShouldEqual, 12.0)
				So(out[0].TrendArrow, ShouldEqual, enrich.ArrowUp)
				So(out[0].TrendCSS, ShouldEqual, "up")
			})
		})

		Convey("When the newest month lacks a pct_gain but the second has one", func() {
			out := enrich.Enrich([]model.Title{{
				Name: "A",
				Months: []model.MonthStat{
					{Month: "Aug 2026"},
					{Month: "Jul 2026", PctGain: fp(-7.5)},
				},
			}})

			Convey("Then the second month's value is used", func() {
				So(*out[0].TrendPct, ShouldEqual, -7.5)
				So(out[0].TrendArrow, ShouldEqual, enrich.ArrowDown)
				So(out[0].TrendCSS, ShouldEqual, "down")
			})
		})

		Convey("When a title has no months at all", func() {
			out := enrich.Enrich([]model.Title{{Name: "A"}})

			Convey("Then the trend is unknown, not zero", func() {
				So(out[0].TrendPct, ShouldBeNil)
				So(out[0].TrendArrow, ShouldEqual, enrich.ArrowUnknown)
				So(out[0].TrendCSS, ShouldEqual, "neutral")
			})
		})

		Convey("When building the average trend window", func() {
			out := enrich.Enrich([]model.Title{{
				Name: "A",
				Months: []model.MonthStat{
					{Month: "Aug", Avg: fp(400)},
					{Month: "Jul", Avg: fp(300)},
					{Month: "Jun"},
					{Month: "May", Avg: fp(100)},
					{Month: "Apr", Avg: fp(50)},
				},
			}})

			Convey("Then only the newest four months with averages appear, oldest first", func() {
				got := out[0].AvgTrend
				So(got, ShouldHaveLength, 3)
				So(got[0].Month, ShouldEqual, "May")
				So(got[1].Month, ShouldEqual, "Jul")
				So(got[2].Month, ShouldEqual, "Aug")
			})
		})

		Convey("When computing peak windows", func() {
			out := enrich.Enrich([]model.Title{{
				Name: "A",
				Months: []model.MonthStat{
					{Month: "Aug", Peak: ip(500)},
					{Month: "Jul", Peak: ip(900)},
					{Month: "Jun", Peak: ip(200)},
					{Month: "May", Peak: ip(2000)},
				},
			}})

			Convey("Then each window takes its max", func() {
				So(*out[0].Peak30d, ShouldEqual, 500)
				So(*out[0].Peak3m, ShouldEqual, 900)
				So(*out[0].Peak6m, ShouldEqual, 2000)
			})
		})

		Convey("When estimating cross-platform totals", func() {
			out := enrich.Enrich([]model.Title{
				{Name: "Steam", Peak24h: 1000, PeakAll: 2000, SteamShare: 1.0},
				{Name: "Cross", Peak24h: 500, PeakAll: 1000, SteamShare: 0.5},
				{Name: "None", Peak24h: 300, PeakAll: 600},
			})

			Convey("Then steam share scales the estimates", func() {
				So(out[0].SteamOnly, ShouldBeTrue)
				So(out[0].EstTotal24h, ShouldEqual, 1000)
				So(out[1].SteamOnly, ShouldBeFalse)
				So(out[1].EstTotal24h, ShouldEqual, 1000)
				So(out[1].EstTotalAll, ShouldEqual, 2000)
			})

			Convey("Then a missing share falls back to the raw peak", func() {
				So(out[2].EstTotal24h, ShouldEqual, 300)
				So(out[2].EstTotalAll, ShouldEqual, 600)
			})
		})

		Convey("When the input is empty", func() {
			So(enrich.Enrich(nil), ShouldBeEmpty)
		})
	})
}

func TestComputeDeltas(t *testing.T) {
	Convey("Given enriched titles and a previous snapshot", t, func() {
		Convey("When there is no previous run", func() {
			titles := enrich.Enrich([]model.Title{{Name: "A", Peak24h: 100}})
			enrich.ComputeDeltas(titles, nil)

			Convey("Then every delta field is nil", func() {
				So(titles[0].Prev, ShouldBeNil)
				So(titles[0].Peak24hDelta, ShouldBeNil)
				So(titles[0].RankDelta, ShouldBeNil)
			})
		})

		Convey("When the previous snapshot has the title", func() {
			titles := enrich.Enrich([]model.Title{
				{Name: "A", Peak24h: 1200},
				{Name: "B", Peak24h: 800},
			})
			prev := map[string]model.SnapshotTitle{
				"A": {Name: "A", Rank: 2, Peak24h: 1000, TrendPct: fp(3.0), Takeaway: "was fine"},
			}
			enrich.ComputeDeltas(titles, prev)

			Convey("Then prev stats and deltas are filled for the matched title", func() {
				a := titles[0]
				So(a.Name, ShouldEqual, "A")
				So(a.Prev, ShouldNotBeNil)
				So(*a.Prev.Rank, ShouldEqual, 2)
				So(a.Prev.Takeaway, ShouldEqual, "was fine")
				So(*a.Peak24hDelta, ShouldEqual, 200)
				So(*a.RankDelta, ShouldEqual, 1)
			})

			Convey("Then the unmatched title keeps nil deltas", func() {
				So(titles[1].Prev, ShouldBeNil)
				So(titles[1].Peak24hDelta, ShouldBeNil)
			})
		})

		Convey("When the previous entry has zero rank or peak", func() {
			titles := enrich.Enrich([]model.Title{{Name: "A", Peak24h: 500}})
			enrich.ComputeDeltas(titles, map[string]model.SnapshotTitle{
				"A": {Name: "A"},
			})

			Convey("Then zero sentinels suppress the deltas", func() {
				So(titles[0].Prev, ShouldNotBeNil)
				So(titles[0].Peak24hDelta, ShouldBeNil)
				So(titles[0].RankDelta, ShouldBeNil)
			})
		})
	})
}
