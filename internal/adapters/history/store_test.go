package history_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/gamepulse/internal/adapters/history"
	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/pkg/clock"
	. "github.com/smartystreets/goconvey/convey"
)

var testDay = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestStore(t *testing.T) {
	Convey("Given a snapshot store in a temp directory", t, func() {
		ctx := context.Background()
		dir := filepath.Join(t.TempDir(), "history")
		store := history.New(dir, history.WithClock(clock.Fixed(testDay)))

		snap := model.Snapshot{
			Date: "2026-03-09",
			Games: []model.SnapshotTitle{
				{Name: "Surge Arena", Rank: 1, Peak24h: 120000},
				{Name: "Fading Realm", Rank: 2, Peak24h: 40000},
			},
		}

		Convey("When no snapshot has ever been written", func() {
			So(store.LoadPrevious(ctx), ShouldBeNil)
		})

		Convey("When a prior-day snapshot exists", func() {
			So(store.Save(ctx, snap), ShouldBeNil)

			prev := store.LoadPrevious(ctx)

			Convey("Then it loads keyed by title name", func() {
				So(prev, ShouldHaveLength, 2)
				So(prev["Surge Arena"].Rank, ShouldEqual, 1)
				So(prev["Fading Realm"].Peak24h, ShouldEqual, 40000)
			})
		})

		Convey("When only today's snapshot exists", func() {
			today := snap
			today.Date = "2026-03-10"
			So(store.Save(ctx, today), ShouldBeNil)

			Convey("Then it is not served as previous", func() {
				So(store.LoadPrevious(ctx), ShouldBeNil)
			})
		})

		Convey("When several prior days exist", func() {
			older := snap
			older.Date = "2026-03-01"
			older.Games = []model.SnapshotTitle{{Name: "Stale", Rank: 9}}
			So(store.Save(ctx, older), ShouldBeNil)
			So(store.Save(ctx, snap), ShouldBeNil)

			prev := store.LoadPrevious(ctx)

			Convey("Then the most recent prior day wins", func() {
				So(prev, ShouldContainKey, "Surge Arena")
				So(prev, ShouldNotContainKey, "Stale")
			})
		})

		Convey("When the previous file is corrupt", func() {
			So(os.MkdirAll(dir, 0o755), ShouldBeNil)
			So(os.WriteFile(filepath.Join(dir, "2026-03-09.json"), []byte("{junk"), 0o644), ShouldBeNil)

			Convey("Then it is treated as no previous run", func() {
				So(store.LoadPrevious(ctx), ShouldBeNil)
			})
		})

		Convey("When a second save happens on the same day", func() {
			So(store.Save(ctx, snap), ShouldBeNil)

			changed := snap
			changed.Games = []model.SnapshotTitle{{Name: "Replacement", Rank: 1}}
			So(store.Save(ctx, changed), ShouldBeNil)

			prev := store.LoadPrevious(ctx)

			Convey("Then the first write of the day wins", func() {
				So(prev, ShouldContainKey, "Surge Arena")
				So(prev, ShouldNotContainKey, "Replacement")
			})
		})

		Convey("When non-snapshot files share the directory", func() {
			So(os.MkdirAll(dir, 0o755), ShouldBeNil)
			So(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644), ShouldBeNil)

			Convey("Then they are ignored", func() {
				So(store.LoadPrevious(ctx), ShouldBeNil)
			})
		})
	})
}

func TestSnapshotFrom(t *testing.T) {
	Convey("Given an enriched title", t, func() {
		pct := 4.5
		title := model.EnrichedTitle{
			Title: model.Title{
				Name:       "Surge Arena",
				AppID:      42,
				Peak24h:    120000,
				PeakAll:    300000,
				SteamShare: 0.5,
				News:       []model.NewsItem{{Title: "Season 5 launches"}},
				RedditWeek: []model.CommunityPost{{Title: "top post", Score: 991}},
			},
			Rank:         1,
			PctAll:       40.0,
			TrendPct:     &pct,
			EstTotal24h:  240000,
			TakeawayText: "Surge Arena is growing.",
		}

		Convey("When it is flattened for history", func() {
			st := model.SnapshotFrom(title)

			Convey("Then the snapshot carries the history contract fields", func() {
				So(st.Name, ShouldEqual, "Surge Arena")
				So(st.Rank, ShouldEqual, 1)
				So(*st.TrendPct, ShouldEqual, 4.5)
				So(st.NewsTitles, ShouldResemble, []string{"Season 5 launches"})
				So(*st.RedditWeekTopScore, ShouldEqual, 991)
				So(st.Takeaway, ShouldEqual, "Surge Arena is growing.")
			})
		})
	})
}
