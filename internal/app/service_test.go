package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gamepulse/internal/app"
	"github.com/okian/gamepulse/internal/domain/model"
	"github.com/okian/gamepulse/internal/domain/sentiment"
	"github.com/okian/gamepulse/pkg/clock"
)

var runDay = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

type fakeStore struct {
	previous map[string]model.SnapshotTitle
	saved    []model.Snapshot
	saveErr  error
}

func (f *fakeStore) LoadPrevious(context.Context) map[string]model.SnapshotTitle {
	return f.previous
}

func (f *fakeStore) Save(_ context.Context, snap model.Snapshot) error {
	f.saved = append(f.saved, snap)
	return f.saveErr
}

func fp(v float64) *float64 { return &v }

func sampleTitles() []model.Title {
	avgA, avgB := 50000.0, 9000.0
	peakA, peakB := 90000, 15000
	return []model.Title{
		{
			Name:       "Surge Arena",
			AppID:      100001,
			Subreddit:  "r/surge",
			SteamShare: 1.0,
			Peak24h:    1200,
			PeakAll:    2000,
			Months: []model.MonthStat{
				{Month: "Mar 2026", Avg: &avgA, Peak: &peakA, PctGain: fp(12.0)},
				{Month: "Feb 2026", Avg: &avgA, Peak: &peakA, PctGain: fp(8.0)},
			},
			News: []model.NewsItem{{
				Title:    "Season 4: Verdict is live",
				Date:     "Mar 8",
				URL:      "https://example.com/season-4",
				Contents: "Season 4: Verdict launches with weapon balance changes. Fixed an issue with matchmaking.",
			}},
			RedditWeek: []model.CommunityPost{
				{Title: "Why can't they fix the servers", Score: 900},
				{Title: "This game is amazing", Score: 400},
			},
		},
		{
			Name:       "Fading Realm",
			AppID:      100002,
			SteamShare: 1.0,
			Peak24h:    300,
			PeakAll:    4000,
			Months: []model.MonthStat{
				{Month: "Mar 2026", Avg: &avgB, Peak: &peakB, PctGain: fp(-9.0)},
			},
		},
	}
}

func TestRun(t *testing.T) {
	Convey("Given a service with a frozen clock and a fake store", t, func() {
		store := &fakeStore{
			previous: map[string]model.SnapshotTitle{
				"Surge Arena": {Name: "Surge Arena", Rank: 2, Peak24h: 1000, Takeaway: "Was climbing."},
			},
		}
		svc := app.New(
			app.WithClock(clock.Fixed(runDay)),
			app.WithHistoryStore(store),
		)
		titles := sampleTitles()

		Convey("When running a digest", func() {
			digest, err := svc.Run(context.Background(), titles, []string{"Unreachable Title"})

			Convey("Then the digest frame is populated", func() {
				So(err, ShouldBeNil)
				So(digest.RunID, ShouldNotBeEmpty)
				So(digest.Date, ShouldEqual, "2026-03-10")
				So(digest.FailedNames, ShouldResemble, []string{"Unreachable Title"})
				So(digest.Titles, ShouldHaveLength, 2)
			})

			Convey("Then titles are ranked by peak", func() {
				So(digest.Titles[0].Name, ShouldEqual, "Surge Arena")
				So(digest.Titles[0].Rank, ShouldEqual, 1)
				So(digest.Titles[1].Rank, ShouldEqual, 2)
			})

			Convey("Then classification ran on copies, not the input", func() {
				So(digest.Titles[0].RedditWeek[0].Category, ShouldNotBeEmpty)
				So(digest.Titles[0].RedditWeek[1].Category, ShouldNotBeEmpty)
				So(titles[0].RedditWeek[0].Category, ShouldBeEmpty)
			})

			Convey("Then dev comms and sentiment are attached", func() {
				So(digest.Titles[0].DevComms.HasNewSeason, ShouldBeTrue)
				So(digest.Titles[0].DevComms.HasBalanceChanges, ShouldBeTrue)
				So(digest.Titles[0].Sentiment, ShouldNotBeEmpty)
				So(digest.Titles[1].Sentiment, ShouldEqual, sentiment.Mixed)
			})

			Convey("Then previous-run deltas are computed", func() {
				a := digest.Titles[0]
				So(a.Prev, ShouldNotBeNil)
				So(a.Prev.Takeaway, ShouldEqual, "Was climbing.")
				So(a.Peak24hDelta, ShouldNotBeNil)
				So(*a.Peak24hDelta, ShouldEqual, 200)
				So(a.RankDelta, ShouldNotBeNil)
				So(*a.RankDelta, ShouldEqual, 1)
				So(digest.Titles[1].Prev, ShouldBeNil)
			})

			Convey("Then takeaways, highlights, and movers exist", func() {
				So(digest.Titles[0].TakeawayText, ShouldNotBeEmpty)
				So(digest.Titles[0].Takeaway.State, ShouldNotBeEmpty)
				So(digest.Highlights, ShouldNotBeEmpty)
				So(len(digest.Movers.Winners)+len(digest.Movers.Losers)+len(digest.Movers.Neutrals),
					ShouldEqual, 2)
			})

			Convey("Then one snapshot is saved for the run day", func() {
				So(store.saved, ShouldHaveLength, 1)
				So(store.saved[0].Date, ShouldEqual, "2026-03-10")
				So(store.saved[0].Games, ShouldHaveLength, 2)
				So(store.saved[0].Games[0].Name, ShouldEqual, "Surge Arena")
				So(store.saved[0].Games[0].Takeaway, ShouldEqual, digest.Titles[0].TakeawayText)
			})
		})

		Convey("When the snapshot write fails", func() {
			store.saveErr = errors.New("disk full")
			digest, err := svc.Run(context.Background(), titles, nil)

			Convey("Then the run still succeeds", func() {
				So(err, ShouldBeNil)
				So(digest.Titles, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given a service without a history store", t, func() {
		svc := app.New(app.WithClock(clock.Fixed(runDay)))

		Convey("When running", func() {
			digest, err := svc.Run(context.Background(), sampleTitles(), nil)

			Convey("Then deltas are absent and the run succeeds", func() {
				So(err, ShouldBeNil)
				So(digest.Titles[0].Prev, ShouldBeNil)
				So(digest.Titles[0].Peak24hDelta, ShouldBeNil)
			})
		})
	})
}

func TestRunEmptyBatch(t *testing.T) {
	Convey("Given a batch with zero usable titles", t, func() {
		store := &fakeStore{}
		svc := app.New(
			app.WithClock(clock.Fixed(runDay)),
			app.WithHistoryStore(store),
		)

		Convey("When running", func() {
			digest, err := svc.Run(context.Background(), nil, []string{"A", "B"})

			Convey("Then a failure-only digest is emitted", func() {
				So(err, ShouldBeNil)
				So(digest.Titles, ShouldBeEmpty)
				So(digest.FailedNames, ShouldResemble, []string{"A", "B"})
				So(digest.Highlights, ShouldResemble,
					[]string{"Insufficient trend data for market analysis."})
			})

			Convey("Then no snapshot is written", func() {
				So(store.saved, ShouldBeEmpty)
			})
		})
	})
}
