package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gamepulse/internal/adapters/batch"
)

func TestLoad(t *testing.T) {
	Convey("Given a batch file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "batch.json")
		body := `{
			"games": [
				{"name": "Surge Arena", "app_id": 100001, "subreddit": "r/surge", "peak_24h": 42000},
				{"name": "Fading Realm", "app_id": 100002, "peak_24h": 9000}
			],
			"failed": ["Unreachable Title 1"]
		}`
		So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			b, err := batch.Load(path)

			Convey("Then games and failures decode", func() {
				So(err, ShouldBeNil)
				So(b.Games, ShouldHaveLength, 2)
				So(b.Games[0].Name, ShouldEqual, "Surge Arena")
				So(b.Games[0].AppID, ShouldEqual, 100001)
				So(b.Games[0].Subreddit, ShouldEqual, "r/surge")
				So(b.Games[1].Peak24h, ShouldEqual, 9000)
				So(b.Failed, ShouldResemble, []string{"Unreachable Title 1"})
			})
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := batch.Load(filepath.Join(t.TempDir(), "missing.json"))

		Convey("Then a read error is reported", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, batch.ErrReadBatch.Error())
		})
	})

	Convey("Given a malformed file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.json")
		So(os.WriteFile(path, []byte("{not json"), 0o600), ShouldBeNil)

		_, err := batch.Load(path)

		Convey("Then a parse error is reported", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, batch.ErrParseBatch.Error())
		})
	})
}
