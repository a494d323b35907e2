package clock_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gamepulse/pkg/clock"
)

func TestClock(t *testing.T) {
	Convey("Given the system clock", t, func() {
		c := clock.System()

		Convey("Then Now tracks wall time", func() {
			before := time.Now()
			got := c.Now()
			after := time.Now()
			So(got, ShouldHappenOnOrBetween, before, after)
		})
	})

	Convey("Given a fixed clock", t, func() {
		at := time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)
		c := clock.Fixed(at)

		Convey("Then Now always reports the frozen instant", func() {
			So(c.Now(), ShouldResemble, at)
			So(c.Now(), ShouldResemble, at)
		})
	})
}
