package qsearch

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDriver(t *testing.T) {
	Convey("Given a search driver with a fixed seed", t, func(c C) {
		driver := NewDriver(WithSeed(42))

		Convey("Run returns a valid placement", func(c C) {
			placement, err := driver.Run()

			c.So(err, ShouldBeNil)
			c.So(placement.Valid(), ShouldBeTrue)
		})

		Convey("Repeated runs always terminate on valid placements", func(c C) {
			for i := 0; i < 100; i++ {
				placement, err := driver.Run()
				c.So(err, ShouldBeNil)
				c.So(placement.Valid(), ShouldBeTrue)
			}

			snapshot := driver.Metrics().Snapshot()
			c.So(snapshot.PlacementsFound, ShouldEqual, 100)
			c.So(snapshot.Attempts, ShouldBeGreaterThanOrEqualTo, 100)
		})

		Convey("The same seed replays the same placement", func(c C) {
			first, err := NewDriver(WithSeed(7)).Run()
			c.So(err, ShouldBeNil)

			second, err := NewDriver(WithSeed(7)).Run()
			c.So(err, ShouldBeNil)
			c.So(second.Equal(first), ShouldBeTrue)
		})
	})
}

func TestDriverExhaustion(t *testing.T) {
	Convey("Given a driver with no iteration budget", t, func(c C) {
		driver := NewDriver(WithSeed(13), WithIterationCap(0))

		Convey("Run fails with SearchExhaustedError", func(c C) {
			_, err := driver.Run()

			var serr *SearchExhaustedError
			c.So(errors.As(err, &serr), ShouldBeTrue)
			c.So(serr.Cap, ShouldEqual, 0)
		})
	})
}
