package qsearch

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCollectMany(t *testing.T) {
	Convey("Given a collector with a fixed seed", t, func(c C) {
		ctx := context.Background()

		Convey("It returns n valid placements in attempt order", func(c C) {
			placements, err := CollectMany(ctx, 10, WithSeed(3))

			c.So(err, ShouldBeNil)
			c.So(len(placements), ShouldEqual, 10)
			for _, p := range placements {
				c.So(p.Valid(), ShouldBeTrue)
			}
		})

		Convey("A non-positive count collects nothing", func(c C) {
			placements, err := CollectMany(ctx, 0, WithSeed(3))

			c.So(err, ShouldBeNil)
			c.So(placements, ShouldBeEmpty)
		})

		Convey("Parallel fan-out matches the sequential result", func(c C) {
			// Seeds are drawn per slot before any attempt runs, so the
			// result sequence is independent of goroutine scheduling.
			sequential, err := CollectMany(ctx, 12, WithSeed(5), WithParallelism(1))
			c.So(err, ShouldBeNil)

			parallel, err := CollectMany(ctx, 12, WithSeed(5), WithParallelism(4))
			c.So(err, ShouldBeNil)

			c.So(parallel, ShouldResemble, sequential)
		})

		Convey("A failed attempt aborts the whole collection", func(c C) {
			_, err := CollectMany(ctx, 5, WithSeed(3), WithIterationCap(0))

			var serr *SearchExhaustedError
			c.So(errors.As(err, &serr), ShouldBeTrue)
		})

		Convey("A cancelled context aborts the collection", func(c C) {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := CollectMany(cancelled, 5, WithSeed(3))
			c.So(err, ShouldNotBeNil)
		})
	})
}

func TestCollectUnique(t *testing.T) {
	Convey("Given a collector with a fixed seed", t, func(c C) {
		ctx := context.Background()

		Convey("It deduplicates while preserving discovery order", func(c C) {
			uniques, found, err := CollectUnique(ctx, 80, WithSeed(21))

			c.So(err, ShouldBeNil)
			c.So(found, ShouldEqual, len(uniques))
			c.So(found, ShouldBeLessThanOrEqualTo, 16)
			c.So(found, ShouldBeGreaterThanOrEqualTo, 10)

			for i, p := range uniques {
				c.So(p.Valid(), ShouldBeTrue)
				for j := 0; j < i; j++ {
					c.So(p.Equal(uniques[j]), ShouldBeFalse)
				}
			}
		})

		Convey("A fixed seed replays the identical discovery sequence", func(c C) {
			first, firstCount, err := CollectUnique(ctx, 40, WithSeed(17))
			c.So(err, ShouldBeNil)

			second, secondCount, err := CollectUnique(ctx, 40, WithSeed(17))
			c.So(err, ShouldBeNil)

			c.So(secondCount, ShouldEqual, firstCount)
			c.So(second, ShouldResemble, first)
		})

		Convey("A failed attempt aborts like CollectMany", func(c C) {
			_, _, err := CollectUnique(ctx, 5, WithSeed(3), WithIterationCap(0))

			var serr *SearchExhaustedError
			c.So(errors.As(err, &serr), ShouldBeTrue)
		})
	})
}
