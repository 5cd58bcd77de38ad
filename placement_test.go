package qsearch

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlacementEncoding(t *testing.T) {
	Convey("Given the integer encoding of placements", t, func(c C) {
		Convey("Decoding is MSB-first into register order", func(c C) {
			p, err := PlacementFromInt(30)

			c.So(err, ShouldBeNil)
			c.So(p.SmallX, ShouldBeFalse)
			c.So(p.SmallY, ShouldBeTrue)
			c.So(p.LargeStartX, ShouldBeTrue)
			c.So(p.LargeStartY, ShouldBeTrue)
			c.So(p.LargeEndX, ShouldBeTrue)
			c.So(p.LargeEndY, ShouldBeFalse)
		})

		Convey("Int round-trips every encoding", func(c C) {
			for v := 0; v <= 63; v++ {
				p, err := PlacementFromInt(v)
				c.So(err, ShouldBeNil)
				c.So(p.Int(), ShouldEqual, v)
			}
		})

		Convey("Out-of-range values are rejected", func(c C) {
			_, err := PlacementFromInt(-1)
			c.So(err, ShouldNotBeNil)

			_, err = PlacementFromInt(64)
			c.So(err, ShouldNotBeNil)
		})

		Convey("Bit slices must carry exactly six bits", func(c C) {
			_, err := PlacementFromBits([]bool{true, false})
			c.So(err, ShouldNotBeNil)
		})
	})
}

func TestPlacementValidity(t *testing.T) {
	Convey("Given the closed-form validity predicate", t, func(c C) {
		Convey("Exactly 16 of the 64 placements are valid", func(c C) {
			count := 0
			for v := 0; v <= 63; v++ {
				p, _ := PlacementFromInt(v)
				if p.Valid() {
					count++
				}
			}
			c.So(count, ShouldEqual, 16)
		})

		Convey("A degenerate large ship is invalid", func(c C) {
			p, _ := PlacementFromInt(0)
			c.So(p.Valid(), ShouldBeFalse)
		})

		Convey("A diagonal large ship is invalid", func(c C) {
			// start [0,0], end [1,1]: both corners toggle and cancel.
			p := Placement{LargeEndX: true, LargeEndY: true, SmallX: true}
			c.So(p.Valid(), ShouldBeFalse)
		})

		Convey("Overlap with the small ship is invalid", func(c C) {
			p := Placement{
				SmallX: true, SmallY: false,
				LargeStartX: true, LargeStartY: true,
				LargeEndX: true, LargeEndY: false,
			}
			c.So(p.Valid(), ShouldBeFalse)
		})
	})
}

func TestPlacementString(t *testing.T) {
	Convey("Given the board rendering", t, func(c C) {
		Convey("Ships land on their grid cells", func(c C) {
			p, _ := PlacementFromInt(30) // small [0,1], large [1,1]-[1,0]
			board := p.String()

			c.So(board, ShouldContainSubstring, "+-+-+")
			c.So(strings.Count(board, "L"), ShouldEqual, 2)
			c.So(strings.Count(board, "S"), ShouldEqual, 1)
		})

		Convey("Colliding ships render a collision marker", func(c C) {
			p := Placement{} // everything at [0,0]
			c.So(p.String(), ShouldContainSubstring, "*")
		})
	})
}
