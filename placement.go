package qsearch

import (
	"fmt"
	"strings"
)

/*
Placement is one observed configuration of the two ships on the 2×2 grid:
the small ship's cell plus the large ship's start and end cells, one
boolean per coordinate. It is the classical outcome of measuring the
6-qubit register, field i holding register qubit i.
*/
type Placement struct {
	SmallX      bool
	SmallY      bool
	LargeStartX bool
	LargeStartY bool
	LargeEndX   bool
	LargeEndY   bool
}

// PlacementFromBits builds a placement from measured register bits in
// register order.
func PlacementFromBits(bits []bool) (Placement, error) {
	if len(bits) != registerSize {
		return Placement{}, &ResourceError{
			Op:     "decode",
			Reason: fmt.Sprintf("placement needs %d bits, got %d", registerSize, len(bits)),
		}
	}
	return Placement{
		SmallX:      bits[smallX],
		SmallY:      bits[smallY],
		LargeStartX: bits[largeStartX],
		LargeStartY: bits[largeStartY],
		LargeEndX:   bits[largeEndX],
		LargeEndY:   bits[largeEndY],
	}, nil
}

// PlacementFromInt decodes an integer in [0, 63], most-significant bit
// first: bit i of the 6-bit value lands on register qubit i.
func PlacementFromInt(v int) (Placement, error) {
	if v < 0 || v > 63 {
		return Placement{}, &ResourceError{
			Op:     "decode",
			Reason: fmt.Sprintf("encoded placement %d outside [0, 63]", v),
		}
	}
	bits := make([]bool, registerSize)
	for i := range bits {
		bits[i] = v&(1<<(registerSize-1-i)) != 0
	}
	return PlacementFromBits(bits)
}

// Bits returns the register bits in register order.
func (p Placement) Bits() [registerSize]bool {
	return [registerSize]bool{
		p.SmallX, p.SmallY,
		p.LargeStartX, p.LargeStartY,
		p.LargeEndX, p.LargeEndY,
	}
}

// Int is the inverse of PlacementFromInt.
func (p Placement) Int() int {
	v := 0
	for i, bit := range p.Bits() {
		if bit {
			v |= 1 << (registerSize - 1 - i)
		}
	}
	return v
}

// Equal reports tuple equality.
func (p Placement) Equal(o Placement) bool {
	return p == o
}

/*
Valid is the closed-form validity predicate the marking oracle computes
reversibly. A placement is valid iff exactly one of the large ship's
coordinate pairs sits on the main diagonal ([0,0] or [1,1]) — which makes
the ship a real axis-adjacent 2×1 domino — and neither large-ship cell
coincides with the small ship. Two-corner placements (identical or
diagonal pairs) count zero or two toggles and stay invalid.
*/
func (p Placement) Valid() bool {
	corner := func(x, y bool) bool {
		return x == y
	}
	validRectangle := corner(p.LargeStartX, p.LargeStartY) != corner(p.LargeEndX, p.LargeEndY)

	hasOverlap := (p.SmallX == p.LargeStartX && p.SmallY == p.LargeStartY) ||
		(p.SmallX == p.LargeEndX && p.SmallY == p.LargeEndY)

	return validRectangle && !hasOverlap
}

// String renders the board: rows are y, columns are x, S the small ship,
// L the large ship's cells, * a collision.
func (p Placement) String() string {
	cells := [2][2]byte{{' ', ' '}, {' ', ' '}}
	put := func(x, y bool, mark byte) {
		col, row := 0, 0
		if x {
			col = 1
		}
		if y {
			row = 1
		}
		if cells[row][col] != ' ' {
			cells[row][col] = '*'
			return
		}
		cells[row][col] = mark
	}
	put(p.LargeStartX, p.LargeStartY, 'L')
	put(p.LargeEndX, p.LargeEndY, 'L')
	put(p.SmallX, p.SmallY, 'S')

	var b strings.Builder
	for row := 0; row < 2; row++ {
		b.WriteString("+-+-+\n")
		fmt.Fprintf(&b, "|%c|%c|\n", cells[row][0], cells[row][1])
	}
	b.WriteString("+-+-+")
	return b.String()
}
