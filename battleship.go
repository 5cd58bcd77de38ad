package qsearch

import "fmt"

// Register layout of the 6-qubit placement register.
const (
	smallX = iota
	smallY
	largeStartX
	largeStartY
	largeEndX
	largeEndY
	registerSize
)

/*
MarkValidPlacements is the battleship marking oracle: it flips target iff
the register encodes a geometrically valid placement of the 1×1 and 2×1
ships on the 2×2 grid.

Two ancillas carry the intermediate verdicts. validRectangle is toggled
once for each large-ship coordinate pair that sits on the main diagonal
([0,0] or [1,1]); it ends up |1⟩ iff exactly one pair is such a corner,
which is exactly the axis-adjacent large-ship placements. When BOTH pairs
are corners — an identical or diagonal "ship" — the toggles cancel and
the placement stays invalid. hasOverlap starts at |0⟩ and is only ever
flipped toward |1⟩, by the 2-bit equality checks of the small ship
against each large-ship pair, so it reads |1⟩ iff some overlap exists.

Everything the ancillas learned is uncomputed by the Within wrapper, so
they release at |0⟩; a StateLeakError out of the final Release means the
circuit itself is broken.
*/
func MarkValidPlacements(s *Simulator, register []Qubit, target Qubit) error {
	if len(register) != registerSize {
		return &ResourceError{
			Op:     "mark",
			Reason: fmt.Sprintf("placement register has %d qubits, want %d", len(register), registerSize),
		}
	}

	small := [2]Qubit{register[smallX], register[smallY]}
	start := [2]Qubit{register[largeStartX], register[largeStartY]}
	end := [2]Qubit{register[largeEndX], register[largeEndY]}

	ancillas, err := s.Allocate(4)
	if err != nil {
		return err
	}
	validRectangle, hasOverlap := ancillas[0], ancillas[1]
	scratch := [2]Qubit{ancillas[2], ancillas[3]}

	compute := make(Circuit, 0, 4+2*9)
	for _, pair := range [][2]Qubit{start, end} {
		controls := []Qubit{pair[0], pair[1]}
		compute = append(compute,
			BitControlledGate{
				Pattern:  []bool{false, false},
				Controls: controls,
				U:        PauliX,
				Target:   validRectangle,
			},
			BitControlledGate{
				Pattern:  []bool{true, true},
				Controls: controls,
				U:        PauliX,
				Target:   validRectangle,
			},
		)
	}
	compute = append(compute, equalityCircuit(small, start, scratch, hasOverlap)...)
	compute = append(compute, equalityCircuit(small, end, scratch, hasOverlap)...)

	if err := s.Within(compute, func() error {
		s.ControlledOnBitString(
			[]bool{true, false},
			[]Qubit{validRectangle, hasOverlap},
			PauliX,
			target,
		)
		return nil
	}); err != nil {
		return err
	}

	return s.Release(ancillas...)
}

// EvaluateOracle is the classical test entry point: decode an integer in
// [0, 63] into the placement register, run the marking oracle against it
// and report the measured target bit. True means the oracle marked the
// encoded placement valid.
func EvaluateOracle(v int, opts ...Option) (bool, error) {
	placement, err := PlacementFromInt(v)
	if err != nil {
		return false, err
	}

	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}
	s := NewSimulator(config)

	register, err := s.Allocate(registerSize)
	if err != nil {
		return false, err
	}
	for i, bit := range placement.Bits() {
		if bit {
			s.X(register[i])
		}
	}

	outputs, err := s.Allocate(1)
	if err != nil {
		return false, err
	}
	target := outputs[0]

	if err := MarkValidPlacements(s, register, target); err != nil {
		return false, err
	}
	return s.Measure(target)
}
