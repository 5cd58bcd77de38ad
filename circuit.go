package qsearch

import "math"

// Unitary2 is a 2×2 single-qubit gate matrix, row-major.
type Unitary2 [2][2]complex128

// Dagger is the conjugate transpose, the gate's inverse.
func (u Unitary2) Dagger() Unitary2 {
	conj := func(c complex128) complex128 {
		return complex(real(c), -imag(c))
	}
	return Unitary2{
		{conj(u[0][0]), conj(u[1][0])},
		{conj(u[0][1]), conj(u[1][1])},
	}
}

var (
	// PauliX is the NOT gate.
	PauliX = Unitary2{
		{0, 1},
		{1, 0},
	}
	// PauliZ flips the phase of |1⟩.
	PauliZ = Unitary2{
		{1, 0},
		{0, -1},
	}
	// Hadamard2 rotates between the computational and the ± basis.
	Hadamard2 = Unitary2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
)

/*
Gate is one reversible step of a circuit. Every gate knows its own inverse
so a recorded sequence can be unwound exactly, which is what the
within/apply pattern below relies on.
*/
type Gate interface {
	Apply(s *Simulator)
	Inverse() Gate
}

// Circuit is an ordered gate sequence.
type Circuit []Gate

func (c Circuit) Run(s *Simulator) {
	for _, g := range c {
		g.Apply(s)
	}
}

// Inverse reverses the sequence and inverts each gate.
func (c Circuit) Inverse() Circuit {
	inv := make(Circuit, len(c))
	for i, g := range c {
		inv[len(c)-1-i] = g.Inverse()
	}
	return inv
}

/*
Within runs prep, then body, then prep's exact inverse — on every exit
path, including panics and body errors. The pattern guarantees that
whatever prep computed onto ancillas or temporaries is uncomputed before
control leaves the block, which is what keeps released ancillas at |0⟩
and later amplitude interference intact.
*/
func (s *Simulator) Within(prep Circuit, body func() error) error {
	prep.Run(s)
	defer prep.Inverse().Run(s)
	return body()
}

// XGate applies Pauli-X to Target; self-inverse.
type XGate struct {
	Target Qubit
}

func (g XGate) Apply(s *Simulator) { s.X(g.Target) }
func (g XGate) Inverse() Gate      { return g }

// HGate applies Hadamard to Target; self-inverse.
type HGate struct {
	Target Qubit
}

func (g HGate) Apply(s *Simulator) { s.H(g.Target) }
func (g HGate) Inverse() Gate      { return g }

// CNOTGate flips Target where Control is |1⟩; self-inverse.
type CNOTGate struct {
	Control Qubit
	Target  Qubit
}

func (g CNOTGate) Apply(s *Simulator) { s.CNOT(g.Control, g.Target) }
func (g CNOTGate) Inverse() Gate      { return g }

// CZGate phase-flips where all controls and the target are |1⟩;
// self-inverse.
type CZGate struct {
	Controls []Qubit
	Target   Qubit
}

func (g CZGate) Apply(s *Simulator) { s.ControlledZ(g.Controls, g.Target) }
func (g CZGate) Inverse() Gate      { return g }

// BitControlledGate applies U to Target only where Controls match Pattern.
type BitControlledGate struct {
	Pattern  []bool
	Controls []Qubit
	U        Unitary2
	Target   Qubit
}

func (g BitControlledGate) Apply(s *Simulator) {
	s.ControlledOnBitString(g.Pattern, g.Controls, g.U, g.Target)
}

func (g BitControlledGate) Inverse() Gate {
	return BitControlledGate{
		Pattern:  g.Pattern,
		Controls: g.Controls,
		U:        g.U.Dagger(),
		Target:   g.Target,
	}
}
