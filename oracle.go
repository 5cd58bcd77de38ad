package qsearch

/*
MarkingOracle flips target iff the register satisfies a predicate, leaving
the register's amplitudes otherwise undisturbed. Implementations are
reversible circuits: any scratch they allocate must be uncomputed and
released before they return.
*/
type MarkingOracle func(s *Simulator, register []Qubit, target Qubit) error

// PhaseOracle flips the sign of exactly the marked basis states of the
// register; magnitudes are never touched.
type PhaseOracle func(s *Simulator, register []Qubit) error

// equalityCircuit is the 2-bit equality sub-oracle as a plain gate
// sequence: XOR both operand bits onto scratch, flip target where both
// XOR bits read 0 (operands equal), then uncompute the XOR. Scratch must
// arrive at |0⟩ and leaves at |0⟩.
func equalityCircuit(a, b, scratch [2]Qubit, target Qubit) Circuit {
	return Circuit{
		CNOTGate{Control: a[0], Target: scratch[0]},
		CNOTGate{Control: b[0], Target: scratch[0]},
		CNOTGate{Control: a[1], Target: scratch[1]},
		CNOTGate{Control: b[1], Target: scratch[1]},
		BitControlledGate{
			Pattern:  []bool{false, false},
			Controls: []Qubit{scratch[0], scratch[1]},
			U:        PauliX,
			Target:   target,
		},
		CNOTGate{Control: b[1], Target: scratch[1]},
		CNOTGate{Control: a[1], Target: scratch[1]},
		CNOTGate{Control: b[0], Target: scratch[0]},
		CNOTGate{Control: a[0], Target: scratch[0]},
	}
}

// EqualityOracle2 flips target iff the two 2-qubit operands are equal.
// A pure reversible boolean circuit, no approximation anywhere.
func EqualityOracle2(s *Simulator, a, b [2]Qubit, target Qubit) error {
	scratch, err := s.Allocate(2)
	if err != nil {
		return err
	}
	equalityCircuit(a, b, [2]Qubit{scratch[0], scratch[1]}, target).Run(s)
	return s.Release(scratch...)
}

/*
ToPhaseOracle converts a marking oracle into a phase oracle via phase
kickback: a single ancilla prepared in |−⟩ (X then H) turns the oracle's
conditional bit flip into a −1 phase on exactly the marked basis states
of the register. The preparation is unwound by Within, so the ancilla
returns to |0⟩ and releases cleanly. Applying the result twice restores
the state bit-for-bit.
*/
func ToPhaseOracle(mark MarkingOracle) PhaseOracle {
	return func(s *Simulator, register []Qubit) error {
		ancilla, err := s.Allocate(1)
		if err != nil {
			return err
		}
		kick := ancilla[0]

		prep := Circuit{XGate{Target: kick}, HGate{Target: kick}}
		if err := s.Within(prep, func() error {
			return mark(s, register, kick)
		}); err != nil {
			return err
		}

		return s.Release(kick)
	}
}
