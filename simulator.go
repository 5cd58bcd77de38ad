package qsearch

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
)

/*
Simulator owns one amplitude vector and the lifecycle of the qubits living
in it. It is the single source of truth for quantum state: gates permute
and rotate amplitudes in place, measurement collapses them, and the
allocation table decides which bit positions are live.

A Simulator is not safe for concurrent use. Independent search attempts
each construct their own instance; no state crosses attempt boundaries.
Measurement is the only source of non-determinism and always draws from
the per-instance seeded rand.
*/
type Simulator struct {
	config  *Config
	wf      *WaveFunction
	live    []bool
	free    []int
	rng     *rand.Rand
	metrics *Metrics
}

func NewSimulator(config *Config) *Simulator {
	if config == nil {
		config = NewConfig()
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		config:  config,
		wf:      newWaveFunction(),
		rng:     rand.New(rand.NewSource(seed)),
		metrics: newMetrics(),
	}
}

// Metrics exposes the instance's counters.
func (s *Simulator) Metrics() *Metrics {
	return s.metrics
}

// Allocate hands out n fresh qubits, all at |0⟩. Released slots are
// reused before the vector grows; growth tensors |0⟩ qubits onto the
// state. Requests that cannot be satisfied fail with *ResourceError.
func (s *Simulator) Allocate(n int) ([]Qubit, error) {
	if n <= 0 {
		return nil, &ResourceError{
			Op:     "allocate",
			Reason: fmt.Sprintf("requested %d qubits", n),
		}
	}

	liveCount := 0
	for _, alive := range s.live {
		if alive {
			liveCount++
		}
	}
	if liveCount+n > s.config.MaxQubits {
		return nil, &ResourceError{
			Op: "allocate",
			Reason: fmt.Sprintf(
				"%d live + %d requested exceeds capacity %d",
				liveCount, n, s.config.MaxQubits,
			),
		}
	}

	qubits := make([]Qubit, 0, n)
	for i := 0; i < n; i++ {
		var slot int
		if len(s.free) > 0 {
			slot = s.free[len(s.free)-1]
			s.free = s.free[:len(s.free)-1]
		} else {
			slot = s.wf.grow()
			s.live = append(s.live, false)
		}
		s.live[slot] = true
		qubits = append(qubits, Qubit{slot: slot, owner: s})
	}

	s.metrics.recordAllocation(n)
	return qubits, nil
}

// Release returns qubits to the free pool. Every released qubit must hold
// |0⟩: amplitude mass on its |1⟩ subspace above tolerance means an oracle
// failed to uncompute and the whole state is suspect, reported as
// *StateLeakError. On success the slot is projected exactly onto |0⟩ so
// reuse starts clean.
func (s *Simulator) Release(qubits ...Qubit) error {
	for _, q := range qubits {
		if q.owner != s || q.slot >= len(s.live) || !s.live[q.slot] {
			return &ResourceError{
				Op:     "release",
				Reason: fmt.Sprintf("qubit %d is not live on this simulator", q.slot),
			}
		}
		if mass := s.wf.mass(q.slot, true); mass > s.config.Tolerance {
			return &StateLeakError{Qubit: q.slot, Probability: mass}
		}
		s.wf.project(q.slot, false)
		s.live[q.slot] = false
		s.free = append(s.free, q.slot)
	}
	s.metrics.recordRelease(len(qubits))
	return nil
}

// X applies the Pauli-X (NOT) gate: swap the |0⟩ and |1⟩ amplitudes of q.
func (s *Simulator) X(q Qubit) {
	bit := 1 << s.check(q)
	amps := s.wf.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
	s.metrics.recordGate()
}

// H applies the Hadamard gate, the butterfly
//
//	|0⟩ → (|0⟩+|1⟩)/√2
//	|1⟩ → (|0⟩−|1⟩)/√2
func (s *Simulator) H(q Qubit) {
	bit := 1 << s.check(q)
	factor := complex(1/math.Sqrt2, 0)
	amps := s.wf.Amplitudes
	for i := range amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := amps[i], amps[j]
			amps[i] = factor * (a0 + a1)
			amps[j] = factor * (a0 - a1)
		}
	}
	s.metrics.recordGate()
}

// CNOT flips target where control is |1⟩.
func (s *Simulator) CNOT(control, target Qubit) {
	cbit := 1 << s.check(control)
	tbit := 1 << s.check(target)
	if cbit == tbit {
		panic("qsearch: CNOT control and target are the same qubit")
	}
	amps := s.wf.Amplitudes
	for i := range amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			amps[i], amps[j] = amps[j], amps[i]
		}
	}
	s.metrics.recordGate()
}

// ControlledZ flips the phase of every basis state where all controls and
// the target hold |1⟩.
func (s *Simulator) ControlledZ(controls []Qubit, target Qubit) {
	mask := 1 << s.check(target)
	for _, c := range controls {
		bit := 1 << s.check(c)
		if mask&bit != 0 {
			panic("qsearch: ControlledZ operands overlap")
		}
		mask |= bit
	}
	amps := s.wf.Amplitudes
	for i := range amps {
		if i&mask == mask {
			amps[i] = -amps[i]
		}
	}
	s.metrics.recordGate()
}

// ControlledOnBitString applies the single-qubit unitary u to target on
// exactly the subspace where the control qubits read as pattern,
// bit-for-bit. Amplitudes outside the matching subspace are untouched.
// This is the workhorse primitive of every oracle in the package; pattern
// may be any length, including empty (an unconditional application).
func (s *Simulator) ControlledOnBitString(pattern []bool, controls []Qubit, u Unitary2, target Qubit) {
	if len(pattern) != len(controls) {
		panic("qsearch: control pattern length does not match control count")
	}

	tbit := 1 << s.check(target)
	matchMask, matchValue := tbit, 0 // target bit folded in so i iterates the |0⟩ half
	for k, c := range controls {
		bit := 1 << s.check(c)
		if bit == tbit {
			panic("qsearch: bit-string control overlaps the target")
		}
		if matchMask&bit != 0 {
			panic("qsearch: duplicate control qubit in bit string")
		}
		matchMask |= bit
		if pattern[k] {
			matchValue |= bit
		}
	}

	amps := s.wf.Amplitudes
	for i := range amps {
		if i&matchMask == matchValue {
			j := i | tbit
			a0, a1 := amps[i], amps[j]
			amps[i] = u[0][0]*a0 + u[0][1]*a1
			amps[j] = u[1][0]*a0 + u[1][1]*a1
		}
	}
	s.metrics.recordGate()
}

// Probability is the marginal chance of measuring q as 1.
func (s *Simulator) Probability(q Qubit) float64 {
	return s.wf.mass(s.check(q), true)
}

// NormSquared reports the total amplitude mass, ≈1 by the unitarity
// invariant.
func (s *Simulator) NormSquared() float64 {
	return s.wf.NormSquared()
}

// Measure samples q's marginal, collapses the full vector onto the
// consistent subspace and renormalizes. Re-measuring an un-reset qubit is
// deterministic: after collapse its marginal is exactly 0 or 1.
func (s *Simulator) Measure(q Qubit) (bool, error) {
	slot := s.check(q)
	p1 := s.wf.mass(slot, true)
	outcome := s.rng.Float64() < p1
	s.wf.project(slot, outcome)
	s.metrics.recordMeasurement()
	return outcome, nil
}

// MeasureAll measures a register jointly and atomically: one draw from
// the true joint distribution over every bit pattern of qs, then a single
// collapse. Correlated qubits therefore collapse together, which naive
// independent per-qubit sampling would get wrong.
func (s *Simulator) MeasureAll(qs []Qubit) ([]bool, error) {
	slots := make([]int, len(qs))
	for k, q := range qs {
		slots[k] = s.check(q)
	}

	// Joint distribution over the 2^len(qs) patterns.
	patterns := make([]float64, 1<<len(qs))
	for i, amplitude := range s.wf.Amplitudes {
		re, im := real(amplitude), imag(amplitude)
		p := re*re + im*im
		if p == 0 {
			continue
		}
		key := 0
		for k, slot := range slots {
			if i&(1<<slot) != 0 {
				key |= 1 << k
			}
		}
		patterns[key] += p
	}

	cumulative := make([]float64, len(patterns))
	floats.CumSum(cumulative, patterns)
	r := s.rng.Float64() * cumulative[len(cumulative)-1]
	chosen := sort.SearchFloat64s(cumulative, r)
	if chosen == len(cumulative) {
		chosen = len(cumulative) - 1
	}
	// A draw can land exactly on a cumulative boundary; skip forward past
	// zero-mass patterns so the collapse target always carries probability.
	for chosen < len(patterns)-1 && patterns[chosen] == 0 {
		chosen++
	}

	// Collapse onto the chosen pattern in one pass.
	for i := range s.wf.Amplitudes {
		for k, slot := range slots {
			if (i&(1<<slot) != 0) != (chosen&(1<<k) != 0) {
				s.wf.Amplitudes[i] = 0
				break
			}
		}
	}
	s.wf.renormalize()
	s.metrics.recordMeasurement()

	bits := make([]bool, len(qs))
	for k := range qs {
		bits[k] = chosen&(1<<k) != 0
	}
	return bits, nil
}

// Reset measures q and conditionally applies X to force it back to |0⟩.
// The measured bit is consumed internally, never revealed.
func (s *Simulator) Reset(q Qubit) error {
	outcome, err := s.Measure(q)
	if err != nil {
		return err
	}
	if outcome {
		s.X(q)
	}
	return nil
}

// ResetAll resets a register qubit by qubit. The per-qubit collapse
// propagates through correlated amplitudes, so the register lands on
// |0…0⟩ regardless of entanglement.
func (s *Simulator) ResetAll(qs []Qubit) error {
	for _, q := range qs {
		if err := s.Reset(q); err != nil {
			return err
		}
	}
	return nil
}
