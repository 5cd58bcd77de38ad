// wavefunction.go
package qsearch

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

/*
WaveFunction is the full amplitude vector over every live qubit: one
complex amplitude per basis state, 2^qubits entries, bit i of an entry's
index holding qubit slot i. The vector stays normalized (Σ|amp|² ≈ 1)
after every operation; nothing here may introduce drift beyond
floating-point tolerance.
*/
type WaveFunction struct {
	Amplitudes []complex128
	qubits     int
}

// newWaveFunction starts with zero qubits: a single amplitude of 1 on the
// empty basis state.
func newWaveFunction() *WaveFunction {
	return &WaveFunction{
		Amplitudes: []complex128{1},
		qubits:     0,
	}
}

// grow tensors a fresh |0⟩ qubit onto the state as the new highest bit.
// Existing amplitudes already sit at indices where that bit is zero, so
// the vector just doubles with zero padding.
func (wf *WaveFunction) grow() int {
	slot := wf.qubits
	wf.Amplitudes = append(wf.Amplitudes, make([]complex128, len(wf.Amplitudes))...)
	wf.qubits++
	return slot
}

// probabilities returns |amp|² per basis state.
func (wf *WaveFunction) probabilities() []float64 {
	probs := make([]float64, len(wf.Amplitudes))
	for i, amplitude := range wf.Amplitudes {
		p := cmplx.Abs(amplitude)
		probs[i] = p * p
	}
	return probs
}

// NormSquared is the total probability mass, Σ|amp|².
func (wf *WaveFunction) NormSquared() float64 {
	return floats.Sum(wf.probabilities())
}

// mass sums |amp|² over the basis states where the given bit holds the
// given value.
func (wf *WaveFunction) mass(slot int, value bool) float64 {
	bit := 1 << slot
	total := 0.0
	for i, amplitude := range wf.Amplitudes {
		if (i&bit != 0) == value {
			p := cmplx.Abs(amplitude)
			total += p * p
		}
	}
	return total
}

// project zeroes every amplitude where the bit disagrees with value, then
// renormalizes the survivors. The caller must ensure the surviving
// subspace carries non-zero mass.
func (wf *WaveFunction) project(slot int, value bool) {
	bit := 1 << slot
	for i := range wf.Amplitudes {
		if (i&bit != 0) != value {
			wf.Amplitudes[i] = 0
		}
	}
	wf.renormalize()
}

func (wf *WaveFunction) renormalize() {
	norm := math.Sqrt(wf.NormSquared())
	if norm == 0 {
		return
	}
	scale := complex(1/norm, 0)
	for i := range wf.Amplitudes {
		wf.Amplitudes[i] *= scale
	}
}
