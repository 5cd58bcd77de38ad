package qsearch

import (
	"log"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Driver runs the adaptive Grover search for one valid placement. Each Run
owns a fresh simulator — the amplitude vector is never shared across
attempts — and escalates the iteration count from 1 until a measured
placement passes oracle verification or the budget runs out.
*/
type Driver struct {
	config  *Config
	seeds   *rand.Rand
	metrics *Metrics
}

func NewDriver(opts ...Option) *Driver {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Driver{
		config:  config,
		seeds:   rand.New(rand.NewSource(seed)),
		metrics: newMetrics(),
	}
}

// Metrics exposes the driver's counters across every Run.
func (d *Driver) Metrics() *Metrics {
	return d.metrics
}

/*
Run searches until a measured placement verifies as valid. The loop body:
spread the freshly reset register into equal superposition, run k Grover
iterations, measure the whole register jointly, then re-run the marking
oracle on the collapsed register against a fresh output qubit and measure
that. Output |1⟩ means the measurement really is valid and becomes the
result; otherwise the register is reset and k advances. k past the cap
fails with *SearchExhaustedError.
*/
func (d *Driver) Run() (Placement, error) {
	runConfig := *d.config
	runConfig.Seed = d.seeds.Int63()
	s := NewSimulator(&runConfig)

	register, err := s.Allocate(registerSize)
	if err != nil {
		return Placement{}, err
	}

	phase := ToPhaseOracle(MarkValidPlacements)

	for k := 1; k <= d.config.MaxIterations; k++ {
		for _, q := range register {
			s.H(q)
		}

		if err := GroverIterate(s, register, phase, k); err != nil {
			return Placement{}, err
		}

		bits, err := s.MeasureAll(register)
		if err != nil {
			return Placement{}, err
		}

		valid, err := d.verify(s, register)
		if err != nil {
			return Placement{}, err
		}
		d.metrics.recordAttempt(k)

		if valid {
			placement, err := PlacementFromBits(bits)
			if err != nil {
				return Placement{}, err
			}
			d.metrics.recordPlacement()
			errnie.Info("grover search found placement %06b with k=%d", placement.Int(), k)
			return placement, nil
		}

		log.Printf("measured invalid placement at k=%d, escalating", k)
		if err := s.ResetAll(register); err != nil {
			return Placement{}, err
		}
	}

	return Placement{}, &SearchExhaustedError{Cap: d.config.MaxIterations}
}

// RunSearch is the one-shot entry point: build a driver and run it once.
func RunSearch(opts ...Option) (Placement, error) {
	return NewDriver(opts...).Run()
}

// verify re-runs the marking oracle on the collapsed register against a
// fresh output qubit and measures it. The register is classical at this
// point, so the measurement is deterministic.
func (d *Driver) verify(s *Simulator, register []Qubit) (bool, error) {
	outputs, err := s.Allocate(1)
	if err != nil {
		return false, err
	}
	target := outputs[0]

	if err := MarkValidPlacements(s, register, target); err != nil {
		return false, err
	}
	valid, err := s.Measure(target)
	if err != nil {
		return false, err
	}
	if err := s.Reset(target); err != nil {
		return false, err
	}
	return valid, s.Release(target)
}
