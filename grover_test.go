package qsearch

import (
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// validMass sums |amp|² over the basis states whose register bits decode
// to a valid placement. Register qubit i lives at bit i of the vector
// index; released ancilla bits are guaranteed zero so they never split
// the sum.
func validMass(s *Simulator) float64 {
	mass := 0.0
	for i, amplitude := range s.wf.Amplitudes {
		p := cmplx.Abs(amplitude)
		if p == 0 {
			continue
		}
		bits := make([]bool, registerSize)
		for k := range bits {
			bits[k] = i&(1<<k) != 0
		}
		placement, err := PlacementFromBits(bits)
		if err != nil {
			panic(err)
		}
		if placement.Valid() {
			mass += p * p
		}
	}
	return mass
}

func TestGroverAmplification(t *testing.T) {
	Convey("Given a register in equal superposition", t, func(c C) {
		config := NewConfig()
		config.Seed = 2
		s := NewSimulator(config)

		register, err := s.Allocate(registerSize)
		c.So(err, ShouldBeNil)
		for _, q := range register {
			s.H(q)
		}

		Convey("Before any iteration the valid mass is M/N", func(c C) {
			c.So(validMass(s), ShouldAlmostEqual, 16.0/64.0, 1e-9)
		})

		Convey("One iteration drives the valid mass to one", func(c C) {
			// M=16 of N=64 means sin θ = 1/2, so sin²(3θ) = 1: a single
			// iteration concentrates all amplitude on the valid states.
			phase := ToPhaseOracle(MarkValidPlacements)
			c.So(GroverIterate(s, register, phase, 1), ShouldBeNil)

			c.So(validMass(s), ShouldAlmostEqual, 1, 1e-9)
			c.So(s.NormSquared(), ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("Every iteration preserves unitarity", func(c C) {
			phase := ToPhaseOracle(MarkValidPlacements)
			for k := 0; k < 4; k++ {
				c.So(GroverIterate(s, register, phase, 1), ShouldBeNil)
				c.So(s.NormSquared(), ShouldAlmostEqual, 1, 1e-9)
			}
		})
	})
}

func TestDiffusion(t *testing.T) {
	Convey("Given the diffusion operator", t, func(c C) {
		config := NewConfig()
		config.Seed = 2
		s := NewSimulator(config)

		Convey("It rejects registers too small to conjugate", func(c C) {
			qs, _ := s.Allocate(1)
			c.So(Diffusion(s, qs), ShouldNotBeNil)
		})

		Convey("It leaves the uniform superposition fixed up to phase", func(c C) {
			qs, _ := s.Allocate(3)
			for _, q := range qs {
				s.H(q)
			}

			c.So(Diffusion(s, qs), ShouldBeNil)
			for _, q := range qs {
				c.So(s.Probability(q), ShouldAlmostEqual, 0.5, 1e-9)
			}
			c.So(s.NormSquared(), ShouldAlmostEqual, 1, 1e-9)
		})
	})
}
