package qsearch

/*
Diffusion is the inversion-about-the-mean operator: conjugate a phase
flip on |1…1⟩ by H and X layers over the whole register, which reflects
every amplitude about their average and amplifies whatever the phase
oracle marked. The layers are unwound by Within, so the operator is its
own clean unitary.
*/
func Diffusion(s *Simulator, register []Qubit) error {
	if len(register) < 2 {
		return &ResourceError{Op: "diffusion", Reason: "register needs at least two qubits"}
	}

	layers := make(Circuit, 0, 2*len(register))
	for _, q := range register {
		layers = append(layers, HGate{Target: q})
	}
	for _, q := range register {
		layers = append(layers, XGate{Target: q})
	}

	return s.Within(layers, func() error {
		last := len(register) - 1
		s.ControlledZ(register[:last], register[last])
		return nil
	})
}

// GroverIterate runs exactly k Grover iterations — phase oracle then
// diffusion — over the register. Choosing k is the caller's problem; the
// iterator holds no adaptive logic.
func GroverIterate(s *Simulator, register []Qubit, phase PhaseOracle, k int) error {
	for i := 0; i < k; i++ {
		if err := phase(s, register); err != nil {
			return err
		}
		if err := Diffusion(s, register); err != nil {
			return err
		}
	}
	return nil
}
