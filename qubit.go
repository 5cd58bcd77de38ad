package qsearch

/*
Qubit is an opaque handle onto one bit position of a simulator's amplitude
vector. Qubits are never copied or moved, only referenced: a handle is
valid exactly against the simulator that issued it, from Allocate until
Release. Passing a dead or foreign handle to a gate is a programmer error
and panics, like indexing a slice out of range.
*/
type Qubit struct {
	slot  int
	owner *Simulator
}

// Index exposes the bit position, mostly for log lines and error values.
func (q Qubit) Index() int {
	return q.slot
}

// check validates the handle against the simulator about to operate on it.
func (s *Simulator) check(q Qubit) int {
	if q.owner != s {
		panic("qsearch: qubit handle used against a simulator that did not issue it")
	}
	if q.slot >= len(s.live) || !s.live[q.slot] {
		panic("qsearch: qubit handle used after release")
	}
	return q.slot
}
