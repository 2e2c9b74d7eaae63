package model

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Backbone and beta-carbon atom names.
const (
	AtomN  = "N"
	AtomCA = "CA"
	AtomC  = "C"
	AtomO  = "O"
	AtomCB = "CB"
)

// DefaultResidueName is used until a sequence has been assigned.
const DefaultResidueName = "ALA"

// Atom is a named atom position.
type Atom struct {
	Name     string
	Position r3.Vec
}

// Residue is an ordered set of named atoms.
type Residue struct {
	SeqNum int
	Name   string
	Atoms  []Atom
}

// Atom looks up an atom by name.
func (r Residue) Atom(name string) (Atom, bool) {
	for _, a := range r.Atoms {
		if a.Name == name {
			return a, true
		}
	}

	return Atom{}, false
}

// Has reports whether every named atom is present.
func (r Residue) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := r.Atom(name); !ok {
			return false
		}
	}

	return true
}

// SetAtom replaces the named atom or appends it.
func (r *Residue) SetAtom(name string, pos r3.Vec) {
	for i := range r.Atoms {
		if r.Atoms[i].Name == name {
			r.Atoms[i].Position = pos
			return
		}
	}

	r.Atoms = append(r.Atoms, Atom{Name: name, Position: pos})
}

// Clone returns a deep copy of the residue.
func (r Residue) Clone() Residue {
	out := r
	out.Atoms = append([]Atom(nil), r.Atoms...)

	return out
}

// Fragment is a labelled polypeptide chain.
type Fragment struct {
	ID       string
	Residues []Residue
}

// Clone returns a deep copy of the fragment.
func (f Fragment) Clone() Fragment {
	out := Fragment{ID: f.ID, Residues: make([]Residue, len(f.Residues))}
	for i, r := range f.Residues {
		out.Residues[i] = r.Clone()
	}

	return out
}

// AtomCount returns the number of atoms over all residues.
func (f Fragment) AtomCount() int {
	n := 0
	for _, r := range f.Residues {
		n += len(r.Atoms)
	}

	return n
}

// Model is an ordered set of fragments.
type Model struct {
	Fragments []Fragment
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	out := Model{Fragments: make([]Fragment, len(m.Fragments))}
	for i, f := range m.Fragments {
		out.Fragments[i] = f.Clone()
	}

	return out
}

// ResidueCount returns the number of residues over all fragments.
func (m Model) ResidueCount() int {
	n := 0
	for _, f := range m.Fragments {
		n += len(f.Residues)
	}

	return n
}

// Without returns the model minus the fragments at the given indices.
func (m Model) Without(indices map[int]struct{}) Model {
	if len(indices) == 0 {
		return m
	}

	out := Model{Fragments: make([]Fragment, 0, len(m.Fragments))}
	for i, f := range m.Fragments {
		if _, drop := indices[i]; drop {
			continue
		}

		out.Fragments = append(out.Fragments, f)
	}

	return out
}
