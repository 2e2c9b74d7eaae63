package adapter

import (
	"context"

	m "github.com/mouse-blink/peptrace/internal/model"
)

// SequenceAssigner docks a sequence onto a traced fragment. It returns one
// letter codes, one per residue, or an empty string when nothing fits.
type SequenceAssigner interface {
	AssignSequence(ctx context.Context, fragment m.Fragment, density DensitySampler) (string, error)
}

type noopSequenceAssigner struct{}

// NewNoopSequenceAssigner returns a SequenceAssigner that never assigns.
func NewNoopSequenceAssigner() SequenceAssigner {
	return noopSequenceAssigner{}
}

func (noopSequenceAssigner) AssignSequence(_ context.Context, _ m.Fragment, _ DensitySampler) (string, error) {
	return "", nil
}

var threeLetterCodes = map[byte]string{
	'A': "ALA", 'R': "ARG", 'N': "ASN", 'D': "ASP", 'C': "CYS",
	'Q': "GLN", 'E': "GLU", 'G': "GLY", 'H': "HIS", 'I': "ILE",
	'L': "LEU", 'K': "LYS", 'M': "MET", 'F': "PHE", 'P': "PRO",
	'S': "SER", 'T': "THR", 'W': "TRP", 'Y': "TYR", 'V': "VAL",
}

// ResidueName maps a one letter code to its residue name, UNK when unknown.
func ResidueName(code byte) string {
	if name, ok := threeLetterCodes[code]; ok {
		return name
	}

	return "UNK"
}
