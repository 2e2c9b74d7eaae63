package adapter

import (
	"fmt"
	"os"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// InputStore loads the peaks and density map of a tracing run.
type InputStore interface {
	LoadInput(path m.Path) (m.Input, error)
}

type mapDocument struct {
	Origin  [3]float64 `yaml:"origin"`
	Spacing [3]float64 `yaml:"spacing"`
	Dims    [3]int     `yaml:"dims"`
	Values  []float64  `yaml:"values"`
}

type inputDocument struct {
	Peaks  [][3]float64 `yaml:"peaks"`
	Map    mapDocument  `yaml:"map"`
	Cell   *m.Cell      `yaml:"cell,omitempty"`
	Symops []string     `yaml:"symops,omitempty"`
}

type yamlInputStore struct{}

// NewInputStore constructs an InputStore reading YAML input documents.
func NewInputStore() InputStore {
	return &yamlInputStore{}
}

func (s *yamlInputStore) LoadInput(path m.Path) (m.Input, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Input{}, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	var doc inputDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Input{}, fmt.Errorf("failed to parse input %s: %w", path, err)
	}

	input := m.Input{
		Source: path,
		Peaks:  make([]r3.Vec, len(doc.Peaks)),
		Map: m.MapGrid{
			Origin:  vec(doc.Map.Origin),
			Spacing: vec(doc.Map.Spacing),
			Dims:    doc.Map.Dims,
			Values:  doc.Map.Values,
		},
		Cell: doc.Cell,
	}

	for i, p := range doc.Peaks {
		input.Peaks[i] = vec(p)
	}

	for _, text := range doc.Symops {
		op, err := m.ParseSymop(text)
		if err != nil {
			return m.Input{}, fmt.Errorf("failed to parse input %s: %w", path, err)
		}

		input.Symops = append(input.Symops, op)
	}

	return input, nil
}

func vec(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func triple(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
