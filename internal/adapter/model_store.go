package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "github.com/mouse-blink/peptrace/internal/model"
	"gopkg.in/yaml.v3"
)

type atomDocument struct {
	Name string     `yaml:"name"`
	Pos  [3]float64 `yaml:"pos,flow"`
}

type residueDocument struct {
	SeqNum int            `yaml:"seq"`
	Name   string         `yaml:"name"`
	Atoms  []atomDocument `yaml:"atoms"`
}

type chainDocument struct {
	ID       string            `yaml:"id"`
	Score    float64           `yaml:"score"`
	Residues []residueDocument `yaml:"residues"`
}

type reportDocument struct {
	RunID     string          `yaml:"run_id"`
	CreatedAt time.Time       `yaml:"created_at"`
	Source    string          `yaml:"source"`
	Peaks     int             `yaml:"peaks"`
	Chains    []chainDocument `yaml:"chains"`
}

// ModelStore persists traced models.
type ModelStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReport(path m.Path) (m.Report, error)
}

type yamlModelStore struct{}

// NewModelStore constructs a ModelStore writing YAML documents named by
// the hash of their content.
func NewModelStore() ModelStore {
	return &yamlModelStore{}
}

func (s *yamlModelStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	data, err := yaml.Marshal(toReportDocument(report))
	if err != nil {
		return "", fmt.Errorf("failed to encode model: %w", err)
	}

	name, err := contentHash(data)
	if err != nil {
		return "", fmt.Errorf("failed to hash model: %w", err)
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(string(dir), name+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write model %s: %w", path, err)
	}

	return m.Path(path), nil
}

func (s *yamlModelStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read model %s: %w", path, err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Report{}, fmt.Errorf("failed to parse model %s: %w", path, err)
	}

	return fromReportDocument(doc), nil
}

func toReportDocument(report m.Report) reportDocument {
	doc := reportDocument{
		RunID:     report.RunID,
		CreatedAt: report.CreatedAt.UTC(),
		Source:    string(report.Source),
		Peaks:     report.Peaks,
		Chains:    make([]chainDocument, 0, len(report.Model.Fragments)),
	}

	scores := make(map[string]float64, len(report.Chains))
	for _, c := range report.Chains {
		scores[c.ID] = c.Score
	}

	for _, frag := range report.Model.Fragments {
		chain := chainDocument{ID: frag.ID, Score: scores[frag.ID]}

		for _, res := range frag.Residues {
			rd := residueDocument{SeqNum: res.SeqNum, Name: res.Name}
			for _, atom := range res.Atoms {
				rd.Atoms = append(rd.Atoms, atomDocument{Name: atom.Name, Pos: triple(atom.Position)})
			}

			chain.Residues = append(chain.Residues, rd)
		}

		doc.Chains = append(doc.Chains, chain)
	}

	return doc
}

func fromReportDocument(doc reportDocument) m.Report {
	report := m.Report{
		RunID:     doc.RunID,
		CreatedAt: doc.CreatedAt,
		Source:    m.Path(doc.Source),
		Peaks:     doc.Peaks,
	}

	for _, chain := range doc.Chains {
		frag := m.Fragment{ID: chain.ID}

		for _, rd := range chain.Residues {
			res := m.Residue{SeqNum: rd.SeqNum, Name: rd.Name}
			for _, ad := range rd.Atoms {
				res.Atoms = append(res.Atoms, m.Atom{Name: ad.Name, Position: vec(ad.Pos)})
			}

			frag.Residues = append(frag.Residues, res)
		}

		report.Model.Fragments = append(report.Model.Fragments, frag)
		report.Chains = append(report.Chains, m.ChainSummary{ID: chain.ID, Residues: len(frag.Residues), Score: chain.Score})
	}

	return report
}
