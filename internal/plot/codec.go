package plot

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// structureDoc is the on-disk shape of a plot structure. The arc travels
// as its string tag so documents written by newer versions with arcs we
// don't know about still load (the arc is dropped, not rejected).
type structureDoc struct {
	Name            string             `json:"name" yaml:"name" validate:"required"`
	Description     string             `json:"description" yaml:"description" validate:"required"`
	NarrativeArc    string             `json:"narrative_arc,omitempty" yaml:"narrative_arc,omitempty"`
	PlotPoints      []pointDoc         `json:"plot_points" yaml:"plot_points" validate:"required,min=1,dive"`
	GenreAffinities map[string]float64 `json:"genre_affinities,omitempty" yaml:"genre_affinities,omitempty" validate:"omitempty,dive,gte=0,lte=1"`
}

type pointDoc struct {
	Name        string         `json:"name" yaml:"name" validate:"required"`
	Description string         `json:"description" yaml:"description" validate:"required"`
	Examples    []string       `json:"examples,omitempty" yaml:"examples,omitempty"`
	Features    map[string]any `json:"features,omitempty" yaml:"features,omitempty"`
}

func docFromStructure(s *PlotStructure) structureDoc {
	doc := structureDoc{
		Name:            s.Name,
		Description:     s.Description,
		NarrativeArc:    string(s.NarrativeArc),
		GenreAffinities: s.GenreAffinities,
		PlotPoints:      make([]pointDoc, len(s.PlotPoints)),
	}
	for i, pp := range s.PlotPoints {
		doc.PlotPoints[i] = pointDoc{
			Name:        pp.Name,
			Description: pp.Description,
			Examples:    pp.Examples,
			Features:    pp.Features,
		}
	}
	return doc
}

func (d structureDoc) toStructure() (*PlotStructure, error) {
	if err := d.checkUniqueNames(); err != nil {
		return nil, err
	}
	s := &PlotStructure{
		Name:            d.Name,
		Description:     d.Description,
		GenreAffinities: d.GenreAffinities,
		PlotPoints:      make([]PlotPoint, len(d.PlotPoints)),
	}
	if arc, ok := ParseArc(d.NarrativeArc); ok {
		s.NarrativeArc = arc
	}
	for i, pd := range d.PlotPoints {
		s.PlotPoints[i] = PlotPoint{
			Name:        pd.Name,
			Description: pd.Description,
			Examples:    pd.Examples,
			Features:    pd.Features,
		}
	}
	return s, nil
}

func (d structureDoc) checkUniqueNames() error {
	seen := make(map[string]bool, len(d.PlotPoints))
	for _, pd := range d.PlotPoints {
		if seen[pd.Name] {
			return fmt.Errorf("duplicate plot point name %q in structure %q", pd.Name, d.Name)
		}
		seen[pd.Name] = true
	}
	return nil
}

// MarshalStructureYAML serializes a structure as a YAML document.
func MarshalStructureYAML(s *PlotStructure) ([]byte, error) {
	return yaml.Marshal(docFromStructure(s))
}

// UnmarshalStructureYAML parses a structure from a YAML document. An
// unrecognized narrative arc tag loads as an absent arc.
func UnmarshalStructureYAML(data []byte) (*PlotStructure, error) {
	var doc structureDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing structure YAML: %w", err)
	}
	return doc.toStructure()
}

// MarshalStructureJSON serializes a structure as JSON.
func MarshalStructureJSON(s *PlotStructure) ([]byte, error) {
	return json.Marshal(docFromStructure(s))
}

// UnmarshalStructureJSON parses a structure from JSON with the same arc
// tolerance as the YAML path.
func UnmarshalStructureJSON(data []byte) (*PlotStructure, error) {
	var doc structureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing structure JSON: %w", err)
	}
	return doc.toStructure()
}
