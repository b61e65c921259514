// Package plot models canonical narrative structures and measures how
// well free-form story text conforms to them.
package plot

// PlotPoint is a single named story beat. Values are treated as read-only
// after construction; the validator matches beats by name, so names must
// be unique within a structure.
type PlotPoint struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Examples    []string       `json:"examples,omitempty" yaml:"examples,omitempty"`
	Features    map[string]any `json:"features,omitempty" yaml:"features,omitempty"`
}

// PlotStructure is an ordered sequence of plot points. The order is the
// canonical sequence the structure expects a story to follow.
type PlotStructure struct {
	Name            string             `json:"name" yaml:"name"`
	Description     string             `json:"description" yaml:"description"`
	PlotPoints      []PlotPoint        `json:"plot_points" yaml:"plot_points"`
	NarrativeArc    NarrativeArc       `json:"narrative_arc,omitempty" yaml:"narrative_arc,omitempty"`
	GenreAffinities map[string]float64 `json:"genre_affinities,omitempty" yaml:"genre_affinities,omitempty"`
}

// PointNames returns the beat names in structure order.
func (s *PlotStructure) PointNames() []string {
	names := make([]string, len(s.PlotPoints))
	for i, pp := range s.PlotPoints {
		names[i] = pp.Name
	}
	return names
}
