package plot

import (
	"reflect"
	"testing"
)

func TestStructureYAMLRoundTrip(t *testing.T) {
	original := &PlotStructure{
		Name:         "Heist Arc",
		Description:  "A compact heist structure.",
		NarrativeArc: ArcSevenPoint,
		GenreAffinities: map[string]float64{
			"noir": 0.9,
		},
		PlotPoints: []PlotPoint{
			{
				Name:        "The Job",
				Description: "The crew learns about the score.",
				Examples:    []string{"Rififi's jewelry shop"},
				Features:    map[string]any{"position": "beginning"},
			},
			{
				Name:        "The Getaway",
				Description: "Escape under pressure.",
			},
		},
	}

	data, err := MarshalStructureYAML(original)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := UnmarshalStructureYAML(data)
	if err != nil {
		t.Fatal(err)
	}

	if restored.Name != original.Name || restored.NarrativeArc != original.NarrativeArc {
		t.Errorf("metadata lost: %+v", restored)
	}
	if len(restored.PlotPoints) != 2 {
		t.Fatalf("plot points lost: %d", len(restored.PlotPoints))
	}
	if restored.PlotPoints[0].Name != "The Job" || restored.PlotPoints[1].Name != "The Getaway" {
		t.Errorf("plot point order not preserved: %v", restored.PointNames())
	}
	if !reflect.DeepEqual(restored.GenreAffinities, original.GenreAffinities) {
		t.Errorf("genre affinities = %v, want %v", restored.GenreAffinities, original.GenreAffinities)
	}
}

func TestUnmarshalStructureToleratesUnknownArc(t *testing.T) {
	doc := []byte(`name: Odd Arc
description: carries an arc from the future
narrative_arc: quantum_loop
plot_points:
  - name: Loop
    description: it all happens again
`)

	s, err := UnmarshalStructureYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if s.NarrativeArc != "" {
		t.Errorf("unknown arc must load as absent, got %q", s.NarrativeArc)
	}
}

func TestUnmarshalStructureRejectsDuplicatePointNames(t *testing.T) {
	doc := []byte(`name: Dup
description: two beats share a name
plot_points:
  - name: Beat
    description: first
  - name: Beat
    description: second
`)

	if _, err := UnmarshalStructureYAML(doc); err == nil {
		t.Error("duplicate plot point names must be rejected")
	}
}

func TestStructureJSONRoundTrip(t *testing.T) {
	original := &PlotStructure{
		Name:         "JSON Arc",
		Description:  "round trips through JSON",
		NarrativeArc: ArcKishotenketsu,
		PlotPoints: []PlotPoint{
			{Name: "Ki", Description: "introduction of the scene"},
			{Name: "Ten", Description: "an unexpected development"},
		},
	}

	data, err := MarshalStructureJSON(original)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := UnmarshalStructureJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if restored.NarrativeArc != ArcKishotenketsu {
		t.Errorf("arc = %q, want %q", restored.NarrativeArc, ArcKishotenketsu)
	}
	if !reflect.DeepEqual(restored.PointNames(), []string{"Ki", "Ten"}) {
		t.Errorf("points = %v", restored.PointNames())
	}
}
