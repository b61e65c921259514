package plot

import (
	"os"
	"path/filepath"
	"testing"
)

const customTemplateYAML = `name: pulp_heist
description: A tight heist structure for crime pulps.
narrative_arc: three_act
plot_points:
  - name: The Job
    description: The crew learns about an impossible score.
  - name: The Plan
    description: Preparation montage assembling tools and allies.
  - name: The Double-Cross
    description: A trusted member betrays the crew mid-heist.
  - name: The Getaway
    description: Escape under pressure with the loot in question.
genre_affinities:
  noir: 0.95
  adventure: 0.6
guidance:
  writer: |
    Keep the pacing relentless and the betrayal personal.
`

func writeTemplateFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverRegistersTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "pulp_heist.yaml", customTemplateYAML)
	writeTemplateFile(t, dir, "notes.txt", "not a template")

	r := NewRegistry(nil)
	d := NewDiscoverer(r, nil)

	registered, err := d.Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if registered != 1 {
		t.Fatalf("expected 1 registered template, got %d", registered)
	}

	tmpl, err := r.Get("pulp_heist")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.NarrativeArc() != ArcThreeAct {
		t.Errorf("arc = %q, want %q", tmpl.NarrativeArc(), ArcThreeAct)
	}

	structure := tmpl.Structure()
	if len(structure.PlotPoints) != 4 {
		t.Errorf("expected 4 plot points, got %d", len(structure.PlotPoints))
	}
	if structure.GenreAffinities["noir"] != 0.95 {
		t.Errorf("genre affinity lost: %v", structure.GenreAffinities)
	}
	if tmpl.PromptEnhancement(RoleWriter) == "" {
		t.Error("writer guidance lost")
	}
	if tmpl.PromptEnhancement(RoleEditor) != "" {
		t.Error("undeclared roles must yield the empty string")
	}
	if tmpl.PromptEnhancement("astronaut") != "" {
		t.Error("unknown roles must yield the empty string")
	}
}

func TestDiscoverSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "broken.yaml", "name: [unclosed")
	writeTemplateFile(t, dir, "incomplete.yaml", "name: no_points\ndescription: has no plot points\n")
	writeTemplateFile(t, dir, "affinity.yaml", `name: out_of_range
description: genre score outside the unit interval
plot_points:
  - name: Beat
    description: a lonely story beat
genre_affinities:
  noir: 1.5
`)
	writeTemplateFile(t, dir, "duplicate.yaml", `name: dup_points
description: two beats share a name
plot_points:
  - name: Beat
    description: first occurrence
  - name: Beat
    description: second occurrence
`)
	writeTemplateFile(t, dir, "good.yaml", customTemplateYAML)

	r := NewRegistry(nil)
	d := NewDiscoverer(r, nil)

	registered, err := d.Discover(dir)
	if err != nil {
		t.Fatalf("one bad file must not abort discovery: %v", err)
	}
	if registered != 1 {
		t.Errorf("expected only the good template, got %d", registered)
	}
	if !r.Has("pulp_heist") {
		t.Error("good template was not registered")
	}
	for _, name := range []string{"no_points", "out_of_range", "dup_points"} {
		if r.Has(name) {
			t.Errorf("bad template %q was registered", name)
		}
	}
}

func TestDiscoverOverridesBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "three_act.yaml", `name: three_act
description: A cut-down three act variant.
plot_points:
  - name: Setup
    description: everything before the turn
  - name: Payoff
    description: everything after the turn
`)

	r := NewRegistry(nil)
	RegisterBuiltins(r)
	d := NewDiscoverer(r, nil)

	if _, err := d.Discover(dir); err != nil {
		t.Fatal(err)
	}

	tmpl, err := r.Get("three_act")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tmpl.Structure().PlotPoints); got != 2 {
		t.Errorf("discovery must override the builtin, got %d points", got)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	r := NewRegistry(nil)
	d := NewDiscoverer(r, nil)

	if _, err := d.Discover(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("unreadable directory must surface an error")
	}
}

func TestDiscoverToleratesUnknownArc(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "future.yaml", `name: future_arc
description: Uses an arc tag this version does not know.
narrative_arc: spiral_of_doom
plot_points:
  - name: Spiral
    description: things repeat, slightly worse each time
`)

	r := NewRegistry(nil)
	d := NewDiscoverer(r, nil)
	if _, err := d.Discover(dir); err != nil {
		t.Fatal(err)
	}

	tmpl, err := r.Get("future_arc")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.NarrativeArc() != "" {
		t.Errorf("unknown arc must load as absent, got %q", tmpl.NarrativeArc())
	}
}
