package plot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vampirenirmal/plotkit/internal/storage"
)

func TestExportRoundTripsThroughDiscovery(t *testing.T) {
	dir := t.TempDir()

	source := NewRegistry(nil)
	RegisterBuiltins(source)

	exporter := NewExporter(source, storage.NewFileSystem(dir), nil)
	path, err := exporter.Export(context.Background(), "three_act")
	if err != nil {
		t.Fatal(err)
	}
	if path != "three_act.yaml" {
		t.Errorf("path = %q, want three_act.yaml", path)
	}

	restored := NewRegistry(nil)
	n, err := NewDiscoverer(restored, nil).Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("discovered %d templates, want 1", n)
	}

	original, err := source.Get("three_act")
	if err != nil {
		t.Fatal(err)
	}
	// The registration key must survive the trip even though it differs
	// from the structure's display name.
	loaded, err := restored.Get("three_act")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name() != "three_act" {
		t.Errorf("registry name = %q, want three_act", loaded.Name())
	}

	if loaded.NarrativeArc() != original.NarrativeArc() {
		t.Errorf("arc = %q, want %q", loaded.NarrativeArc(), original.NarrativeArc())
	}

	origPoints := original.Structure().PointNames()
	loadedPoints := loaded.Structure().PointNames()
	if len(loadedPoints) != len(origPoints) {
		t.Fatalf("point count = %d, want %d", len(loadedPoints), len(origPoints))
	}
	for i := range origPoints {
		if loadedPoints[i] != origPoints[i] {
			t.Errorf("point %d = %q, want %q", i, loadedPoints[i], origPoints[i])
		}
	}

	for genre, want := range original.SuitableGenres() {
		if got := loaded.SuitableGenres()[genre]; got != want {
			t.Errorf("affinity[%s] = %v, want %v", genre, got, want)
		}
	}

	if got, want := loaded.PromptEnhancement(RoleWriter), original.PromptEnhancement(RoleWriter); got != want {
		t.Error("writer guidance not preserved")
	}
}

func TestExportAllWritesEveryTemplate(t *testing.T) {
	dir := t.TempDir()

	r := NewRegistry(nil)
	RegisterBuiltins(r)

	paths, err := NewExporter(r, storage.NewFileSystem(dir), nil).ExportAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != len(r.Names()) {
		t.Fatalf("wrote %d files, want %d", len(paths), len(r.Names()))
	}
	for _, p := range paths {
		if filepath.Ext(p) != ".yaml" {
			t.Errorf("unexpected extension on %q", p)
		}
	}
}

func TestExportUnknownTemplate(t *testing.T) {
	exporter := NewExporter(NewRegistry(nil), storage.NewFileSystem(t.TempDir()), nil)
	if _, err := exporter.Export(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"three_act", "three_act"},
		{"hero's_journey", "hero_s_journey"},
		{"Save The Cat", "save_the_cat"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
