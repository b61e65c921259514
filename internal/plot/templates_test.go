package plot

import "testing"

func builtinFactories() map[string]TemplateFactory {
	return map[string]TemplateFactory{
		"three_act":      NewThreeActTemplate,
		"hero's_journey": NewHeroesJourneyTemplate,
		"save_the_cat":   NewSaveTheCatTemplate,
	}
}

func TestBuiltinStructuresAreWellFormed(t *testing.T) {
	wantPoints := map[string]int{
		"three_act":      10,
		"hero's_journey": 12,
		"save_the_cat":   15,
	}

	for name, factory := range builtinFactories() {
		t.Run(name, func(t *testing.T) {
			tmpl := factory()
			if tmpl.Name() != name {
				t.Errorf("name = %q, want %q", tmpl.Name(), name)
			}
			if !tmpl.NarrativeArc().IsValid() {
				t.Errorf("invalid arc %q", tmpl.NarrativeArc())
			}

			s := tmpl.Structure()
			if len(s.PlotPoints) != wantPoints[name] {
				t.Errorf("plot points = %d, want %d", len(s.PlotPoints), wantPoints[name])
			}

			seen := make(map[string]bool)
			for _, pp := range s.PlotPoints {
				if pp.Name == "" || pp.Description == "" {
					t.Errorf("plot point missing name or description: %+v", pp)
				}
				if seen[pp.Name] {
					t.Errorf("duplicate plot point %q", pp.Name)
				}
				seen[pp.Name] = true
			}

			for genre, affinity := range tmpl.SuitableGenres() {
				if affinity < 0 || affinity > 1 {
					t.Errorf("affinity[%s] = %v out of range", genre, affinity)
				}
			}
		})
	}
}

func TestBuiltinGuidanceCoversCoreRoles(t *testing.T) {
	for name, factory := range builtinFactories() {
		tmpl := factory()
		for _, role := range []string{RolePlotter, RoleWriter, RoleEditor} {
			if tmpl.PromptEnhancement(role) == "" {
				t.Errorf("%s: no guidance for role %q", name, role)
			}
		}
		if tmpl.PromptEnhancement("barista") != "" {
			t.Errorf("%s: unexpected guidance for unknown role", name)
		}
	}
}

func TestBuiltinStructureReturnsCopy(t *testing.T) {
	tmpl := NewThreeActTemplate()
	first := tmpl.Structure()
	first.PlotPoints[0].Name = "mutated"
	if tmpl.Structure().PlotPoints[0].Name == "mutated" {
		t.Error("Structure must return a defensive copy")
	}
}
