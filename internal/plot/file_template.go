package plot

// templateFile is the on-disk shape of a discoverable template: a plot
// structure plus optional per-role guidance text.
type templateFile struct {
	structureDoc `yaml:",inline"`
	Guidance     map[string]string `yaml:"guidance,omitempty"`
}

// FileTemplate is a template variant backed by a YAML definition file
// found during discovery. Unlike the built-ins it carries its structure
// as data and returns a copy on every call.
type FileTemplate struct {
	structure *PlotStructure
	guidance  map[string]string
}

func newFileTemplate(def templateFile) (*FileTemplate, error) {
	structure, err := def.toStructure()
	if err != nil {
		return nil, err
	}
	return &FileTemplate{
		structure: structure,
		guidance:  def.Guidance,
	}, nil
}

func (t *FileTemplate) Name() string               { return t.structure.Name }
func (t *FileTemplate) Description() string        { return t.structure.Description }
func (t *FileTemplate) NarrativeArc() NarrativeArc { return t.structure.NarrativeArc }

func (t *FileTemplate) Structure() *PlotStructure {
	// Copy so callers cannot mutate the template's backing data.
	s := *t.structure
	s.PlotPoints = append([]PlotPoint(nil), t.structure.PlotPoints...)
	if t.structure.GenreAffinities != nil {
		s.GenreAffinities = make(map[string]float64, len(t.structure.GenreAffinities))
		for genre, score := range t.structure.GenreAffinities {
			s.GenreAffinities[genre] = score
		}
	}
	return &s
}

func (t *FileTemplate) PromptEnhancement(role string) string {
	return t.guidance[role]
}

func (t *FileTemplate) SuitableGenres() map[string]float64 {
	genres := make(map[string]float64, len(t.structure.GenreAffinities))
	for genre, score := range t.structure.GenreAffinities {
		genres[genre] = score
	}
	return genres
}
