package plot

// Agent roles that can request structure-specific prompt guidance.
const (
	RoleResearcher       = "researcher"
	RoleWorldbuilder     = "worldbuilder"
	RoleCharacterCreator = "character_creator"
	RolePlotter          = "plotter"
	RoleWriter           = "writer"
	RoleEditor           = "editor"
)

// Template is a provider of one plot structure plus structure-specific
// guidance for writing agents. Implementations are stateless after
// construction and safe for concurrent use.
type Template interface {
	// Name is the registry key for this template.
	Name() string
	Description() string
	NarrativeArc() NarrativeArc

	// Structure builds the template's plot structure. Implementations may
	// build a fresh value on every call; callers must not mutate it.
	Structure() *PlotStructure

	// PromptEnhancement returns guidance text tailored to an agent role.
	// Unrecognized roles yield the empty string.
	PromptEnhancement(role string) string

	// SuitableGenres maps genre names to compatibility scores in [0,1].
	// Genres the template is silent on are simply absent.
	SuitableGenres() map[string]float64
}

// TemplateFactory constructs a template instance. The registry calls a
// factory at most once per registered name.
type TemplateFactory func() Template
