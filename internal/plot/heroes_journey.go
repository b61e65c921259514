package plot

// HeroesJourneyTemplate is Joseph Campbell's monomyth: a hero ventures
// from the ordinary world into a region of wonder, faces trials, wins
// victory, and returns transformed.
type HeroesJourneyTemplate struct{}

// NewHeroesJourneyTemplate is the registry factory for the hero's journey.
func NewHeroesJourneyTemplate() Template { return &HeroesJourneyTemplate{} }

func (t *HeroesJourneyTemplate) Name() string { return "hero's_journey" }

func (t *HeroesJourneyTemplate) Description() string {
	return "The classic hero's journey (monomyth) structure where a hero ventures from the ordinary world into a region of supernatural wonder, faces trials, wins victory, and returns transformed."
}

func (t *HeroesJourneyTemplate) NarrativeArc() NarrativeArc { return ArcHerosJourney }

func (t *HeroesJourneyTemplate) Structure() *PlotStructure {
	return &PlotStructure{
		Name:         "Hero's Journey",
		Description:  "The classic monomyth structure as described by Joseph Campbell",
		NarrativeArc: ArcHerosJourney,
		GenreAffinities: map[string]float64{
			"adventure": 0.9,
			"sci-fi":    0.8,
			"noir":      0.5,
		},
		PlotPoints: []PlotPoint{
			{
				Name:        "Ordinary World",
				Description: "The hero is shown in their normal life, unaware of the adventures to come.",
				Examples:    []string{"Luke Skywalker on Tatooine", "Frodo in the Shire", "Neo working as a programmer"},
				Features:    map[string]any{"position": "beginning", "purpose": "establish_status_quo"},
			},
			{
				Name:        "Call to Adventure",
				Description: "The hero receives a call to action that will require them to leave their ordinary world.",
				Examples:    []string{"Luke receives Princess Leia's message", "Gandalf tells Frodo about the Ring", "Neo receives mysterious messages"},
				Features:    map[string]any{"position": "beginning", "purpose": "inciting_incident"},
			},
			{
				Name:        "Refusal of the Call",
				Description: "The hero initially refuses or is reluctant to heed the call to adventure.",
				Examples:    []string{"Luke initially refuses to join Obi-Wan", "Frodo tries to give the Ring to Gandalf", "Neo initially walks away from Trinity"},
				Features:    map[string]any{"position": "beginning", "purpose": "show_reluctance"},
			},
			{
				Name:        "Meeting the Mentor",
				Description: "The hero meets a mentor figure who provides guidance, wisdom, or tools for the journey ahead.",
				Examples:    []string{"Luke meets Obi-Wan", "Frodo seeks counsel from Gandalf", "Neo meets Morpheus"},
				Features:    map[string]any{"position": "beginning", "purpose": "provide_guidance"},
			},
			{
				Name:        "Crossing the Threshold",
				Description: "The hero leaves the ordinary world and enters the special world of the adventure.",
				Examples:    []string{"Luke leaves Tatooine", "Frodo leaves the Shire", "Neo takes the red pill"},
				Features:    map[string]any{"position": "beginning", "purpose": "enter_adventure"},
			},
			{
				Name:        "Tests, Allies, and Enemies",
				Description: "The hero faces tests, acquires allies, and confronts enemies in the special world.",
				Examples:    []string{"Luke trains with the lightsaber", "Frodo meets the Fellowship", "Neo learns martial arts in the Construct"},
				Features:    map[string]any{"position": "middle", "purpose": "build_conflict"},
			},
			{
				Name:        "Approach to the Inmost Cave",
				Description: "The hero prepares for the major challenge ahead and may need to confront their greatest fears.",
				Examples:    []string{"The Millennium Falcon approaches the Death Star", "The Fellowship enters Moria", "Neo prepares to re-enter the Matrix"},
				Features:    map[string]any{"position": "middle", "purpose": "intensify_stakes"},
			},
			{
				Name:        "Ordeal",
				Description: "The hero faces their greatest challenge or confronts death.",
				Examples:    []string{"Luke is trapped in the trash compactor", "Frodo faces Shelob", "Neo is killed by Agent Smith"},
				Features:    map[string]any{"position": "middle", "purpose": "central_crisis"},
			},
			{
				Name:        "Reward",
				Description: "The hero survives the ordeal and obtains the reward, which could be an object, knowledge, or reconciliation.",
				Examples:    []string{"Luke rescues Princess Leia", "Frodo takes possession of the Ring", "Neo realizes he is The One"},
				Features:    map[string]any{"position": "middle", "purpose": "achievement"},
			},
			{
				Name:        "The Road Back",
				Description: "The hero begins the journey back to the ordinary world, often pursued by vengeful forces.",
				Examples:    []string{"The Millennium Falcon escapes the Death Star", "Frodo leaves the Fellowship", "Neo rushes to escape the Matrix"},
				Features:    map[string]any{"position": "end", "purpose": "begin_resolution"},
			},
			{
				Name:        "Resurrection",
				Description: "The hero faces a final test where everything is at stake, requiring them to use all they've learned.",
				Examples:    []string{"Luke uses the Force to destroy the Death Star", "Frodo at Mount Doom", "Neo defeats Agent Smith"},
				Features:    map[string]any{"position": "end", "purpose": "climax"},
			},
			{
				Name:        "Return with the Elixir",
				Description: "The hero returns to the ordinary world transformed, bringing something of value that benefits the community.",
				Examples:    []string{"Luke becomes a hero of the Rebellion", "Frodo returns to the Shire", "Neo brings freedom to humanity"},
				Features:    map[string]any{"position": "end", "purpose": "resolution"},
			},
		},
	}
}

func (t *HeroesJourneyTemplate) PromptEnhancement(role string) string {
	switch role {
	case RoleResearcher:
		return `When researching for a Hero's Journey story, focus on:
- Mythological themes and archetypes that resonate with the chosen genre
- Example stories that follow the Hero's Journey structure in this genre
- Symbolic objects or artifacts that could represent the "elixir" or reward
- Types of mentors, allies, and enemies that typically appear in this genre
- Threshold guardians and gatekeepers between ordinary and special worlds`
	case RoleWorldbuilder:
		return `When building a world for a Hero's Journey story, focus on:
- Creating a contrast between the "ordinary world" and the "special world"
- Designing thresholds or gateways between the different worlds
- Establishing locations for key moments (mentor meeting, ordeal, etc.)
- Creating environments that reflect the hero's internal state
- Developing symbolic locations that represent rebirth or transformation`
	case RoleCharacterCreator:
		return `When creating characters for a Hero's Journey story, focus on:
- Developing a protagonist with clear flaws and room for growth
- Creating a mentor figure with wisdom and experience
- Designing allies who complement the hero's weaknesses
- Crafting enemies and threshold guardians who challenge the hero
- Developing a shadow figure who represents the hero's dark side`
	case RolePlotter:
		return `When plotting a Hero's Journey story, ensure you include:
- A clear ordinary world that establishes the hero's normal life
- A compelling call to adventure that disrupts the status quo
- An initial refusal that shows the hero's reluctance
- A mentor meeting that provides guidance and aid
- A threshold crossing that marks the point of no return
- Tests and trials that build the hero's skills and confidence
- A central ordeal that represents a symbolic death and rebirth
- A reward that justifies the struggle
- A final resurrection challenge that tests everything learned
- A return with something of value for the community`
	case RoleWriter:
		return `When writing a Hero's Journey story, focus on:
- Establishing a sympathetic protagonist in their ordinary world
- Creating a vivid contrast when they enter the special world
- Building tension through increasingly difficult tests and trials
- Making the central ordeal truly challenging and transformative
- Writing a climactic resurrection scene that pays off the hero's journey
- Demonstrating how the hero has changed upon their return`
	case RoleEditor:
		return `When editing a Hero's Journey story, check for:
- Clear establishment of the ordinary world and status quo
- A complete character arc showing the hero's transformation
- Proper pacing through the stages of the journey
- Meaningful tests and trials that build to the central ordeal
- A satisfying climax that challenges the hero completely
- A resolution that shows the impact of the journey`
	default:
		return ""
	}
}

func (t *HeroesJourneyTemplate) SuitableGenres() map[string]float64 {
	return map[string]float64{
		"adventure": 0.9,
		"sci-fi":    0.8,
		"noir":      0.5,
	}
}
