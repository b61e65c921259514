package plot

// ThreeActTemplate is the classic setup / confrontation / resolution
// structure with turning points at the act transitions.
type ThreeActTemplate struct{}

// NewThreeActTemplate is the registry factory for the three-act template.
func NewThreeActTemplate() Template { return &ThreeActTemplate{} }

func (t *ThreeActTemplate) Name() string { return "three_act" }

func (t *ThreeActTemplate) Description() string {
	return "The classic three-act structure (setup, confrontation, resolution) used in countless stories, with key plot points at act transitions."
}

func (t *ThreeActTemplate) NarrativeArc() NarrativeArc { return ArcThreeAct }

func (t *ThreeActTemplate) Structure() *PlotStructure {
	return &PlotStructure{
		Name:         "Three-Act Structure",
		Description:  "The classic dramatic structure divided into three acts: setup, confrontation, and resolution",
		NarrativeArc: ArcThreeAct,
		GenreAffinities: map[string]float64{
			"adventure": 0.8,
			"sci-fi":    0.8,
			"noir":      0.9,
		},
		PlotPoints: []PlotPoint{
			{
				Name:        "Exposition",
				Description: "The story opens by establishing the main character, setting, and status quo.",
				Examples:    []string{"Rick's Cafe in Casablanca", "Marlowe in his detective office", "Indiana Jones teaching at university"},
				Features:    map[string]any{"act": 1, "position": "beginning", "purpose": "establish_world"},
			},
			{
				Name:        "Inciting Incident",
				Description: "An event occurs that disrupts the status quo and sets the story in motion.",
				Examples:    []string{"Ugarte gives Rick the letters of transit", "A mysterious client hires Marlowe", "Indiana Jones is asked to find the Ark"},
				Features:    map[string]any{"act": 1, "position": "early", "purpose": "disrupt_status_quo"},
			},
			{
				Name:        "First Plot Point",
				Description: "The protagonist makes a decision that propels them into the main conflict, ending Act I.",
				Examples:    []string{"Rick discovers Ilsa is in Casablanca", "Marlowe decides to investigate deeper", "Indiana Jones agrees to find the Ark"},
				Features:    map[string]any{"act": 1, "position": "end", "purpose": "point_of_no_return"},
			},
			{
				Name:        "Rising Action",
				Description: "The protagonist faces increasingly difficult obstacles related to the main conflict.",
				Examples:    []string{"Rick deals with Ilsa's return", "Marlowe uncovers layers of deception", "Indiana Jones encounters rivals and obstacles"},
				Features:    map[string]any{"act": 2, "position": "beginning", "purpose": "escalate_conflict"},
			},
			{
				Name:        "Midpoint",
				Description: "A major event that changes the direction of the story, often with a revelation or raising of stakes.",
				Examples:    []string{"Rick learns why Ilsa left him in Paris", "Marlowe discovers the true crime", "Indiana Jones discovers the Ark's location"},
				Features:    map[string]any{"act": 2, "position": "middle", "purpose": "change_direction"},
			},
			{
				Name:        "Complications",
				Description: "Further complications arise, raising the stakes and making the goal seem more difficult.",
				Examples:    []string{"The Germans pressure Rick", "Marlowe is framed or threatened", "Indiana Jones loses the Ark to the Nazis"},
				Features:    map[string]any{"act": 2, "position": "late", "purpose": "increase_difficulty"},
			},
			{
				Name:        "Second Plot Point",
				Description: "The protagonist experiences their lowest point, leading to a new determination to resolve the conflict.",
				Examples:    []string{"Rick seems to betray Ilsa to the Germans", "Marlowe is beaten or captured", "Indiana Jones is sealed in the tomb"},
				Features:    map[string]any{"act": 2, "position": "end", "purpose": "darkest_moment"},
			},
			{
				Name:        "Climax",
				Description: "The final confrontation where the main conflict reaches its peak intensity.",
				Examples:    []string{"Rick's plan at the airport", "Marlowe confronts the villain", "Indiana Jones faces the power of the Ark"},
				Features:    map[string]any{"act": 3, "position": "beginning", "purpose": "final_confrontation"},
			},
			{
				Name:        "Falling Action",
				Description: "The immediate aftermath of the climax, showing the consequences of the protagonist's actions.",
				Examples:    []string{"Victor and Ilsa escape", "The case is solved", "The Ark is contained"},
				Features:    map[string]any{"act": 3, "position": "middle", "purpose": "show_consequences"},
			},
			{
				Name:        "Resolution",
				Description: "The story concludes, showing the new status quo and closing character arcs.",
				Examples:    []string{"Rick and Louis walk into the fog", "Marlowe reflects on the case", "The Ark is stored in a warehouse"},
				Features:    map[string]any{"act": 3, "position": "end", "purpose": "establish_new_normal"},
			},
		},
	}
}

func (t *ThreeActTemplate) PromptEnhancement(role string) string {
	switch role {
	case RoleResearcher:
		return `When researching for a Three-Act Structure story, focus on:
- Examples of successful stories in this genre using three-act structure
- Common plot points and tropes that work well at each act transition
- Typical conflicts and obstacles that appear in Act II for this genre
- Effective inciting incidents that launch stories in this genre
- Satisfying resolution patterns common to this genre`
	case RoleWorldbuilder:
		return `When building a world for a Three-Act Structure story, focus on:
- Creating settings that naturally generate conflict
- Designing locations that can evolve or change throughout the three acts
- Establishing rules and limitations that will be tested in Act II
- Creating contrasting environments for different acts (safety vs. danger)
- Designing settings that facilitate the key turning points`
	case RoleCharacterCreator:
		return `When creating characters for a Three-Act Structure story, focus on:
- Developing protagonists with clear wants vs. needs that drive the story
- Creating antagonists who directly oppose the protagonist's goals
- Designing supporting characters who can complicate Act II
- Building in character flaws that will be tested during the story
- Establishing clear motivations that justify decisions at key plot points`
	case RolePlotter:
		return `When plotting a Three-Act Structure story, ensure you include:
- A strong inciting incident that disrupts the status quo
- A clear first plot point where the protagonist commits to the main conflict
- Escalating complications throughout Act II
- A significant midpoint that raises stakes or changes direction
- A dark moment or low point at the end of Act II
- A climactic confrontation that resolves the main conflict
- A resolution that shows the new status quo

Structure the story with approximately 25% for Act I, 50% for Act II, and
25% for Act III, with a major turning point at each act transition.`
	case RoleWriter:
		return `When writing a Three-Act Structure story, focus on:
- Opening with a compelling introduction to character and setting
- Creating a punchy inciting incident that hooks the reader
- Maintaining increasing tension throughout Act II
- Writing a powerful low point that tests the protagonist completely
- Crafting a satisfying climax that pays off earlier setups
- Delivering a resolution that ties up loose ends

Emphasize the key turning points at act transitions with dramatic writing.`
	case RoleEditor:
		return `When editing a Three-Act Structure story, check for:
- Clear act transitions marked by significant turning points
- Proper pacing with Act I (~25%), Act II (~50%), and Act III (~25%)
- Logical cause-and-effect relationships between plot points
- Sufficient escalation of conflict throughout Act II
- A climax that resolves the central conflict
- A satisfying conclusion that establishes a new status quo`
	default:
		return ""
	}
}

func (t *ThreeActTemplate) SuitableGenres() map[string]float64 {
	return map[string]float64{
		"adventure": 0.8,
		"sci-fi":    0.8,
		"noir":      0.9,
	}
}
