package plot

// SaveTheCatTemplate is Blake Snyder's 15-beat sheet, a finer-grained
// take on the three-act structure with beats pinned to specific points
// in the narrative.
type SaveTheCatTemplate struct{}

// NewSaveTheCatTemplate is the registry factory for the beat sheet.
func NewSaveTheCatTemplate() Template { return &SaveTheCatTemplate{} }

func (t *SaveTheCatTemplate) Name() string { return "save_the_cat" }

func (t *SaveTheCatTemplate) Description() string {
	return "The 'Save the Cat' beat sheet structure popularized by Blake Snyder, featuring 15 key story beats that occur at specific points in the narrative."
}

func (t *SaveTheCatTemplate) NarrativeArc() NarrativeArc { return ArcSaveTheCat }

func (t *SaveTheCatTemplate) Structure() *PlotStructure {
	return &PlotStructure{
		Name:         "Save the Cat Beat Sheet",
		Description:  "A 15-beat structure for storytelling based on Blake Snyder's screenwriting guide",
		NarrativeArc: ArcSaveTheCat,
		GenreAffinities: map[string]float64{
			"adventure": 0.7,
			"sci-fi":    0.7,
			"noir":      0.9,
		},
		PlotPoints: []PlotPoint{
			{
				Name:        "Opening Image",
				Description: "A snapshot of the protagonist's world before the adventure begins, establishing mood, tone, and stakes.",
				Examples:    []string{"The empty streets of L.A. in Chinatown", "A murder scene in a noir detective story", "A gritty urban landscape"},
				Features:    map[string]any{"page": "1-2", "position": "beginning", "purpose": "establish_tone"},
			},
			{
				Name:        "Theme Stated",
				Description: "Someone (not the protagonist) states the theme or lesson the protagonist will learn.",
				Examples:    []string{"'Forget it Jake, it's Chinatown'", "A warning about greed", "A piece of advice the hero ignores"},
				Features:    map[string]any{"page": "5", "position": "beginning", "purpose": "setup_theme"},
			},
			{
				Name:        "Setup",
				Description: "Introduce all main characters and their flaws, establish the status quo that will change.",
				Examples:    []string{"Detective's daily routine", "The protagonist's unfulfilling life", "The corrupt world the hero inhabits"},
				Features:    map[string]any{"page": "1-10", "position": "beginning", "purpose": "introduce_world"},
			},
			{
				Name:        "Catalyst",
				Description: "A life-changing event that knocks down the old status quo and sets the story in motion.",
				Examples:    []string{"A client with a mysterious case", "A murder that seems routine but isn't", "A job offer that's too good to be true"},
				Features:    map[string]any{"page": "12", "position": "early", "purpose": "inciting_incident"},
			},
			{
				Name:        "Debate",
				Description: "The protagonist questions whether to take the journey, weighing the pros and cons.",
				Examples:    []string{"The detective considers turning down the case", "The hero weighs the risks", "Internal struggle about getting involved"},
				Features:    map[string]any{"page": "12-25", "position": "early", "purpose": "show_reluctance"},
			},
			{
				Name:        "Break into Two",
				Description: "The protagonist makes a choice and fully enters the adventure, leaving the old world behind.",
				Examples:    []string{"Taking the case", "Agreeing to the dangerous mission", "Crossing a threshold into a new situation"},
				Features:    map[string]any{"page": "25", "position": "end_act_one", "purpose": "point_of_no_return"},
			},
			{
				Name:        "B Story",
				Description: "Introduction of a secondary story, often involving a new relationship or love interest.",
				Examples:    []string{"Meeting a femme fatale", "Encountering a helpful ally", "A relationship that complicates the main plot"},
				Features:    map[string]any{"page": "30", "position": "early_act_two", "purpose": "introduce_subplot"},
			},
			{
				Name:        "Fun and Games",
				Description: "The 'promise of the premise' where the concept is explored, often containing the trailer moments.",
				Examples:    []string{"Detective work montage", "Navigating the criminal underworld", "Using skills to investigate"},
				Features:    map[string]any{"page": "30-55", "position": "early_act_two", "purpose": "explore_concept"},
			},
			{
				Name:        "Midpoint",
				Description: "A false peak or false collapse. Either things seem to go well or fall apart completely.",
				Examples:    []string{"A major clue discovered", "A betrayal revealed", "A false victory that won't last"},
				Features:    map[string]any{"page": "55", "position": "middle", "purpose": "raise_stakes"},
			},
			{
				Name:        "Bad Guys Close In",
				Description: "External and internal forces align against the protagonist, applying pressure and forcing mistakes.",
				Examples:    []string{"Threats from powerful enemies", "Self-doubt creeping in", "Allies turning against the hero"},
				Features:    map[string]any{"page": "55-75", "position": "late_act_two", "purpose": "increase_obstacles"},
			},
			{
				Name:        "All Is Lost",
				Description: "The opposite of the Midpoint. If the Midpoint was positive, this is negative and vice versa.",
				Examples:    []string{"A crucial witness is killed", "Evidence is destroyed", "The hero is framed or defeated"},
				Features:    map[string]any{"page": "75", "position": "late_act_two", "purpose": "major_setback"},
			},
			{
				Name:        "Dark Night of the Soul",
				Description: "The protagonist's darkest moment, where all seems lost and they must dig deep to find the strength to continue.",
				Examples:    []string{"Questioning whether to continue", "Hitting rock bottom", "Feeling utterly defeated"},
				Features:    map[string]any{"page": "75-85", "position": "late_act_two", "purpose": "lowest_point"},
			},
			{
				Name:        "Break into Three",
				Description: "The protagonist finds a new solution or inspiration, leading to Act Three and the resolution.",
				Examples:    []string{"A realization about the case", "A new angle to investigate", "Finding the courage to continue"},
				Features:    map[string]any{"page": "85", "position": "end_act_two", "purpose": "find_solution"},
			},
			{
				Name:        "Finale",
				Description: "The protagonist proves they've learned the theme lesson by applying new skills to defeat the bad guys.",
				Examples:    []string{"Confronting the mastermind", "The climactic shootout", "Exposing the conspiracy"},
				Features:    map[string]any{"page": "85-110", "position": "act_three", "purpose": "resolution"},
			},
			{
				Name:        "Final Image",
				Description: "The opposite of the opening image, showing how much the world and character have changed.",
				Examples:    []string{"A transformed city landscape", "The detective with a new outlook", "Visual symbol of change"},
				Features:    map[string]any{"page": "110", "position": "end", "purpose": "show_transformation"},
			},
		},
	}
}

func (t *SaveTheCatTemplate) PromptEnhancement(role string) string {
	switch role {
	case RoleResearcher:
		return `When researching for a Save the Cat structure story, focus on:
- Examples of stories in this genre that follow similar beat patterns
- Typical catalysts that set the story in motion for this genre
- Common themes that are stated early but realized late in similar stories
- The kinds of "Fun and Games" sequences that work well in this genre
- Visual contrasts that could work for opening and closing images`
	case RoleWorldbuilder:
		return `When building a world for a Save the Cat structure story, focus on:
- Creating settings that can be visually contrasted between opening and final images
- Designing locations that naturally provide "Fun and Games" opportunities
- Establishing environments that darken as the story progresses
- Creating thematically resonant settings for the Dark Night of the Soul
- Designing visually striking locations for the Catalyst and Break into Three`
	case RoleCharacterCreator:
		return `When creating characters for a Save the Cat structure story, focus on:
- Developing a protagonist with clear flaws that will be addressed by the theme
- Creating secondary characters who can state the theme without being obvious
- Designing love interests or allies that embody the B Story values
- Building villains who represent the antithesis of the theme
- Establishing weaknesses that will be tested during the Dark Night of the Soul`
	case RolePlotter:
		return `When plotting a Save the Cat structure story, ensure you include:
- A visually striking opening image that establishes tone
- A clear theme statement early in the story
- A catalyst around the 10-15% mark that disrupts the status quo
- A period of debate where the protagonist resists the call
- A definitive break into act two around the 25% mark
- A B Story (often a relationship) early in act two
- A Fun and Games section that delivers the "promise of the premise"
- A significant midpoint that raises stakes or changes direction
- A clear "All Is Lost" moment around the 75% mark
- A Dark Night of the Soul where the protagonist faces their deepest fears
- A breakthrough moment leading to act three
- A finale that shows the protagonist has learned and changed
- A final image that contrasts with the opening`
	case RoleWriter:
		return `When writing a Save the Cat structure story, focus on:
- Creating a vivid contrast between opening and final images
- Subtly weaving the theme throughout the narrative
- Writing a punchy, unexpected catalyst that hooks the reader
- Making the debate feel genuine without slowing the pace
- Building tension consistently after the midpoint
- Writing a devastating "All Is Lost" moment
- Ensuring the finale demonstrates the protagonist's growth`
	case RoleEditor:
		return `When editing a Save the Cat structure story, check for:
- Clear placement of all 15 beats at appropriate points in the narrative
- Thematic consistency throughout the story
- Proper pacing that doesn't rush or drag any beat
- A genuinely transformative character arc
- Strong contrast between opening and final images
- A coherent B Story that enhances rather than distracts from the main plot`
	default:
		return ""
	}
}

func (t *SaveTheCatTemplate) SuitableGenres() map[string]float64 {
	return map[string]float64{
		"adventure": 0.7,
		"sci-fi":    0.7,
		"noir":      0.9,
	}
}
