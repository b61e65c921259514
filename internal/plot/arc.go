package plot

// NarrativeArc identifies the canonical shape a story's events follow.
type NarrativeArc string

const (
	ArcThreeAct        NarrativeArc = "three_act"
	ArcHerosJourney    NarrativeArc = "hero's_journey"
	ArcFiveAct         NarrativeArc = "five_act"
	ArcFreytagsPyramid NarrativeArc = "freytags_pyramid"
	ArcSevenPoint      NarrativeArc = "seven_point"
	ArcSaveTheCat      NarrativeArc = "save_the_cat"
	ArcKishotenketsu   NarrativeArc = "kishotenketsu"
	ArcSinnerSaint     NarrativeArc = "sinner_saint"
)

var knownArcs = map[NarrativeArc]bool{
	ArcThreeAct:        true,
	ArcHerosJourney:    true,
	ArcFiveAct:         true,
	ArcFreytagsPyramid: true,
	ArcSevenPoint:      true,
	ArcSaveTheCat:      true,
	ArcKishotenketsu:   true,
	ArcSinnerSaint:     true,
}

// ParseArc maps a string tag to a NarrativeArc. Unknown tags yield the
// empty arc and false rather than an error, so serialized structures with
// tags from a newer version still load.
func ParseArc(tag string) (NarrativeArc, bool) {
	arc := NarrativeArc(tag)
	if knownArcs[arc] {
		return arc, true
	}
	return "", false
}

// IsValid reports whether the arc is one of the known canonical arcs.
func (a NarrativeArc) IsValid() bool {
	return knownArcs[a]
}

func (a NarrativeArc) String() string {
	return string(a)
}
