package plot

// ValidationResult is the verdict from validating one story against one
// structure. It is a pure return value; nothing holds or mutates it
// after the call that produced it.
type ValidationResult struct {
	Valid                bool     `json:"valid"`
	MissingPlotPoints    []string `json:"missing_plot_points"`
	OutOfOrderPlotPoints []string `json:"out_of_order_plot_points"`
	Strength             float64  `json:"strength"`
	Suggestions          []string `json:"suggestions"`
}

// AnalysisResult aggregates validation verdicts across a candidate set.
// BestMatch is empty when no candidates were scored. Details keeps every
// per-candidate verdict so callers can inspect near-misses.
type AnalysisResult struct {
	RunID     string                       `json:"run_id"`
	BestMatch string                       `json:"best_match,omitempty"`
	Scores    map[string]float64           `json:"scores"`
	Details   map[string]*ValidationResult `json:"details"`
}
