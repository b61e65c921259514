package plot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// TextCompleter is the outbound contract for AI-assisted validation. The
// engine assumes nothing else about the collaborator; any error from it
// means "AI path unavailable".
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Keyword matching ignores description words at or below this length so
// short, common words cannot trigger a false presence match.
const minKeywordLen = 5

// Story text beyond this length is trimmed to its head and tail before
// being embedded in the validation prompt. Beginning and end are the two
// regions most diagnostic for opening and closing beats.
const (
	maxPromptStoryLen = 6000
	promptStoryEdge   = 3000
)

// Validator measures how well a story conforms to a plot structure.
//
// With no completer it uses a deterministic lexical strategy. With a
// completer it asks the AI collaborator first and falls back to the
// lexical strategy whenever the collaborator errors or returns output
// that cannot be parsed; the caller always gets a usable result.
type Validator struct {
	completer TextCompleter
	logger    *slog.Logger
}

// NewValidator creates a validator. completer may be nil for a purely
// deterministic validator.
func NewValidator(completer TextCompleter, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		completer: completer,
		logger:    logger.With("component", "plot_validator"),
	}
}

// Validate checks storyText against structure and returns a conformity
// verdict. It never fails; malformed AI output degrades to the lexical
// strategy with a suggestion noting the fallback.
func (v *Validator) Validate(ctx context.Context, storyText string, structure *PlotStructure) *ValidationResult {
	if v.completer == nil {
		return v.lexicalValidate(storyText, structure)
	}
	return v.aiValidate(ctx, storyText, structure)
}

// lexicalValidate is the deterministic strategy: case-insensitive
// substring matching of beat names and long description keywords, with
// position-based ordering inference.
func (v *Validator) lexicalValidate(storyText string, structure *PlotStructure) *ValidationResult {
	result := &ValidationResult{
		MissingPlotPoints:    []string{},
		OutOfOrderPlotPoints: []string{},
		Suggestions:          []string{},
	}

	total := len(structure.PlotPoints)
	if total == 0 {
		// Coverage is 0/0 here; score it as no conformity rather than
		// dividing by zero.
		return result
	}

	textLower := strings.ToLower(storyText)

	var foundNames []string
	var foundOffsets []float64

	for i, pp := range structure.PlotPoints {
		nameLower := strings.ToLower(pp.Name)
		namePos := strings.Index(textLower, nameLower)
		keywordPos := firstKeywordOffset(textLower, pp.Description)

		if namePos < 0 && keywordPos < 0 {
			result.MissingPlotPoints = append(result.MissingPlotPoints, pp.Name)
			continue
		}

		foundNames = append(foundNames, pp.Name)
		switch {
		case namePos >= 0:
			foundOffsets = append(foundOffsets, float64(namePos))
		case keywordPos >= 0:
			foundOffsets = append(foundOffsets, float64(keywordPos))
		default:
			// Unreachable while presence implies one of the offsets
			// above; keeps offset resolution total if the presence rule
			// ever gains a signal without a literal position.
			foundOffsets = append(foundOffsets, float64(len(textLower))*float64(i)/float64(total))
		}
	}

	for i := 0; i+1 < len(foundOffsets); i++ {
		if foundOffsets[i] > foundOffsets[i+1] {
			result.OutOfOrderPlotPoints = append(result.OutOfOrderPlotPoints,
				fmt.Sprintf("%s appears after %s", foundNames[i], foundNames[i+1]))
		}
	}

	// Coverage dominates the score: missing beats are a stronger signal
	// of non-conformance than local reordering.
	found := len(foundNames)
	outOfOrder := len(result.OutOfOrderPlotPoints)
	coverageStrength := 0.7 * (float64(found) / float64(total))
	orderStrength := 0.3 * (1.0 - float64(outOfOrder)/float64(max(1, found-1)))
	result.Strength = coverageStrength + orderStrength

	if len(result.MissingPlotPoints) > 0 {
		result.Suggestions = append(result.Suggestions,
			"Consider including these missing plot points: "+strings.Join(result.MissingPlotPoints, ", "))
	}
	if outOfOrder > 0 {
		result.Suggestions = append(result.Suggestions,
			"Some plot points appear out of sequence. Consider reordering events in the story.")
	}

	result.Valid = result.Strength >= 0.6 && float64(outOfOrder) <= float64(total)/3.0
	return result
}

// firstKeywordOffset returns the offset of the earliest description word
// (in description order) long enough to qualify as a keyword and present
// in the text, or -1 when none match.
func firstKeywordOffset(textLower, description string) int {
	for _, word := range strings.Fields(strings.ToLower(description)) {
		if len(word) <= minKeywordLen {
			continue
		}
		if pos := strings.Index(textLower, word); pos >= 0 {
			return pos
		}
	}
	return -1
}

// aiValidate asks the collaborator for a structured verdict and degrades
// to the lexical strategy on any failure.
func (v *Validator) aiValidate(ctx context.Context, storyText string, structure *PlotStructure) *ValidationResult {
	prompt := buildValidationPrompt(storyText, structure)

	response, err := v.completer.Complete(ctx, prompt)
	if err == nil {
		var parsed *ValidationResult
		parsed, err = parseValidationResponse(response)
		if err == nil {
			v.logger.Debug("AI validation succeeded",
				"structure", structure.Name,
				"strength", parsed.Strength)
			return parsed
		}
	}

	v.logger.Warn("AI validation failed, falling back to lexical strategy",
		"structure", structure.Name,
		"error", err)

	result := v.lexicalValidate(storyText, structure)
	result.Suggestions = append(result.Suggestions, fmt.Sprintf("AI validation failed: %v", err))
	return result
}

// buildValidationPrompt embeds the structure's beats and the (possibly
// trimmed) story into a single analysis prompt.
func buildValidationPrompt(storyText string, structure *PlotStructure) string {
	story := storyText
	if len(story) > maxPromptStoryLen {
		story = story[:promptStoryEdge] + "\n\n[...story continues...]\n\n" + story[len(story)-promptStoryEdge:]
	}

	var points strings.Builder
	for _, pp := range structure.PlotPoints {
		fmt.Fprintf(&points, "- %s: %s\n", pp.Name, pp.Description)
	}

	return fmt.Sprintf(`I need you to analyze this story and determine how well it follows the plot structure provided below.

Plot Structure: %s

Plot Points (in expected order):
%s
Story to analyze:
%s

Please evaluate:
1. Which plot points are present in the story?
2. Which plot points are missing?
3. Are the plot points in the correct order?
4. How strongly does the story adhere to the structure (0.0-1.0)?
5. What suggestions would you give to better follow this structure?

Format your response as a JSON object with these keys:
- missing_plot_points: array of plot point names
- out_of_order_plot_points: array of string descriptions of order issues
- strength: float between 0.0 and 1.0
- suggestions: array of string suggestions
- valid: boolean indicating if the story sufficiently follows the structure

Response:`, structure.Name, points.String(), story)
}
