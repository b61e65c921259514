package plot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in response")

// requiredResponseKeys are the fields an AI verdict must carry to be
// accepted. A response missing any of them is rejected wholesale rather
// than patched, so the fallback path stays a single branch.
var requiredResponseKeys = []string{
	"valid",
	"missing_plot_points",
	"out_of_order_plot_points",
	"strength",
	"suggestions",
}

// extractJSONObject pulls the outermost {...} region out of a model
// response, tolerating markdown fences and surrounding prose.
func extractJSONObject(response string) (string, error) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return "", errNoJSONObject
	}
	return strings.TrimSpace(response[start : end+1]), nil
}

// parseValidationResponse parses a model response into a ValidationResult.
// It fails unless the response contains a JSON object with all required
// keys; the caller treats any failure as "fall back to lexical".
func parseValidationResponse(response string) (*ValidationResult, error) {
	raw, err := extractJSONObject(response)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("parsing response JSON: %w", err)
	}
	for _, key := range requiredResponseKeys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("response missing required key %q", key)
		}
	}

	var result ValidationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("decoding validation result: %w", err)
	}
	if result.MissingPlotPoints == nil {
		result.MissingPlotPoints = []string{}
	}
	if result.OutOfOrderPlotPoints == nil {
		result.OutOfOrderPlotPoints = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}
