// Package agent provides text-completion clients for the AI-assisted
// validation path.
package agent

import "context"

type AIClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
