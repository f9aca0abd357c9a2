// Package categorize produces category suggestions for the creation
// wizard. Providers may be local (the keyword classifier), remote (the
// categorization endpoint), or AI-backed; the Fallback wrapper guarantees
// a deterministic local answer when a provider fails or times out.
package categorize

import (
	"context"
	"fmt"
	"time"
)

// RemoteTimeout is the hard budget for a remote suggestion before the
// local classifier takes over.
const RemoteTimeout = 2 * time.Second

// Suggestion is a category prediction with a confidence signal. Confidence
// below the configured threshold means "low confidence, ask the user to
// confirm".
type Suggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Provider suggests a category for an item being entered.
type Provider interface {
	Suggest(ctx context.Context, name string, tags []string) (Suggestion, error)
}

// TimeoutError reports that a remote categorization did not answer within
// its budget. It is always recovered by the local fallback and never
// surfaces to a user.
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("categorization timed out after %s", e.Budget)
}
