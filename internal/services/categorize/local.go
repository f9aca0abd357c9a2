package categorize

import (
	"context"

	"packrat/internal/classify"
)

// Local suggests categories with the in-process keyword classifier. It is
// deterministic and never returns an error, which makes it the terminal
// fallback for every other provider.
type Local struct {
	classifier *classify.Classifier
}

// NewLocal wraps the classifier as a Provider.
func NewLocal(c *classify.Classifier) *Local {
	return &Local{classifier: c}
}

// Suggest classifies synchronously. The confidence is the configured match
// constant for table hits and the fallback constant for the default
// category.
func (l *Local) Suggest(_ context.Context, name string, tags []string) (Suggestion, error) {
	category, confidence := l.classifier.ClassifyWithConfidence(name, tags)
	return Suggestion{Category: category, Confidence: confidence}, nil
}
