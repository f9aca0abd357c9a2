package categorize

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Fallback wraps a primary provider with the local classifier. Suggest
// never returns an error: any primary failure, including a timeout, falls
// back synchronously to the deterministic local suggestion.
type Fallback struct {
	primary Provider
	local   *Local
	logger  *zap.Logger
}

// NewFallback builds the wrapper. A nil primary short-circuits straight to
// the local provider; a nil logger stays silent.
func NewFallback(primary Provider, local *Local, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{primary: primary, local: local, logger: logger}
}

// Suggest tries the primary provider, then recovers locally. The error
// return exists to satisfy Provider; it is always nil.
func (f *Fallback) Suggest(ctx context.Context, name string, tags []string) (Suggestion, error) {
	if f.primary != nil {
		suggestion, err := f.primary.Suggest(ctx, name, tags)
		if err == nil {
			return suggestion, nil
		}

		var timeout *TimeoutError
		if errors.As(err, &timeout) {
			f.logger.Debug("categorization_timeout_falling_back_local", zap.Error(err))
		} else {
			f.logger.Debug("categorization_failed_falling_back_local", zap.Error(err))
		}
	}
	return f.local.Suggest(ctx, name, tags)
}
