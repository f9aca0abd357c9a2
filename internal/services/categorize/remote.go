package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Remote asks an external categorization endpoint for a suggestion. The
// endpoint receives POST {"name": ..., "tags": [...]} and answers
// {"category": ..., "confidence": ...}; confidence may be omitted.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote builds a remote provider for the given endpoint URL. The HTTP
// client enforces the hard request budget.
func NewRemote(endpoint string) *Remote {
	return &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: RemoteTimeout},
	}
}

type remoteRequest struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// Suggest calls the endpoint. Timeouts come back as TimeoutError; any
// non-2xx status is an error. Callers are expected to wrap Remote in
// Fallback rather than surface these.
func (r *Remote) Suggest(ctx context.Context, name string, tags []string) (Suggestion, error) {
	if tags == nil {
		tags = []string{}
	}
	body, err := json.Marshal(remoteRequest{Name: name, Tags: tags})
	if err != nil {
		return Suggestion{}, fmt.Errorf("encoding categorize request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, RemoteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("building categorize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Suggestion{}, &TimeoutError{Budget: RemoteTimeout}
		}
		return Suggestion{}, fmt.Errorf("calling categorize endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Suggestion{}, fmt.Errorf("categorize endpoint returned %d", resp.StatusCode)
	}

	var suggestion Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("decoding categorize response: %w", err)
	}
	if suggestion.Category == "" {
		return Suggestion{}, errors.New("categorize endpoint returned empty category")
	}
	return suggestion, nil
}
