package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"

	"packrat/internal/classify"
)

const (
	// DefaultOpenAIModel is used when no model is configured.
	DefaultOpenAIModel = "gpt-4o-mini"
	// openAITimeout bounds the API call. Wider than the remote-endpoint
	// budget since the Fallback wrapper still covers failures.
	openAITimeout = 10 * time.Second
)

// OpenAI suggests categories with a chat completion constrained to the
// configured category table. Intended to run behind Fallback so a slow or
// unreachable API degrades to the keyword classifier.
type OpenAI struct {
	client     openai.Client
	model      string
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewOpenAI builds the provider. The classifier supplies the allowed
// category names and validates responses.
func NewOpenAI(apiKey, baseURL, model string, classifier *classify.Classifier, logger *zap.Logger) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: openAITimeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		client:     openai.NewClient(opts...),
		model:      model,
		classifier: classifier,
		logger:     logger,
	}
}

// Suggest asks the model to pick one category from the table for the given
// name and tags. A response outside the table is rejected so downstream
// code only ever sees known categories.
func (p *OpenAI) Suggest(ctx context.Context, name string, tags []string) (Suggestion, error) {
	prompt := fmt.Sprintf(
		"Item name: %q\nItem tags: %s\n\nPick the single best storage category for this item from this list, in order of preference:\n%s\n\nRespond with JSON only: {\"category\": \"...\", \"confidence\": 0.0-1.0}",
		name,
		strings.Join(tags, ", "),
		strings.Join(p.classifier.Names(), ", "),
	)

	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a cataloging assistant that assigns household items to storage categories. Respond with valid JSON only."),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	resp, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Suggestion{}, &TimeoutError{Budget: openAITimeout}
		}
		return Suggestion{}, fmt.Errorf("categorization request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Suggestion{}, errors.New("no choices in response")
	}

	suggestion, err := parseSuggestion(resp.Choices[0].Message.Content)
	if err != nil {
		return Suggestion{}, err
	}
	if !p.classifier.Known(suggestion.Category) {
		p.logger.Debug("openai_returned_unknown_category",
			zap.String("category", suggestion.Category),
		)
		return Suggestion{}, fmt.Errorf("unknown category %q in response", suggestion.Category)
	}
	return suggestion, nil
}

// parseSuggestion decodes the model's JSON answer, tolerating prose around
// the object by extracting the outermost braces.
func parseSuggestion(content string) (Suggestion, error) {
	raw := content
	var suggestion Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		start := bytes.Index([]byte(raw), []byte("{"))
		end := bytes.LastIndex([]byte(raw), []byte("}"))
		if start == -1 || end == -1 || end <= start {
			return Suggestion{}, fmt.Errorf("parsing suggestion response: %w", err)
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &suggestion); err != nil {
			return Suggestion{}, fmt.Errorf("parsing suggestion response: %w", err)
		}
	}
	if suggestion.Category == "" {
		return Suggestion{}, errors.New("empty category in response")
	}
	if suggestion.Confidence <= 0 || suggestion.Confidence > 1 {
		suggestion.Confidence = classify.DefaultMatchConfidence
	}
	return suggestion, nil
}
