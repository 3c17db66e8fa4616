// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entity extracts entity strings from document text using an
// OpenAI-compatible chat model. The matching engine treats any non-empty
// string as a valid entity, so this package is pure glue: it owns prompt
// construction and response parsing, nothing about match semantics.
package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"pdf-bounds-matching/internal/observability"
)

// ErrNotConfigured indicates that no API key is available for the
// configured provider.
var ErrNotConfigured = errors.New("entity extractor not configured: missing API key")

// maxPromptChars bounds the document text sent to the model, keeping API
// cost and token usage predictable.
const maxPromptChars = 4000

// extractAttempts is how many times a malformed JSON response is retried.
const extractAttempts = 3

// Extractor extracts entities from text via an LLM.
type Extractor struct {
	client   llms.Model
	observer *observability.Observer
}

// NewExtractor creates an extractor for the given OpenAI-compatible
// endpoint. Host may be empty for the default OpenAI API; apiKey must be
// non-empty.
func NewExtractor(host, apiKey, model string) (*Extractor, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if host != "" {
		opts = append(opts, openai.WithBaseURL(host))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return &Extractor{client: client}, nil
}

// SetObserver sets the observability component.
func (e *Extractor) SetObserver(observer *observability.Observer) {
	e.observer = observer
}

// Entities extracts entity strings from text. entityTypes optionally
// restricts extraction (e.g. PERSON, ORGANIZATION, DATE); empty means all
// relevant entities.
func (e *Extractor) Entities(ctx context.Context, text string, entityTypes []string) ([]string, error) {
	finish := e.observer.StartTiming("entity_extractor", "extract_entities")

	typesClause := "all relevant entities"
	if len(entityTypes) > 0 {
		typesClause = strings.Join(entityTypes, ", ")
	}
	prompt := fmt.Sprintf(entitiesPromptTemplate, typesClause, truncate(text, maxPromptChars))

	var parsed struct {
		Entities []string `json:"entities"`
	}
	err := e.generate(ctx, entitiesSystemPrompt, prompt, 500, &parsed)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, err
	}

	finish(true, map[string]any{"entity_count": len(parsed.Entities)})
	return parsed.Entities, nil
}

// NamedEntities extracts entities categorized by type. entityTypes
// optionally restricts which categories are extracted; empty means all.
func (e *Extractor) NamedEntities(ctx context.Context, text string, entityTypes []string) (map[string][]string, error) {
	finish := e.observer.StartTiming("entity_extractor", "extract_named_entities")

	typesClause := "named entities"
	if len(entityTypes) > 0 {
		typesClause = "entities of the types: " + strings.Join(entityTypes, ", ")
	}
	prompt := fmt.Sprintf(namedEntitiesPromptTemplate, typesClause, truncate(text, maxPromptChars))

	parsed := make(map[string][]string)
	err := e.generate(ctx, namedEntitiesSystemPrompt, prompt, 800, &parsed)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, err
	}

	total := 0
	for _, values := range parsed {
		total += len(values)
	}
	finish(true, map[string]any{"entity_count": total})
	return parsed, nil
}

// generate runs one chat completion and unmarshals the JSON response into
// out, retrying on malformed JSON.
func (e *Extractor) generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, out any) error {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}

	var lastErr error
	for attempt := 0; attempt < extractAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.3),
			llms.WithMaxTokens(maxTokens),
			llms.WithJSONMode(),
		)
		if err != nil {
			return fmt.Errorf("error extracting entities: %w", err)
		}
		if len(response.Choices) == 0 {
			return errors.New("error extracting entities: model returned no choices")
		}

		responseText := stripFences(response.Choices[0].Content)
		if err := json.Unmarshal([]byte(responseText), out); err != nil {
			lastErr = err
			e.observer.Debugf("entity extractor: malformed JSON on attempt %d: %v", attempt+1, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("failed to parse model response after %d attempts: %w", extractAttempts, lastErr)
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncate bounds s to limit characters, marking the cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
