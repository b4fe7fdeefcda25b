package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/salescoach/backend/internal/models"
)

// ErrNoJSON means the reply contained no {...} span at all.
var ErrNoJSON = errors.New("invalid AI response format")

// SchemaError means the reply parsed as JSON but does not match the schema
// the prompt asked for. Kept distinct from ErrNoJSON so callers can log which
// half of the contract the model broke.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "model reply schema mismatch: " + e.Reason
}

// extractObject returns the span from the first '{' to the last '}'. Greedy
// on purpose: replies may contain nested objects, and the prompt forbids
// trailing prose.
func extractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseAnalysis extracts and validates a conversation analysis reply.
func ParseAnalysis(text string) (*models.AnalysisResult, error) {
	span, ok := extractObject(text)
	if !ok {
		return nil, ErrNoJSON
	}
	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, fmt.Errorf("parse analysis reply: %w", err)
	}
	if result.CustomerEmotion == "" {
		return nil, &SchemaError{Reason: "customerEmotion is empty"}
	}
	if result.CurrentStageName == "" {
		return nil, &SchemaError{Reason: "currentStageName is empty"}
	}
	return &result, nil
}

var situationMessageTypes = map[string]struct{}{
	"공감":  {},
	"제안":  {},
	"질문":  {},
	"클로징": {},
}

// ParseMessage extracts and validates a situation-to-message reply: exactly
// three messages, each with a known type and non-empty text.
func ParseMessage(text string) (*models.GeneratedMessage, error) {
	span, ok := extractObject(text)
	if !ok {
		return nil, ErrNoJSON
	}
	var result models.GeneratedMessage
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, fmt.Errorf("parse message reply: %w", err)
	}
	if len(result.Messages) != 3 {
		return nil, &SchemaError{Reason: fmt.Sprintf("expected 3 messages, got %d", len(result.Messages))}
	}
	for i, m := range result.Messages {
		if _, ok := situationMessageTypes[m.Type]; !ok {
			return nil, &SchemaError{Reason: fmt.Sprintf("message %d has unknown type %q", i, m.Type)}
		}
		if strings.TrimSpace(m.Text) == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("message %d has empty text", i)}
		}
	}
	return &result, nil
}
