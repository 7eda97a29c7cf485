package shaper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPayload is returned when generated text holds nothing to parse
var ErrEmptyPayload = errors.New("empty payload")

// ErrNotObject is returned when generated text is JSON but not an object (null, arrays, scalars)
var ErrNotObject = errors.New("payload is not a JSON object")

// StripFences removes Markdown code-fence delimiters around generated JSON
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseUntrusted decodes generated text into a copy of fallback. Fields the
// text does not mention keep their fallback value. On any failure the
// fallback itself is returned together with the error.
func ParseUntrusted[T any](text string, fallback T) (T, error) {
	cleaned := StripFences(text)
	if cleaned == "" {
		return fallback, ErrEmptyPayload
	}

	if !strings.HasPrefix(cleaned, "{") {
		return fallback, ErrNotObject
	}

	parsed := fallback
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return fallback, fmt.Errorf("invalid generated JSON: %w", err)
	}
	return parsed, nil
}
