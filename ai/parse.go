package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAIResponse = errors.New("invalid JSON response from AI")

// decodeJSON unmarshals model output into v. A surrounding Markdown code
// fence is tolerated; anything else that is not JSON is an error.
func decodeJSON(content string, v any) error {
	if err := json.Unmarshal([]byte(stripFence(content)), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}
	return nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop a language tag such as "json"
		s = s[nl+1:]
	} else {
		s = stripLangTag(s)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// stripLangTag removes a leading tag on a single-line fence such as
// "```json {...}```". A bare literal like "null" is left alone.
func stripLangTag(s string) string {
	i := 0
	for i < len(s) && ((s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z')) {
		i++
	}
	if i == 0 || i == len(s) {
		return s
	}
	switch s[i] {
	case ' ', '\t', '{', '[':
		return s[i:]
	}
	return s
}
