package api

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const excerptLimit = 200

var reHTMLTitle = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// StatusError is a non-success HTTP response from the backend.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// newStatusError derives a user-facing message from an error response body.
// A 5xx is always reported generically; a 4xx is probed for a structured
// error field, then an HTML title, then a capped raw excerpt.
func newStatusError(code int, body []byte) *StatusError {
	if code >= 500 {
		return &StatusError{Code: code, Message: "the server is busy or timed out, please try again shortly"}
	}
	return &StatusError{Code: code, Message: deriveMessage(body)}
}

func deriveMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	if m := reHTMLTitle.FindSubmatch(body); m != nil {
		if title := strings.TrimSpace(string(m[1])); title != "" {
			return title
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "request failed"
	}
	if len(text) > excerptLimit {
		// Back up to a rune boundary so the excerpt stays valid UTF-8.
		cut := excerptLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return text
}
