package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// textKeys are attribute keys whose string values are chat text.
var textKeys = map[string]bool{
	"content":    true,
	"text":       true,
	"message":    true,
	"messages":   true,
	"prompt":     true,
	"completion": true,
	"parts":      true,
	"body":       true,
	"title":      true,
	"fragment":   true,
	"word":       true,
}

// sensitiveKeys are attribute keys that always hold credentials.
var sensitiveKeys = map[string]bool{
	"authorization":  true,
	"cookie":         true,
	"x-api-key":      true,
	"password":       true,
	"passwd":         true,
	"secret":         true,
	"token":          true,
	"api_key":        true,
	"apikey":         true,
	"api-key":        true,
	"access_token":   true,
	"refresh_token":  true,
	"private_key":    true,
	"session_id":     true,
	"sessionid":      true,
	"openai_api_key": true,
	"credential":     true,
	"credentials":    true,
	"auth":           true,
}

// sensitiveKeywords mark a key as sensitive when contained in it.
// The bare word "key" is not one of them; it matches too many harmless keys.
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "auth", "credential", "private",
}

// sensitivePatterns match credential-like values regardless of key name.
var sensitivePatterns = []*regexp.Regexp{
	// JWT tokens
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),

	// Bearer tokens
	regexp.MustCompile(`(?i)^bearer\s+.+`),

	// Basic auth
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),

	// OpenAI-style secret keys
	regexp.MustCompile(`^sk-[A-Za-z0-9_-]{20,}$`),

	// Long alphanumeric strings
	regexp.MustCompile(`^[a-zA-Z0-9]{32,}$`),

	// AWS access keys
	regexp.MustCompile(`^AKIA[0-9A-Z]{16}$`),

	// Private key markers
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),
}

// MaskValue replaces credential values.
const MaskValue = "***REDACTED***"

// TextMarker returns the placeholder logged instead of chat text s.
func TextMarker(s string) string {
	return "[" + strconv.Itoa(utf8.RuneCountInString(s)) + " chars]"
}

// PrivateHandler wraps an slog.Handler and removes chat text and credentials
// from attributes before they reach the underlying handler.
type PrivateHandler struct {
	handler slog.Handler
}

// NewPrivateHandler creates a PrivateHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used.
func NewPrivateHandler(handler slog.Handler) *PrivateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PrivateHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrivateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it on.
func (h *PrivateHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the sanitized attributes added.
func (h *PrivateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = sanitizeAttr(a)
	}
	return &PrivateHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *PrivateHandler) WithGroup(name string) slog.Handler {
	return &PrivateHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes a single attribute, recursively handling groups.
func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	if sensitiveKeys[keyLower] || containsSensitiveKeyword(keyLower) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}

	strVal := a.Value.String()
	if textKeys[keyLower] {
		return slog.String(a.Key, TextMarker(strVal))
	}
	if isSensitiveValue(strVal) {
		return slog.String(a.Key, MaskValue)
	}
	return a
}

// containsSensitiveKeyword checks if the key contains a sensitive keyword.
func containsSensitiveKeyword(key string) bool {
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// isSensitiveValue checks if a value matches a credential pattern.
func isSensitiveValue(value string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// level returns Debug when verbose and Warn otherwise.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewPrivateLogger creates a text logger writing to w through a
// PrivateHandler. verbose lowers the level from Warn to Debug.
func NewPrivateLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewPrivateHandler(slog.NewTextHandler(w, opts)))
}

// NewPrivateJSONLogger is NewPrivateLogger with JSON output.
func NewPrivateJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewPrivateHandler(slog.NewJSONHandler(w, opts)))
}
