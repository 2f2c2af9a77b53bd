package extract

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/chatwrapped/internal/model"
)

const (
	// DefaultMaxDepth is the deepest level that is still visited.
	// The root document is level 0.
	DefaultMaxDepth = 18

	// DefaultKeyLength is the number of leading runes that identify a fragment.
	DefaultKeyLength = 220

	// MinFragmentLength is the minimum trimmed length of a kept fragment, in runes.
	MinFragmentLength = 2
)

// knownFields are object fields whose string values are collected before the
// generic walk. The order is significant for the result order.
var knownFields = []string{
	"text",
	"content",
	"message",
	"messages",
	"parts",
	"body",
	"prompt",
	"completion",
	"title",
}

// KnownFields returns the field names collected ahead of the generic walk.
func KnownFields() []string {
	out := make([]string, len(knownFields))
	copy(out, knownFields)
	return out
}

// Extractor collects text fragments from documents.
// The zero value is not usable; create one with New.
type Extractor struct {
	maxDepth  int
	keyLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxDepth sets the deepest visited level. Negative values are ignored.
func WithMaxDepth(depth int) Option {
	return func(e *Extractor) {
		if depth >= 0 {
			e.maxDepth = depth
		}
	}
}

// WithKeyLength sets the deduplication prefix length in runes.
// Non-positive values are ignored.
func WithKeyLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.keyLength = n
		}
	}
}

// New creates an Extractor with the default bounds.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxDepth:  DefaultMaxDepth,
		keyLength: DefaultKeyLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the fragments of doc using the default bounds.
func Extract(doc *model.Document) []string {
	return New().Extract(doc)
}

// Extract returns the deduplicated fragments of doc in first-visited order.
// It never fails; an empty or scalar document yields zero or one fragment.
func (e *Extractor) Extract(doc *model.Document) []string {
	w := &walker{
		maxDepth:  e.maxDepth,
		keyLength: e.keyLength,
		seen:      make(map[string]struct{}),
		texts:     make([]string, 0),
	}
	w.walk(doc, 0)
	return w.texts
}

// walker holds the state of a single extraction.
type walker struct {
	maxDepth  int
	keyLength int
	seen      map[string]struct{}
	texts     []string
}

// walk visits node if it is within the depth bound.
func (w *walker) walk(node *model.Document, depth int) {
	if node == nil || depth > w.maxDepth {
		return
	}

	switch node.Kind {
	case model.KindString:
		w.push(node.Text)
	case model.KindArray:
		for _, item := range node.Items {
			w.walk(item, depth+1)
		}
	case model.KindObject:
		for _, field := range knownFields {
			if v, ok := node.Get(field); ok && v.Kind == model.KindString {
				w.push(v.Text)
			}
		}
		for _, m := range memberOrder(node.Members) {
			w.walk(m.Value, depth+1)
		}
	}
}

// memberOrder returns members in property enumeration order: keys that are
// array indices first, in ascending numeric order, then the remaining keys in
// document order. members itself is not reordered.
func memberOrder(members []model.Member) []model.Member {
	indexed := false
	for _, m := range members {
		if _, ok := arrayIndex(m.Key); ok {
			indexed = true
			break
		}
	}
	if !indexed {
		return members
	}

	ordered := slices.Clone(members)
	slices.SortStableFunc(ordered, func(a, b model.Member) int {
		ai, aok := arrayIndex(a.Key)
		bi, bok := arrayIndex(b.Key)
		switch {
		case aok && bok:
			return cmp.Compare(ai, bi)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return ordered
}

// arrayIndex reports whether key is the canonical decimal form of an
// integer in [0, 2^32-2] and returns its value.
func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return n, true
}

// push records s unless it is empty, a duplicate, or too short.
// The key is marked as seen before the length check.
func (w *walker) push(s string) {
	if s == "" {
		return
	}

	key := prefix(s, w.keyLength)
	if _, dup := w.seen[key]; dup {
		return
	}
	w.seen[key] = struct{}{}

	if utf8.RuneCountInString(strings.TrimSpace(s)) >= MinFragmentLength {
		w.texts = append(w.texts, s)
	}
}

// Key returns the deduplication key of s for the default key length.
func Key(s string) string {
	return prefix(s, DefaultKeyLength)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
