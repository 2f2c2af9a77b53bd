// Package classify assigns a single topic to a text fragment using an ordered
// list of keyword rules.
//
// Rules are evaluated in order and the first match wins, so a fragment that
// mentions both a dashboard and a rewrite is classified by whichever rule
// comes first, not by the number of matching keywords. A fragment matching no
// rule gets the catch-all topic.
package classify

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/chatwrapped/internal/model"
)

// Rule maps a keyword pattern to a topic.
// Patterns are matched against the lower-cased fragment.
type Rule struct {
	Topic   model.Topic
	Pattern *regexp.Regexp
}

// Match reports whether the rule applies to the lower-cased text.
func (r Rule) Match(lowered string) bool {
	return r.Pattern.MatchString(lowered)
}

// defaultRules is the fixed, ordered rule table.
var defaultRules = []Rule{
	{
		Topic:   model.TopicProductUX,
		Pattern: regexp.MustCompile(`ux|dashboard|דשבורד|mermaid|github|wireframe|prototype|react|tailwind|app`),
	},
	{
		Topic:   model.TopicTrainingContent,
		Pattern: regexp.MustCompile(`שליח|סדנה|הדרכה|training|workshop|e-?learning|aliyah|סוכנות`),
	},
	{
		Topic:   model.TopicCreativeAI,
		Pattern: regexp.MustCompile(`suno|elevenlabs|lyrics|פרומפט|prompt|טקסט להלחנה|music|שיר`),
	},
	{
		Topic:   model.TopicWriting,
		Pattern: regexp.MustCompile(`cover letter|מכתב|וואטסאפ|message|ניסוח|rewrite|humanize|תסריט`),
	},
	{
		Topic:   model.TopicLife,
		Pattern: regexp.MustCompile(`soap|סבון|usb|מתאם|טכנאי|מזגן|roller coaster|dumpling|כינקלי`),
	},
}

// Rules returns a copy of the default rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Classifier evaluates an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier. Without arguments it uses the default rules.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = defaultRules
	}
	return &Classifier{rules: rules}
}

// defaultClassifier backs the package-level Classify.
var defaultClassifier = New()

// Classify returns the topic of text using the default rules.
func Classify(text string) model.Topic {
	return defaultClassifier.Classify(text)
}

// Classify returns the topic of the first rule matching text, or the
// catch-all topic when none does. It never fails.
func (c *Classifier) Classify(text string) model.Topic {
	lowered := Lower(text)
	for _, r := range c.rules {
		if r.Match(lowered) {
			return r.Topic
		}
	}
	return model.TopicOther
}

// Lower lower-cases s with full Unicode case mapping.
func Lower(s string) string {
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}
