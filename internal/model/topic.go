package model

// Topic is a classification label assigned to a text fragment.
// The set of topics is closed; see Topics for the declaration order.
type Topic string

const (
	// TopicProductUX covers dashboards, prototypes, apps and diagrams.
	TopicProductUX Topic = "product_ux"

	// TopicTrainingContent covers workshops, trainings and course content.
	TopicTrainingContent Topic = "training_content"

	// TopicCreativeAI covers music generation, lyrics and prompt crafting.
	TopicCreativeAI Topic = "creative_ai"

	// TopicWriting covers letters, messages, rewrites and scripts.
	TopicWriting Topic = "writing"

	// TopicLife covers everyday questions: gadgets, cleaning, food.
	TopicLife Topic = "life"

	// TopicOther is the catch-all label. It is never ranked.
	TopicOther Topic = "other"
)

// topicOrder is the fixed declaration order. Ties in rankings are broken by it.
var topicOrder = []Topic{
	TopicProductUX,
	TopicTrainingContent,
	TopicCreativeAI,
	TopicWriting,
	TopicLife,
	TopicOther,
}

// topicInfo holds the display strings for a topic.
type topicInfo struct {
	title    string
	subtitle string
}

var topicInfoMapping = map[Topic]topicInfo{
	TopicProductUX: {
		title:    "מוצר/UX",
		subtitle: "דשבורדים, GitHub Pages, זרימות, אפליקציות",
	},
	TopicTrainingContent: {
		title:    "הדרכה/תוכן",
		subtitle: "הכשרות, סדנאות, תוכן לשליחים",
	},
	TopicCreativeAI: {
		title:    "AI יצירתי",
		subtitle: "Suno/ElevenLabs, פרומפטים, מוזיקה",
	},
	TopicWriting: {
		title:    "כתיבה",
		subtitle: "ניסוחים, מכתבים, תסריטים",
	},
	TopicLife: {
		title:    "לייף",
		subtitle: "גאדג׳טים, ניקיון, שאלות יומיומיות",
	},
	TopicOther: {
		title: "אחר",
	},
}

// Topics returns every topic in declaration order, catch-all last.
func Topics() []Topic {
	out := make([]Topic, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// String returns the machine-readable key of the topic.
func (t Topic) String() string {
	return string(t)
}

// Title returns the display title of the topic.
// Unknown topics return their raw key.
func (t Topic) Title() string {
	if info, ok := topicInfoMapping[t]; ok {
		return info.title
	}
	return string(t)
}

// Subtitle returns the explanatory subtitle shown under the topic title.
// Topics without an entry return an empty string.
func (t Topic) Subtitle() string {
	return topicInfoMapping[t].subtitle
}

// IsCatchAll reports whether t is the catch-all topic.
func (t Topic) IsCatchAll() bool {
	return t == TopicOther
}

// Valid reports whether t is one of the declared topics.
func (t Topic) Valid() bool {
	_, ok := topicInfoMapping[t]
	return ok
}

// TopicCount pairs a topic with the number of fragments classified into it.
type TopicCount struct {
	Topic Topic `json:"topic"`
	Count int   `json:"count"`
}
