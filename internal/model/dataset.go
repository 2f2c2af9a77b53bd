package model

// Mode identifies where a dataset came from.
type Mode string

const (
	// ModeMemory is the built-in static dataset.
	ModeMemory Mode = "memory"

	// ModeData is a dataset computed from an imported document.
	ModeData Mode = "data"
)

// Label returns the display label of the mode.
func (m Mode) Label() string {
	if m == ModeData {
		return "Data Mode"
	}
	return "Memory Mode"
}

// Dataset is the normalized "wrapped" dataset consumed by the report writers.
// The JSON field names are part of the output contract.
type Dataset struct {
	Meta       Meta       `json:"meta"`
	Hero       Hero       `json:"hero"`
	Themes     Themes     `json:"themes"`
	Projects   Projects   `json:"projects"`
	Voice      Voice      `json:"voice"`
	ImportHelp ImportHelp `json:"importHelp"`
	Stats      Stats      `json:"stats"`
}

// Meta describes the dataset as a whole.
type Meta struct {
	Mode       Mode   `json:"mode"`
	RangeLabel string `json:"rangeLabel"`
	Disclaimer string `json:"disclaimer"`
}

// Hero is the headline panel.
type Hero struct {
	HeroLine string   `json:"heroLine"`
	TopStats TopStats `json:"topStats"`
}

// TopStats are the three stat blocks under the headline.
type TopStats struct {
	Style     StatBlock `json:"style"`
	Languages StatBlock `json:"languages"`
	Signature StatBlock `json:"signature"`
}

// StatBlock is a value with a short caption.
type StatBlock struct {
	Value string `json:"value"`
	Sub   string `json:"sub"`
}

// Themes is the topic distribution panel.
type Themes struct {
	Subtitle   string         `json:"subtitle"`
	Top5       []TopicSummary `json:"top5"`
	Donut      []DonutSlice   `json:"donut"`
	Vibe       []Vibe         `json:"vibe"`
	MicroStats []MicroStat    `json:"microStats"`
}

// TopicSummary is one ranked topic.
// Across one dataset the Weight values sum to 100.
type TopicSummary struct {
	Topic     Topic  `json:"topic,omitempty"`
	Title     string `json:"title"`
	Sub       string `json:"sub"`
	Weight    int    `json:"weight"`
	Highlight string `json:"highlight"`
}

// DonutSlice is one segment of the topic chart.
type DonutSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Vibe is a short characterisation line.
type Vibe struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// MicroStat is a small key/value fact.
type MicroStat struct {
	K string `json:"k"`
	V string `json:"v"`
}

// Projects is the timeline and projects panel.
type Projects struct {
	Timeline []TimelineNode `json:"timeline"`
	List     []Item         `json:"list"`
	Tools    []string       `json:"tools"`
}

// TimelineNode is one dated entry of the timeline.
type TimelineNode struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Item is a title with a subtitle, used by several panels.
type Item struct {
	T string `json:"t"`
	S string `json:"s"`
}

// Voice is the writing-style panel.
type Voice struct {
	Cards   []Item     `json:"cards"`
	Words   []WordStat `json:"words"`
	Moments []Item     `json:"moments"`
}

// WordStat is a word with its display score.
// S is the word frequency clamped to [MinWordScore, MaxWordScore]; it is a
// size hint, not a probability.
type WordStat struct {
	W string `json:"w"`
	S int    `json:"s"`
}

// Word score bounds.
const (
	MinWordScore = 1
	MaxWordScore = 8
)

// ImportHelp is the help text shown next to the import controls.
type ImportHelp struct {
	Text string `json:"text"`
}

// Stats are the status counters of the last import.
// Zero values mean "nothing imported" and are rendered as a placeholder.
type Stats struct {
	Fragments   int `json:"fragments"`
	SourceItems int `json:"sourceItems"`
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	c := *d
	c.Themes.Top5 = cloneSlice(d.Themes.Top5)
	c.Themes.Donut = cloneSlice(d.Themes.Donut)
	c.Themes.Vibe = cloneSlice(d.Themes.Vibe)
	c.Themes.MicroStats = cloneSlice(d.Themes.MicroStats)
	c.Projects.Timeline = cloneSlice(d.Projects.Timeline)
	c.Projects.List = cloneSlice(d.Projects.List)
	c.Projects.Tools = cloneSlice(d.Projects.Tools)
	c.Voice.Cards = cloneSlice(d.Voice.Cards)
	c.Voice.Words = cloneSlice(d.Voice.Words)
	c.Voice.Moments = cloneSlice(d.Voice.Moments)
	return &c
}

// TotalWeight returns the sum of the ranked topic weights.
func (d *Dataset) TotalWeight() int {
	total := 0
	for _, t := range d.Themes.Top5 {
		total += t.Weight
	}
	return total
}

// cloneSlice copies a slice of value types, keeping nil as nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
