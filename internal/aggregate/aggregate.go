package aggregate

import (
	"cmp"
	"math"
	"slices"

	"github.com/nao1215/chatwrapped/internal/model"
)

const (
	// TopN is the number of ranked topics.
	TopN = 5

	// MaxWords is the size of the word cloud.
	MaxWords = 18
)

// Display strings of a computed dataset.
const (
	Highlight      = "מחושב מתוך הקובץ שהעלית"
	RangeLabel     = "הקובץ שהעלית (טווח לפי הדאטה)"
	Disclaimer     = "המסך הזה מחושב מתוך ה-JSON שהעלית (best-effort)."
	HeroLine       = "ה־Wrapped הזה מחושב מתוך הקובץ שהעלית: חלוקה לנושאים, מילים חוזרות, ותבניות שיחה. (הכל רץ מקומית.)"
	ThemesSubtitle = "מחושב מתוך הקובץ שהעלית (best-effort classification)."
	styleValue     = "Data-driven"
	styleSub       = "סטטיסטיקות מתוך JSON שהעלית"
	languagesValue = "משתנה"
	languagesSub   = "אפשר לשפר זיהוי שפה לפי הצורך"
	signatureValue = "Patterns"
	signatureSub   = "חלוקה לנושאים + מילים חוזרות"
)

// Option configures Aggregate.
type Option func(*options)

type options struct {
	sourceItems int
	baseline    func() *model.Dataset
}

// WithSourceItemCount sets the source item counter of the dataset.
func WithSourceItemCount(n int) Option {
	return func(o *options) {
		o.sourceItems = n
	}
}

// WithBaseline replaces the provider of the dataset the results are merged
// into. The provider must return a dataset the caller may modify.
func WithBaseline(fn func() *model.Dataset) Option {
	return func(o *options) {
		if fn != nil {
			o.baseline = fn
		}
	}
}

// Aggregate computes a Data Mode dataset from fragments.
// It never fails; an empty input yields zero counts and no words.
func Aggregate(fragments []string, opts ...Option) *model.Dataset {
	o := &options{baseline: model.Baseline}
	for _, opt := range opts {
		opt(o)
	}
	return Merge(Count(fragments), o.baseline(), o.sourceItems)
}

// Merge writes the computed panels of t into ds and returns it.
func Merge(t *Tally, ds *model.Dataset, sourceItems int) *model.Dataset {
	top := Rank(t.Topics)

	ds.Meta.Mode = model.ModeData
	ds.Meta.RangeLabel = RangeLabel
	ds.Meta.Disclaimer = Disclaimer
	ds.Hero.HeroLine = HeroLine
	ds.Hero.TopStats = model.TopStats{
		Style:     model.StatBlock{Value: styleValue, Sub: styleSub},
		Languages: model.StatBlock{Value: languagesValue, Sub: languagesSub},
		Signature: model.StatBlock{Value: signatureValue, Sub: signatureSub},
	}
	ds.Themes.Subtitle = ThemesSubtitle
	ds.Themes.Top5 = top
	ds.Themes.Donut = make([]model.DonutSlice, len(top))
	for i, s := range top {
		ds.Themes.Donut[i] = model.DonutSlice{Label: s.Title, Value: s.Weight}
	}
	ds.Voice.Words = TopWords(t.Words)
	ds.Stats = model.Stats{
		Fragments:   t.Fragments,
		SourceItems: sourceItems,
	}
	return ds
}

// Rank drops the catch-all topic, orders the rest by descending count and
// weights the top ones so the weights sum to 100. Ties keep declaration order.
func Rank(counts []model.TopicCount) []model.TopicSummary {
	ranked := make([]model.TopicCount, 0, len(counts))
	for _, tc := range counts {
		if !tc.Topic.IsCatchAll() {
			ranked = append(ranked, tc)
		}
	}
	slices.SortStableFunc(ranked, func(a, b model.TopicCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}

	total := 0
	for _, tc := range ranked {
		total += tc.Count
	}
	divisor := float64(total)
	if total == 0 {
		divisor = 1
	}

	out := make([]model.TopicSummary, len(ranked))
	sum := 0
	for i, tc := range ranked {
		w := roundHalfUp(float64(tc.Count) / divisor * 100)
		sum += w
		out[i] = model.TopicSummary{
			Topic:     tc.Topic,
			Title:     tc.Topic.Title(),
			Sub:       tc.Topic.Subtitle(),
			Weight:    w,
			Highlight: Highlight,
		}
	}
	if len(out) > 0 && sum != 100 {
		out[len(out)-1].Weight += 100 - sum
	}
	return out
}

// TopWords orders words by descending count, keeps the first MaxWords and
// turns counts into clamped display scores. Ties keep first-seen order.
func TopWords(words []WordCount) []model.WordStat {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(sorted) > MaxWords {
		sorted = sorted[:MaxWords]
	}

	out := make([]model.WordStat, len(sorted))
	for i, wc := range sorted {
		out[i] = model.WordStat{
			W: wc.Word,
			S: min(max(wc.Count, model.MinWordScore), model.MaxWordScore),
		}
	}
	return out
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
