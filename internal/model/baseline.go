package model

// DefaultRangeLabel is the range label of the built-in dataset.
const DefaultRangeLabel = "12 חודשים אחרונים"

// baseline is the built-in Memory Mode dataset.
// It must never be handed out directly; use Baseline.
var baseline = &Dataset{
	Meta: Meta{
		Mode:       ModeMemory,
		RangeLabel: DefaultRangeLabel,
		Disclaimer: "Memory Mode is a curated summary written from memory, not computed from data.",
	},
	Hero: Hero{
		HeroLine: "A year of building, prompting and rewriting: dashboards at night, lyrics in the morning, and a lot of \"make it sound more human\".",
		TopStats: TopStats{
			Style: StatBlock{
				Value: "Builder",
				Sub:   "Turns vague ideas into working pages",
			},
			Languages: StatBlock{
				Value: "עברית + English",
				Sub:   "Switches mid-sentence without noticing",
			},
			Signature: StatBlock{
				Value: "\"One more version\"",
				Sub:   "Iterates until it feels right",
			},
		},
	},
	Themes: Themes{
		Subtitle: "The five themes that kept coming back.",
		Top5: []TopicSummary{
			{
				Topic:     TopicProductUX,
				Title:     TopicProductUX.Title(),
				Sub:       TopicProductUX.Subtitle(),
				Weight:    34,
				Highlight: "A GitHub Pages dashboard with animated cards",
			},
			{
				Topic:     TopicTrainingContent,
				Title:     TopicTrainingContent.Title(),
				Sub:       TopicTrainingContent.Subtitle(),
				Weight:    22,
				Highlight: "A full workshop outline in one evening",
			},
			{
				Topic:     TopicCreativeAI,
				Title:     TopicCreativeAI.Title(),
				Sub:       TopicCreativeAI.Subtitle(),
				Weight:    18,
				Highlight: "Piano-only Suno prompts, no drums",
			},
			{
				Topic:     TopicWriting,
				Title:     TopicWriting.Title(),
				Sub:       TopicWriting.Subtitle(),
				Weight:    16,
				Highlight: "The WhatsApp message that finally sounded right",
			},
			{
				Topic:     TopicLife,
				Title:     TopicLife.Title(),
				Sub:       TopicLife.Subtitle(),
				Weight:    10,
				Highlight: "Backing up a tablet over USB",
			},
		},
		Donut: []DonutSlice{
			{Label: TopicProductUX.Title(), Value: 34},
			{Label: TopicTrainingContent.Title(), Value: 22},
			{Label: TopicCreativeAI.Title(), Value: 18},
			{Label: TopicWriting.Title(), Value: 16},
			{Label: TopicLife.Title(), Value: 10},
		},
		Vibe: []Vibe{
			{Title: "Ship first", Desc: "Prototype, look at it, then decide."},
			{Title: "Bilingual by default", Desc: "Hebrew for feelings, English for code."},
			{Title: "Playful precision", Desc: "Exact specs, loose tone."},
		},
		MicroStats: []MicroStat{
			{K: "Longest thread", V: "dashboard redesign"},
			{K: "Favorite fix", V: "\"shorter, warmer\""},
			{K: "Late-night share", V: "about a third"},
			{K: "Most rewritten", V: "cover letters"},
		},
	},
	Projects: Projects{
		Timeline: []TimelineNode{
			{Date: "Q1", Title: "Dashboard season", Desc: "Mermaid flows, wireframes and the first GitHub Pages site."},
			{Date: "Q2", Title: "Workshops", Desc: "Training decks and hands-on exercises."},
			{Date: "Q3", Title: "Music experiments", Desc: "Suno and ElevenLabs, lyrics drafts and voice tests."},
			{Date: "Q4", Title: "Everything else", Desc: "Gadgets, recipes and messages that needed a better tone."},
		},
		List: []Item{
			{T: "Wrapped page", S: "A single-file year in review"},
			{T: "Training kit", S: "Slides, handouts and a checklist"},
			{T: "Song prompts", S: "Reusable prompt templates"},
		},
		Tools: []string{"GitHub Pages", "Mermaid", "React", "Tailwind", "Suno", "ElevenLabs"},
	},
	Voice: Voice{
		Cards: []Item{
			{T: "Direct", S: "Asks for exactly what is needed"},
			{T: "Iterative", S: "Refines in small steps"},
			{T: "Warm", S: "Cares how the reader will feel"},
		},
		Words: []WordStat{
			{W: "dashboard", S: 8},
			{W: "prompt", S: 7},
			{W: "github", S: 6},
			{W: "workshop", S: 5},
			{W: "rewrite", S: 5},
			{W: "mermaid", S: 4},
			{W: "suno", S: 4},
			{W: "usb", S: 2},
		},
		Moments: []Item{
			{T: "The first deploy", S: "It worked on the first try. Almost."},
			{T: "The no-drums track", S: "Keys only, exactly as asked."},
			{T: "The better message", S: "Shorter, kinder, sent."},
		},
	},
	ImportHelp: ImportHelp{
		Text: "Export your chat history as JSON and import it to compute a Data Mode summary. Everything runs locally.",
	},
}

// Baseline returns a deep, independent copy of the built-in dataset.
func Baseline() *Dataset {
	return baseline.Clone()
}
