package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/chatwrapped/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs the dataset as a Markdown document.
// The topic distribution is rendered as a Mermaid pie chart.
type MarkdownWriter struct {
	baseWriter

	brand string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownBrand sets the name shown in the brand line.
func WithMarkdownBrand(name string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.brand = name
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the dataset in Markdown format.
func (w *MarkdownWriter) Write(ds *model.Dataset) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ds)
	w.writeThemes(md, ds)
	w.writeProjects(md, ds)
	w.writeVoice(md, ds)
	w.writeFooter(md, ds)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ds *model.Dataset) {
	md.H1("ChatGPT Wrapped")
	md.PlainText("")
	md.PlainText("**" + Brand(w.brand) + "**")
	md.PlainText("")

	if ds.Meta.Disclaimer != "" {
		md.Note(ds.Meta.Disclaimer)
		md.PlainText("")
	}

	md.PlainText(ds.Hero.HeroLine)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Stat", "Value", "Note"},
		Rows: [][]string{
			{"Style", cell(ds.Hero.TopStats.Style.Value), cell(ds.Hero.TopStats.Style.Sub)},
			{"Languages", cell(ds.Hero.TopStats.Languages.Value), cell(ds.Hero.TopStats.Languages.Sub)},
			{"Signature", cell(ds.Hero.TopStats.Signature.Value), cell(ds.Hero.TopStats.Signature.Sub)},
			{"Range", cell(rangeLabel(ds)), "-"},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeThemes(md *markdown.Markdown, ds *model.Dataset) {
	md.H2("Themes")
	md.PlainText("")
	if ds.Themes.Subtitle != "" {
		md.PlainText(ds.Themes.Subtitle)
		md.PlainText("")
	}

	if len(ds.Themes.Top5) > 0 {
		rows := make([][]string, len(ds.Themes.Top5))
		for i, t := range ds.Themes.Top5 {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				t.Title,
				cell(t.Sub),
				strconv.Itoa(t.Weight) + "%",
				cell(t.Highlight),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"#", "Topic", "About", "Weight", "Highlight"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	w.writePieChart(md, ds)

	if len(ds.Themes.Vibe) > 0 {
		md.PlainText("### Vibe")
		md.PlainText("")
		items := make([]string, len(ds.Themes.Vibe))
		for i, v := range ds.Themes.Vibe {
			items[i] = "**" + v.Title + "**: " + v.Desc
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(ds.Themes.MicroStats) > 0 {
		rows := make([][]string, len(ds.Themes.MicroStats))
		for i, m := range ds.Themes.MicroStats {
			rows[i] = []string{m.K, m.V}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Stat", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writePieChart writes the donut slices as a Mermaid pie chart.
// Slices without weight are left out.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ds *model.Dataset) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Topic distribution"),
		piechart.WithShowData(true),
	)

	charted := 0
	for _, d := range ds.Themes.Donut {
		if d.Value <= 0 {
			continue
		}
		chart.LabelAndIntValue(d.Label, uint64(d.Value))
		charted++
	}
	if charted == 0 {
		return
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeProjects(md *markdown.Markdown, ds *model.Dataset) {
	p := ds.Projects
	if len(p.Timeline) == 0 && len(p.List) == 0 && len(p.Tools) == 0 {
		return
	}

	md.H2("Projects")
	md.PlainText("")

	if len(p.Timeline) > 0 {
		rows := make([][]string, len(p.Timeline))
		for i, n := range p.Timeline {
			rows[i] = []string{n.Date, n.Title, cell(n.Desc)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"When", "What", "Details"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(p.List) > 0 {
		items := make([]string, len(p.List))
		for i, it := range p.List {
			items[i] = "**" + it.T + "**: " + it.S
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(p.Tools) > 0 {
		tools := make([]string, len(p.Tools))
		for i, t := range p.Tools {
			tools[i] = "`" + t + "`"
		}
		md.PlainText("Tools: " + strings.Join(tools, " "))
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeVoice(md *markdown.Markdown, ds *model.Dataset) {
	md.H2("Voice")
	md.PlainText("")

	if len(ds.Voice.Cards) > 0 {
		items := make([]string, len(ds.Voice.Cards))
		for i, c := range ds.Voice.Cards {
			items[i] = "**" + c.T + "**: " + c.S
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	words := wordsByScore(ds)
	if len(words) == 0 {
		md.PlainText("No recurring words.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(words))
		for i, word := range words {
			rows[i] = []string{word.W, strconv.Itoa(word.S)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Word", "Score"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	for _, m := range ds.Voice.Moments {
		md.Details(m.T, m.S)
	}
	if len(ds.Voice.Moments) > 0 {
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, ds *model.Dataset) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%s · conversations: %s · fragments: %s*",
		ds.Meta.Mode.Label(), counter(ds.Stats.SourceItems), counter(ds.Stats.Fragments))
}

// cell returns s for a table cell, with a dash for empty values and escaped
// pipes.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
