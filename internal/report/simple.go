package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/chatwrapped/internal/model"
)

const (
	lineWidth = 70
	barWidth  = 20

	// labelWidth is the column width of titles in aligned lists.
	labelWidth = 22

	// textWidth bounds long single-line values.
	textWidth = lineWidth - 4
)

// SimpleWriter outputs the dataset as sectioned terminal text.
// Sections follow the panels of the wrapped view: hero, themes, projects,
// voice and import status.
type SimpleWriter struct {
	baseWriter

	brand string

	// mode overrides the dataset mode in the status section.
	mode model.Mode

	// showEmpty controls whether sections without items are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithBrand sets the name shown in the brand line.
func WithBrand(name string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.brand = name
	}
}

// WithMode overrides the mode shown in the status section. A session can be
// in Data Mode while it still displays the built-in dataset.
func WithMode(mode model.Mode) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.mode = mode
	}
}

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the dataset in human-readable format.
func (w *SimpleWriter) Write(ds *model.Dataset) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, ds)
	w.writeHero(&sb, ds)
	w.writeThemes(&sb, ds)
	w.writeProjects(&sb, ds)
	w.writeVoice(&sb, ds)
	w.writeStatus(&sb, ds)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, ds *model.Dataset) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString("                          CHATGPT WRAPPED\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n\n")

	sb.WriteString(Brand(w.brand) + "\n")
	sb.WriteString(fmt.Sprintf("Range: %s\n", rangeLabel(ds)))
	if ds.Meta.Disclaimer != "" {
		sb.WriteString(truncate(ds.Meta.Disclaimer, lineWidth) + "\n")
	}
	sb.WriteString("\n")
}

// section writes a section title between rules.
func section(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", lineWidth))
	sb.WriteString("\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", lineWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeHero(sb *strings.Builder, ds *model.Dataset) {
	section(sb, "HERO")

	sb.WriteString("  " + ds.Hero.HeroLine + "\n\n")

	stats := []struct {
		label string
		block model.StatBlock
	}{
		{"Style", ds.Hero.TopStats.Style},
		{"Languages", ds.Hero.TopStats.Languages},
		{"Signature", ds.Hero.TopStats.Signature},
	}
	for _, s := range stats {
		sb.WriteString(fmt.Sprintf("  %s %s\n", padRight(s.label+":", 12), s.block.Value))
		if s.block.Sub != "" {
			sb.WriteString(fmt.Sprintf("  %s %s\n", padRight("", 12), truncate(s.block.Sub, textWidth-13)))
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeThemes(sb *strings.Builder, ds *model.Dataset) {
	section(sb, "THEMES")

	if ds.Themes.Subtitle != "" {
		sb.WriteString("  " + ds.Themes.Subtitle + "\n\n")
	}

	for i, t := range ds.Themes.Top5 {
		sb.WriteString(fmt.Sprintf("  %d. %s %s %3d%%\n",
			i+1, padRight(truncate(t.Title, labelWidth), labelWidth), bar(t.Weight, barWidth), t.Weight))
		if t.Sub != "" {
			sb.WriteString("     " + truncate(t.Sub, textWidth-3) + "\n")
		}
		if t.Highlight != "" {
			sb.WriteString("     היילייט: " + truncate(t.Highlight, textWidth-12) + "\n")
		}
	}
	sb.WriteString("\n")

	if len(ds.Themes.Donut) > 0 {
		sb.WriteString("  Distribution (100%)\n")
		for _, d := range ds.Themes.Donut {
			sb.WriteString(fmt.Sprintf("    %s %3d%%\n", padRight(truncate(d.Label, labelWidth), labelWidth), d.Value))
		}
		sb.WriteString("\n")
	}

	if len(ds.Themes.Vibe) > 0 || w.showEmpty {
		sb.WriteString("  Vibe\n")
		for _, v := range ds.Themes.Vibe {
			sb.WriteString(fmt.Sprintf("    [*] %s: %s\n", v.Title, v.Desc))
		}
		sb.WriteString("\n")
	}

	if len(ds.Themes.MicroStats) > 0 || w.showEmpty {
		for _, m := range ds.Themes.MicroStats {
			sb.WriteString(fmt.Sprintf("    %s %s\n", padRight(m.K, labelWidth), m.V))
		}
		sb.WriteString("\n")
	}
}

func (w *SimpleWriter) writeProjects(sb *strings.Builder, ds *model.Dataset) {
	p := ds.Projects
	if len(p.Timeline) == 0 && len(p.List) == 0 && len(p.Tools) == 0 && !w.showEmpty {
		return
	}

	section(sb, "PROJECTS")

	for _, n := range p.Timeline {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", padRight(n.Date, 8), n.Title))
		if n.Desc != "" {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", padRight("", 8), truncate(n.Desc, textWidth-10)))
		}
	}
	if len(p.Timeline) > 0 {
		sb.WriteString("\n")
	}

	for _, it := range p.List {
		sb.WriteString(fmt.Sprintf("  [+] %s\n", it.T))
		if it.S != "" {
			sb.WriteString("      " + truncate(it.S, textWidth-4) + "\n")
		}
	}
	if len(p.List) > 0 {
		sb.WriteString("\n")
	}

	if len(p.Tools) > 0 {
		sb.WriteString("  Tools: " + strings.Join(p.Tools, ", ") + "\n\n")
	}
}

func (w *SimpleWriter) writeVoice(sb *strings.Builder, ds *model.Dataset) {
	section(sb, "VOICE")

	for _, c := range ds.Voice.Cards {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", c.T, c.S))
	}
	if len(ds.Voice.Cards) > 0 {
		sb.WriteString("\n")
	}

	words := wordsByScore(ds)
	if len(words) == 0 {
		if w.showEmpty {
			sb.WriteString("  No words\n\n")
		}
	} else {
		sb.WriteString("  Words\n")
		for _, word := range words {
			sb.WriteString(fmt.Sprintf("    %s %s\n", padRight(truncate(word.W, labelWidth), labelWidth), strings.Repeat("*", max(word.S, 0))))
		}
		sb.WriteString("\n")
	}

	for _, m := range ds.Voice.Moments {
		sb.WriteString(fmt.Sprintf("  > %s\n", m.T))
		if m.S != "" {
			sb.WriteString("    " + truncate(m.S, textWidth-2) + "\n")
		}
	}
	if len(ds.Voice.Moments) > 0 {
		sb.WriteString("\n")
	}
}

func (w *SimpleWriter) writeStatus(sb *strings.Builder, ds *model.Dataset) {
	section(sb, "IMPORT")

	if ds.ImportHelp.Text != "" {
		sb.WriteString("  " + ds.ImportHelp.Text + "\n\n")
	}

	mode := w.mode
	if mode == "" {
		mode = ds.Meta.Mode
	}
	sb.WriteString(fmt.Sprintf("  Mode:          %s\n", mode.Label()))
	sb.WriteString(fmt.Sprintf("  Conversations: %s\n", counter(ds.Stats.SourceItems)))
	sb.WriteString(fmt.Sprintf("  Fragments:     %s\n", counter(ds.Stats.Fragments)))
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	sb.WriteString("Computed locally by chatwrapped. Nothing leaves this machine.\n")
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
}
