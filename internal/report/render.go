// Package report renders analysis results as terminal text and encodes
// them as JSON or YAML.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
)

// Section names a block of the text report.
type Section string

// Report sections, in render order.
const (
	SectionBasic       Section = "basic"
	SectionChars       Section = "chars"
	SectionCloud       Section = "cloud"
	SectionHeatmap     Section = "heatmap"
	SectionReadability Section = "readability"
)

// AllSections lists every section in render order.
var AllSections = []Section{SectionBasic, SectionChars, SectionCloud, SectionHeatmap, SectionReadability}

// ParseSections validates section names. An empty list selects all sections.
func ParseSections(names []string) ([]Section, error) {
	if len(names) == 0 {
		return AllSections, nil
	}
	want := map[Section]bool{}
	for _, raw := range names {
		name := Section(strings.ToLower(strings.TrimSpace(raw)))
		if name == "" {
			continue
		}
		if !isSection(name) {
			return nil, fmt.Errorf("unknown section %q (valid: %s)", raw, sectionList())
		}
		want[name] = true
	}
	out := make([]Section, 0, len(want))
	for _, s := range AllSections {
		if want[s] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return AllSections, nil
	}
	return out, nil
}

func isSection(name Section) bool {
	for _, s := range AllSections {
		if s == name {
			return true
		}
	}
	return false
}

func sectionList() string {
	names := make([]string, len(AllSections))
	for i, s := range AllSections {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Options control text rendering.
type Options struct {
	Sections   []Section
	CharLimit  int
	CloudLimit int
	// Width is the total line width; 0 uses the terminal width.
	Width int
	Color bool
}

const (
	cloudBarWidth   = 24
	sentenceColumns = 60
	plotHeight      = 6
)

// Render writes the selected sections of rep.
func Render(w io.Writer, title string, rep model.Report, opts Options) error {
	sections := opts.Sections
	if len(sections) == 0 {
		sections = AllSections
	}
	if title != "" {
		if _, err := fmt.Fprintf(w, "== %s ==\n\n", title); err != nil {
			return err
		}
	}
	for _, s := range sections {
		var err error
		switch s {
		case SectionBasic:
			err = RenderBasic(w, rep.Stats)
		case SectionChars:
			err = RenderCharFrequency(w, rep.CharFrequency, rep.Stats.CharactersNoSpaces, opts.CharLimit)
		case SectionCloud:
			err = RenderWordCloud(w, rep.WordCloud, opts.CloudLimit)
		case SectionHeatmap:
			err = RenderHeatmap(w, rep.Heatmap, opts.Color)
			if err == nil {
				err = RenderInsights(w, rep.Insights)
			}
			if err == nil {
				err = RenderComplexityCurve(w, rep.Heatmap, opts.Width, opts.Color)
			}
		case SectionReadability:
			err = RenderReadability(w, rep.Readability)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderBasic prints counts and time estimates.
func RenderBasic(w io.Writer, st model.BasicStats) error {
	rows := [][]string{
		{"Characters", fmt.Sprintf("%d", st.Characters)},
		{"Characters (no spaces)", fmt.Sprintf("%d", st.CharactersNoSpaces)},
		{"Words", fmt.Sprintf("%d", st.Words)},
		{"Sentences", fmt.Sprintf("%d", st.Sentences)},
		{"Paragraphs", fmt.Sprintf("%d", st.Paragraphs)},
		{"Avg word length", fmt.Sprintf("%.1f", st.AvgWordLength())},
		{"Avg sentence length", fmt.Sprintf("%.1f", st.AvgSentenceLength())},
		{"Reading time", analysis.FormatMinutes(st.ReadingTimeMinutes)},
		{"Speaking time", analysis.FormatMinutes(st.SpeakingTimeMinutes)},
	}
	return writeBlock(w, "Basic Statistics", formatTable(nil, rows, map[int]bool{1: true}))
}

// RenderCharFrequency prints the most frequent characters.
func RenderCharFrequency(w io.Writer, freq []model.CharFrequency, totalChars, limit int) error {
	if len(freq) == 0 {
		return writeBlock(w, "Character Frequency", []string{"Add more text to see character frequency"})
	}
	freq = clip(freq, limit)
	rows := make([][]string, 0, len(freq))
	for _, f := range freq {
		share := 0.0
		if totalChars > 0 {
			share = float64(f.Count) / float64(totalChars) * 100
		}
		rows = append(rows, []string{f.Char, fmt.Sprintf("%d", f.Count), fmt.Sprintf("%.1f%%", share)})
	}
	lines := formatTable([]string{"Char", "Count", "Share"}, rows, map[int]bool{1: true, 2: true})
	return writeBlock(w, "Character Frequency", lines)
}

// RenderWordCloud prints ranked words with bars sized by relative weight.
func RenderWordCloud(w io.Writer, cloud []model.WordCount, limit int) error {
	if len(cloud) == 0 {
		return writeBlock(w, "Word Cloud", []string{"Add more text to generate word cloud"})
	}
	hi := cloud[0].Count
	lo := cloud[len(cloud)-1].Count
	shown := clip(cloud, limit)
	rows := make([][]string, 0, len(shown))
	for _, wc := range shown {
		bar := 1 + int(math.Round(CloudWeight(wc.Count, lo, hi)*float64(cloudBarWidth-1)))
		rows = append(rows, []string{wc.Word, fmt.Sprintf("%d", wc.Count), strings.Repeat("█", bar)})
	}
	return writeBlock(w, "Word Cloud", formatTable(nil, rows, map[int]bool{1: true}))
}

// CloudWeight scales count into [0,1] between the lowest and highest counts.
func CloudWeight(count, lo, hi int) float64 {
	return float64(count-lo) / float64(max(1, hi-lo))
}

// RenderHeatmap prints each paragraph's sentences with complexity and cues.
func RenderHeatmap(w io.Writer, paragraphs []model.Paragraph, useColor bool) error {
	if len(paragraphs) == 0 {
		return writeBlock(w, "Complexity Heatmap", []string{"Add more text to generate heat map"})
	}
	lines := []string{Legend(useColor)}
	for _, p := range paragraphs {
		header := fmt.Sprintf("Paragraph %d (%s)", p.Index+1, countLabel(len(p.Sentences), "sentence"))
		if pct, ok := analysis.ParagraphComplexity(p); ok {
			values := make([]float64, len(p.Sentences))
			for i, s := range p.Sentences {
				values[i] = s.Complexity
			}
			header += fmt.Sprintf("  avg %d%%  [%s]", pct, Sparkline(values, 0, 1))
		}
		lines = append(lines, "", header)
		for _, s := range p.Sentences {
			lines = append(lines, "  "+sentenceLine(s, useColor))
		}
	}
	return writeBlock(w, "Complexity Heatmap", lines)
}

func sentenceLine(s model.Sentence, useColor bool) string {
	pct := Percent(s.Complexity)
	tag := fmt.Sprintf("%3d%%", pct)
	if useColor {
		tag = levelFor(pct).ansi() + tag + colorReset
	}
	line := fmt.Sprintf("%s %2dw  %s", tag, s.WordCount, truncate(s.Text, sentenceColumns))
	if cues := CueLabels(analysis.Cues(s.Text)); len(cues) > 0 {
		line += "  (" + strings.Join(cues, ", ") + ")"
	}
	return line
}

// CueLabels names the cues that are set.
func CueLabels(c model.SentenceCues) []string {
	var out []string
	if c.LongWord {
		out = append(out, "long words")
	}
	if c.PassiveVoice {
		out = append(out, "passive voice")
	}
	if c.ComplexStructure {
		out = append(out, "complex structure")
	}
	return out
}

// RenderInsights prints structure aggregates; nil means no sentences.
func RenderInsights(w io.Writer, ins *model.HeatmapInsights) error {
	if ins == nil {
		return writeBlock(w, "Structure Insights", []string{"No sentences to summarize"})
	}
	rows := [][]string{
		{"Average complexity", fmt.Sprintf("%d%%", ins.AverageComplexity)},
		{"Sentence length variation", countLabel(ins.LengthVariation, "word")},
		{"Longest sentence", countLabel(ins.LongestSentence, "word")},
		{"Shortest sentence", countLabel(ins.ShortestSentence, "word")},
		{"Most complex paragraph", fmt.Sprintf("Paragraph %d", ins.MostComplexParagraph+1)},
	}
	return writeBlock(w, "Structure Insights", formatTable(nil, rows, nil))
}

// RenderComplexityCurve plots sentence complexity across the whole text.
func RenderComplexityCurve(w io.Writer, paragraphs []model.Paragraph, totalWidth int, useColor bool) error {
	var values []float64
	for _, p := range paragraphs {
		for _, s := range p.Sentences {
			values = append(values, s.Complexity*100)
		}
	}
	if len(values) < 2 {
		return nil
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotCurveWithColor(w, "Complexity Curve", values, width, plotHeight, useColor)
}

// RenderReadability prints the score, tone, sentiment and suggestions.
func RenderReadability(w io.Writer, r model.Readability) error {
	lines := formatTable(nil, [][]string{
		{"Score", fmt.Sprintf("%d/100", r.RoundedScore())},
		{"Tone", string(r.Tone)},
		{"Sentiment", string(r.Sentiment)},
	}, nil)
	lines = append(lines, "Suggestions:")
	for _, s := range r.Suggestions {
		lines = append(lines, "- "+s)
	}
	return writeBlock(w, "Readability", lines)
}

// Percent converts a complexity to a whole percentage capped at 100.
func Percent(complexity float64) int {
	return min(100, int(math.Round(complexity*100)))
}

func countLabel(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func clip[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func writeBlock(w io.Writer, title string, lines []string) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
