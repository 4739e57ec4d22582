package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
	"github.com/verte-zerg/textlens/internal/readjob"
	"github.com/verte-zerg/textlens/internal/report"
)

const scoreBarWidth = 20

func renderBasic(st model.BasicStats, width int) string {
	cards := []string{
		metricCard("Characters", fmt.Sprintf("%d", st.Characters)),
		metricCard("Characters (no spaces)", fmt.Sprintf("%d", st.CharactersNoSpaces)),
		metricCard("Words", fmt.Sprintf("%d", st.Words)),
		metricCard("Sentences", fmt.Sprintf("%d", st.Sentences)),
		metricCard("Paragraphs", fmt.Sprintf("%d", st.Paragraphs)),
	}
	return layoutCards(cards, width)
}

func renderAdvanced(st model.BasicStats, freq []model.CharFrequency, charLimit, width int) string {
	cards := []string{
		metricCard("Reading time", analysis.FormatMinutes(st.ReadingTimeMinutes)),
		metricCard("Speaking time", analysis.FormatMinutes(st.SpeakingTimeMinutes)),
		metricCard("Avg. word length", fmt.Sprintf("%.1f chars", st.AvgWordLength())),
		metricCard("Avg. sentence length", fmt.Sprintf("%.1f words", st.AvgSentenceLength())),
	}
	out := layoutCards(cards, width)
	if len(freq) == 0 {
		return out
	}
	chars := buildCharTable(freq, st.CharactersNoSpaces, charLimit)
	return out + "\n\n" + headerStyle.Render("Most common characters") + "\n" + chars.View()
}

func layoutCards(cards []string, width int) string {
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	perRow := 3
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildCharTable(freq []model.CharFrequency, totalChars, limit int) table.Model {
	columns := []table.Column{
		{Title: "Char", Width: 6},
		{Title: "Count", Width: 7},
		{Title: "Share", Width: 7},
	}
	if limit > 0 && len(freq) > limit {
		freq = freq[:limit]
	}
	rows := make([]table.Row, 0, len(freq))
	for _, f := range freq {
		share := 0.0
		if totalChars > 0 {
			share = float64(f.Count) / float64(totalChars) * 100
		}
		rows = append(rows, table.Row{
			f.Char,
			fmt.Sprintf("%d", f.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(charTableStyles())
	t.Blur()
	return t
}

func renderReadability(snap readjob.Snapshot, spinnerView string, width int) string {
	switch snap.State {
	case readjob.StatePending:
		return spinnerView + " Analyzing readability..."
	case readjob.StateComputed:
	default:
		return mutedStyle.Render("Press ctrl+r to analyze readability.")
	}
	r := snap.Result
	score := r.RoundedScore()
	filled := score * scoreBarWidth / 100
	bar := scoreStyle(score).Render(strings.Repeat("█", filled)) +
		separatorStyle.Render(strings.Repeat("░", scoreBarWidth-filled))
	cards := []string{
		metricCard("Readability", fmt.Sprintf("%d/100", score)),
		metricCard("Tone", string(r.Tone)),
		metricCard("Sentiment", string(r.Sentiment)),
	}
	var b strings.Builder
	b.WriteString(bar)
	b.WriteString("\n")
	b.WriteString(layoutCards(cards, width))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Suggestions"))
	for _, s := range r.Suggestions {
		b.WriteString("\n• ")
		b.WriteString(s)
	}
	return b.String()
}

func renderHeatmap(paragraphs []model.Paragraph, ins *model.HeatmapInsights, width int) string {
	if len(paragraphs) == 0 {
		return mutedStyle.Render("Add more text to generate heat map")
	}
	var b strings.Builder
	b.WriteString(renderLegend())
	for _, p := range paragraphs {
		title := fmt.Sprintf("Paragraph %d", p.Index+1)
		if pct, ok := analysis.ParagraphComplexity(p); ok {
			title += fmt.Sprintf(" · average complexity %d%%", pct)
		}
		b.WriteString("\n\n")
		b.WriteString(cardTitleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(wrapStyledRunes(paragraphRunes(p), width))
	}
	var buf bytes.Buffer
	if err := report.RenderInsights(&buf, ins); err != nil {
		return b.String()
	}
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(buf.String(), "\n"))
	return b.String()
}

func renderLegend() string {
	parts := make([]string, 0, len(report.Levels))
	for _, l := range report.Levels {
		parts = append(parts, levelStyle(l.Upper).Render("■")+" "+l.Name)
	}
	cues := headerStyle.Render("bold: long words  italic: passive voice  underline: complex structure")
	return strings.Join(parts, "  ") + "\n" + cues
}

func renderCloud(cloud []model.WordCount, limit, width int) string {
	if len(cloud) == 0 {
		return mutedStyle.Render("Add more text to generate word cloud")
	}
	return wrapStyledRunes(cloudRunes(cloud, limit), width)
}
