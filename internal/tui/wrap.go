package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/model"
	"github.com/verte-zerg/textlens/internal/report"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

var spaceRune = styledRune{s: " ", width: 1, isSpace: true}

// styleRunes renders each rune of text on its own so lines can break
// anywhere without splitting escape sequences. Whitespace becomes a plain
// break opportunity.
func styleRunes(text string, style lipgloss.Style) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			out = append(out, spaceRune)
			continue
		}
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

// sentenceStyle colors by complexity band and marks cues: bold for long
// words, italic for passive voice, underline for complex structure.
func sentenceStyle(s model.Sentence) lipgloss.Style {
	style := levelStyle(report.Percent(s.Complexity))
	cues := analysis.Cues(s.Text)
	if cues.LongWord {
		style = style.Bold(true)
	}
	if cues.PassiveVoice {
		style = style.Italic(true)
	}
	if cues.ComplexStructure {
		style = style.Underline(true)
	}
	return style
}

func paragraphRunes(p model.Paragraph) []styledRune {
	var out []styledRune
	for i, s := range p.Sentences {
		if i > 0 {
			out = append(out, spaceRune)
		}
		out = append(out, styleRunes(s.Text, sentenceStyle(s))...)
	}
	return out
}

// cloudRunes lays out words in rank order, weighted against the whole cloud
// even when only a prefix is shown.
func cloudRunes(cloud []model.WordCount, limit int) []styledRune {
	if len(cloud) == 0 {
		return nil
	}
	hi := cloud[0].Count
	lo := cloud[len(cloud)-1].Count
	if limit > 0 && len(cloud) > limit {
		cloud = cloud[:limit]
	}
	var out []styledRune
	for i, wc := range cloud {
		if i > 0 {
			out = append(out, spaceRune, spaceRune)
		}
		out = append(out, styleRunes(wc.Word, cloudStyle(report.CloudWeight(wc.Count, lo, hi)))...)
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		// Drop spaces that would open a line.
		if item.isSpace && len(line) == 0 && out.Len() > 0 {
			i++
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
