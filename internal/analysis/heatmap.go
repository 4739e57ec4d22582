package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/verte-zerg/textlens/internal/model"
)

// saturationWords is the sentence length at which complexity reaches 1.
const saturationWords = 25

var (
	longWord     = regexp.MustCompile(`\b\w{10,}\b`)
	passiveVoice = regexp.MustCompile(`(?i)\b(is|are|was|were|be|been|being)\s+\w+ed\b`)
	clauseBreak  = regexp.MustCompile(`[,;]`)
)

// Complexity maps a sentence word count onto [0,1].
func Complexity(wordCount int) float64 {
	if wordCount <= 0 {
		return 0
	}
	return math.Min(1, float64(wordCount)/saturationWords)
}

// Heatmap scores every sentence of every paragraph.
func Heatmap(text string) []model.Paragraph {
	return heatmapFrom(Tokenize(text))
}

func heatmapFrom(tok Tokens) []model.Paragraph {
	out := make([]model.Paragraph, 0, len(tok.rawParagraphs))
	for pi, para := range tok.rawParagraphs {
		parts := splitSentences(para)
		sentences := make([]model.Sentence, 0, len(parts))
		for si, s := range parts {
			// A whitespace-only fragment is a sentence of zero words.
			wc := len(strings.Fields(s))
			sentences = append(sentences, model.Sentence{
				Index:      si,
				Text:       strings.TrimSpace(s),
				WordCount:  wc,
				Complexity: Complexity(wc),
			})
		}
		out = append(out, model.Paragraph{Index: pi, Sentences: sentences})
	}
	return out
}

// Cues flags long words, passive voice and multi-clause structure.
func Cues(sentence string) model.SentenceCues {
	return model.SentenceCues{
		LongWord:         longWord.MatchString(sentence),
		PassiveVoice:     passiveVoice.MatchString(sentence),
		ComplexStructure: len(clauseBreak.Split(sentence, -1)) > 2,
	}
}

// ParagraphComplexity returns the rounded mean sentence complexity as a
// percentage. ok is false for a paragraph without sentences.
func ParagraphComplexity(p model.Paragraph) (percent int, ok bool) {
	if len(p.Sentences) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range p.Sentences {
		sum += s.Complexity * 100
	}
	return int(math.Round(sum / float64(len(p.Sentences)))), true
}

// Insights aggregates structure metrics. ok is false when there are no
// sentences at all; callers must not display the zero value in that case.
func Insights(paragraphs []model.Paragraph) (model.HeatmapInsights, bool) {
	var (
		total    int
		sum      float64
		longest  int
		shortest int
		bestIdx  = -1
		bestMean float64
	)
	for _, p := range paragraphs {
		if len(p.Sentences) == 0 {
			continue
		}
		var paraSum float64
		for _, s := range p.Sentences {
			if total == 0 || s.WordCount > longest {
				longest = s.WordCount
			}
			if total == 0 || s.WordCount < shortest {
				shortest = s.WordCount
			}
			total++
			sum += s.Complexity * 100
			paraSum += s.Complexity
		}
		mean := paraSum / float64(len(p.Sentences))
		if bestIdx == -1 || mean > bestMean {
			bestIdx = p.Index
			bestMean = mean
		}
	}
	if total == 0 {
		return model.HeatmapInsights{}, false
	}
	return model.HeatmapInsights{
		AverageComplexity:    int(math.Round(sum / float64(total))),
		LengthVariation:      longest - shortest,
		LongestSentence:      longest,
		ShortestSentence:     shortest,
		MostComplexParagraph: bestIdx,
	}, true
}
