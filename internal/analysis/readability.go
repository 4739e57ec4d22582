package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/textlens/internal/model"
)

const (
	// MinReadabilityChars is the trimmed length below which readability is
	// not computed.
	MinReadabilityChars = 10

	maxSentenceWords   = 25
	maxWordChars       = 6
	minParagraphRatio  = 0.2
	conversationalOver = 70
	neutralOver        = 50
)

// Suggestion texts.
const (
	SuggestMoreText         = "Add more text for analysis"
	SuggestShorterSentences = "Consider using shorter sentences for better readability."
	SuggestSimplerWords     = "Your text uses many long words. Consider simplifying vocabulary for wider audience."
	SuggestMoreParagraphs   = "Consider breaking your text into more paragraphs for better structure."
	SuggestLooksGood        = "Your text looks good!"
)

var syllableRun = regexp.MustCompile(`[aeiouy]{1,2}`)

var (
	positiveWords = wordSet("good", "great", "excellent", "best", "love", "happy", "positive", "wonderful", "amazing")
	negativeWords = wordSet("bad", "terrible", "awful", "worst", "hate", "sad", "negative", "poor", "horrible")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// TooShort reports whether text is below the readability threshold.
func TooShort(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) < MinReadabilityChars
}

// Insufficient is the fixed result returned for too-short input.
func Insufficient() model.Readability {
	return model.Readability{
		Score:       0,
		Tone:        model.ToneNA,
		Sentiment:   model.SentimentNA,
		Suggestions: []string{SuggestMoreText},
	}
}

// Readability scores text with a Flesch-style formula and classifies its
// tone and sentiment.
func Readability(text string) model.Readability {
	if TooShort(text) {
		return Insufficient()
	}
	return readabilityFrom(text, Tokenize(text))
}

func readabilityFrom(text string, tok Tokens) model.Readability {
	tokens := wordTokens(text)
	score := fleschScore(len(tok.Words), len(tok.Sentences), syllables(tokens))
	return model.Readability{
		Score:       score,
		Tone:        classifyTone(score),
		Sentiment:   classifySentiment(tokens),
		Suggestions: suggestions(tok),
	}
}

// EstimateSyllables sums a vowel-run estimate over the lower-cased word
// tokens of text. Every word counts for at least one syllable.
func EstimateSyllables(text string) int {
	return syllables(wordTokens(text))
}

func syllables(words []string) int {
	total := 0
	for _, w := range words {
		total += wordSyllables(w)
	}
	return total
}

func wordSyllables(word string) int {
	n := len(syllableRun.FindAllStringIndex(word, -1))
	if n > 0 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

func fleschScore(words, sentences, syllableCount int) float64 {
	if words == 0 || sentences == 0 {
		return 0
	}
	score := 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllableCount)/float64(max(words, 1)))
	return min(max(score, 0), 100)
}

func suggestions(tok Tokens) []string {
	words := len(tok.Words)
	sentences := max(len(tok.Sentences), 1)

	var out []string
	if float64(words)/float64(sentences) > maxSentenceWords {
		out = append(out, SuggestShorterSentences)
	}
	if float64(tok.CharactersNoSpaces)/float64(max(words, 1)) > maxWordChars {
		out = append(out, SuggestSimplerWords)
	}
	if float64(len(tok.Paragraphs))/float64(sentences) < minParagraphRatio {
		out = append(out, SuggestMoreParagraphs)
	}
	if len(out) == 0 {
		out = append(out, SuggestLooksGood)
	}
	return out
}

func classifyTone(score float64) model.Tone {
	switch {
	case score > conversationalOver:
		return model.ToneConversational
	case score > neutralOver:
		return model.ToneNeutral
	default:
		return model.ToneFormal
	}
}

func classifySentiment(tokens []string) model.Sentiment {
	var pos, neg int
	for _, t := range tokens {
		if _, ok := positiveWords[t]; ok {
			pos++
		}
		if _, ok := negativeWords[t]; ok {
			neg++
		}
	}
	switch {
	case pos > 2*neg:
		return model.SentimentVeryPositive
	case pos > neg:
		return model.SentimentSomewhatPositive
	case neg > 2*pos:
		return model.SentimentVeryNegative
	case neg > pos:
		return model.SentimentSomewhatNegative
	default:
		return model.SentimentNeutral
	}
}
