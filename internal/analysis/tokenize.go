// Package analysis is the text-analytics engine. Every function is pure and
// total over all strings, including empty and whitespace-only input.
package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
	// A newline, an optional whitespace-only run, then another newline.
	paragraphBreak = regexp.MustCompile(`\n[\s\v\x{85}\p{Zs}\x{2028}\x{2029}]*\n`)
	wordToken      = regexp.MustCompile(`\w+`)
)

// Tokens are the tokenizer outputs shared by all analyzers.
type Tokens struct {
	Characters         int
	CharactersNoSpaces int
	Words              []string
	Sentences          []string
	Paragraphs         []string

	// Untrimmed paragraph fragments, split again into sentences by Heatmap.
	rawParagraphs []string
}

// Tokenize splits text into characters, words, sentences and paragraphs.
// Sentence and paragraph fragments are kept unless empty, so a trailing
// whitespace run after the last terminator counts as one more fragment.
// Whitespace-only input has no sentences or paragraphs.
func Tokenize(text string) Tokens {
	tok := Tokens{
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: countNonSpace(text),
		Words:              splitWords(text),
	}
	if strings.TrimSpace(text) == "" {
		return tok
	}
	tok.rawParagraphs = splitParagraphs(text)
	tok.Sentences = trimAll(splitSentences(text))
	tok.Paragraphs = trimAll(tok.rawParagraphs)
	return tok
}

func countNonSpace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func splitWords(text string) []string {
	return strings.Fields(text)
}

// splitSentences breaks on runs of terminal punctuation and drops empty
// fragments. Fragments are returned untrimmed.
func splitSentences(text string) []string {
	return nonEmpty(sentenceBreak.Split(text, -1))
}

func splitParagraphs(text string) []string {
	return nonEmpty(paragraphBreak.Split(text, -1))
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func trimAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// wordTokens returns lower-cased runs of word characters.
func wordTokens(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}
