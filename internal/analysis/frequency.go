package analysis

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/textlens/internal/model"
)

const (
	// MaxCharFrequency bounds the character ranking.
	MaxCharFrequency = 15
	// MaxWordCloud bounds the word cloud ranking.
	MaxWordCloud = 50

	minCloudWordLen = 3
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "to": {}, "of": {}, "a": {}, "in": {}, "for": {}, "is": {},
	"on": {}, "that": {}, "by": {}, "this": {}, "with": {}, "i": {}, "you": {}, "it": {},
}

// IsStopWord reports whether a lower-cased word is excluded from the word cloud.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// counter accumulates counts and remembers first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top ranks keys by count descending; ties keep first-seen order.
func (c *counter) top(n int) []string {
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// CharacterFrequency ranks non-whitespace characters, case-sensitively.
func CharacterFrequency(text string) []model.CharFrequency {
	c := newCounter()
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		c.add(string(r))
	}
	keys := c.top(MaxCharFrequency)
	out := make([]model.CharFrequency, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.CharFrequency{Char: k, Count: c.counts[k]})
	}
	return out
}

// WordCloud ranks lower-cased words, skipping stop words and short words.
func WordCloud(text string) []model.WordCount {
	c := newCounter()
	for _, w := range wordTokens(text) {
		if utf8.RuneCountInString(w) < minCloudWordLen || IsStopWord(w) {
			continue
		}
		c.add(w)
	}
	keys := c.top(MaxWordCloud)
	out := make([]model.WordCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.WordCount{Word: k, Count: c.counts[k]})
	}
	return out
}
