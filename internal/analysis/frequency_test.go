package analysis

import (
	"fmt"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/textlens/internal/model"
)

func TestCharacterFrequencyCaseSensitiveFirstSeen(t *testing.T) {
	got := CharacterFrequency("aAb a")
	assert.Equal(t, []model.CharFrequency{
		{Char: "a", Count: 2},
		{Char: "A", Count: 1},
		{Char: "b", Count: 1},
	}, got)
}

func TestCharacterFrequencyLimitAndWhitespace(t *testing.T) {
	text := "abcdefghij klmnopqrst\n\tuvwxyz  "
	got := CharacterFrequency(text)
	require.Len(t, got, MaxCharFrequency)
	for _, e := range got {
		r, _ := utf8.DecodeRuneInString(e.Char)
		assert.False(t, unicode.IsSpace(r), "whitespace entry %q", e.Char)
	}
	assert.Equal(t, "a", got[0].Char)
	assert.Equal(t, "o", got[14].Char)
}

func TestCharacterFrequencyEmpty(t *testing.T) {
	assert.Empty(t, CharacterFrequency(""))
	assert.Empty(t, CharacterFrequency(" \n\t "))
}

func TestWordCloudFiltersAndRanks(t *testing.T) {
	got := WordCloud("The cat and the dog. The CAT sat on it; a cat!")
	assert.Equal(t, []model.WordCount{
		{Word: "cat", Count: 3},
		{Word: "dog", Count: 1},
		{Word: "sat", Count: 1},
	}, got)
}

func TestWordCloudProperties(t *testing.T) {
	text := "This is a test of the word cloud. It is with you and I, by the way, " +
		"for testing that the cloud keeps cloud words and drops ok or no."
	got := WordCloud(text)
	require.NotEmpty(t, got)
	for i, e := range got {
		assert.False(t, IsStopWord(e.Word), "stop word %q", e.Word)
		assert.Greater(t, utf8.RuneCountInString(e.Word), 2, "short word %q", e.Word)
		if i > 0 {
			assert.LessOrEqual(t, e.Count, got[i-1].Count, "not sorted at %d", i)
		}
	}
	assert.Equal(t, "cloud", got[0].Word)
	assert.Equal(t, 3, got[0].Count)
}

func TestWordCloudLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, "w%03d ", i)
	}
	got := WordCloud(b.String())
	require.Len(t, got, MaxWordCloud)
	assert.Equal(t, "w000", got[0].Word)
	assert.Equal(t, "w049", got[MaxWordCloud-1].Word)
}

func TestWordCloudEmpty(t *testing.T) {
	assert.Empty(t, WordCloud(""))
	assert.Empty(t, WordCloud("the and to of a in"))
}
