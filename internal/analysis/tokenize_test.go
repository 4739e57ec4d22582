package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeEmpty(t *testing.T) {
	tok := Tokenize("")
	assert.Zero(t, tok.Characters)
	assert.Zero(t, tok.CharactersNoSpaces)
	assert.Empty(t, tok.Words)
	assert.Empty(t, tok.Sentences)
	assert.Empty(t, tok.Paragraphs)
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	tok := Tokenize("   \n\n  ")
	assert.Equal(t, 7, tok.Characters)
	assert.Zero(t, tok.CharactersNoSpaces)
	assert.Empty(t, tok.Words)
	assert.Empty(t, tok.Sentences)
	assert.Empty(t, tok.Paragraphs)
}

func TestTokenizeCounts(t *testing.T) {
	tok := Tokenize("Hello world. How are you?\n\nFine!")
	assert.Equal(t, 32, tok.Characters)
	assert.Equal(t, 26, tok.CharactersNoSpaces)
	assert.Equal(t, []string{"Hello", "world.", "How", "are", "you?", "Fine!"}, tok.Words)
	assert.Equal(t, []string{"Hello world", "How are you", "Fine"}, tok.Sentences)
	assert.Equal(t, []string{"Hello world. How are you?", "Fine!"}, tok.Paragraphs)
}

func TestTokenizeCountsRunes(t *testing.T) {
	tok := Tokenize("héllo wörld")
	assert.Equal(t, 11, tok.Characters)
	assert.Equal(t, 10, tok.CharactersNoSpaces)
}

func TestTokenizeParagraphBreakWithBlankLine(t *testing.T) {
	tok := Tokenize("first line\n  \t \nsecond line\nstill second")
	require.Len(t, tok.Paragraphs, 2)
	assert.Equal(t, "first line", tok.Paragraphs[0])
	assert.Equal(t, "second line\nstill second", tok.Paragraphs[1])
}

func TestTokenizeNoTerminalPunctuation(t *testing.T) {
	tok := Tokenize("no punctuation here")
	assert.Equal(t, []string{"no punctuation here"}, tok.Sentences)
	assert.Len(t, tok.Paragraphs, 1)
}

func TestTokenizePunctuationRuns(t *testing.T) {
	tok := Tokenize("Wait... what?! Really.")
	assert.Equal(t, []string{"Wait", "what", "Really"}, tok.Sentences)
}

func TestTokenizeKeepsTrailingWhitespaceFragments(t *testing.T) {
	tok := Tokenize("One. Two. ")
	assert.Equal(t, []string{"One", "Two", ""}, tok.Sentences)
	assert.Equal(t, []string{"One. Two."}, tok.Paragraphs)

	tok = Tokenize("Intro text.\n\n   ")
	assert.Equal(t, []string{"Intro text", ""}, tok.Sentences)
	assert.Equal(t, []string{"Intro text.", ""}, tok.Paragraphs)
}

func TestCharactersAtLeastNoSpaces(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"plain",
		"tabs\tand\nnewlines\r\n",
		" non-breaking em space",
		strings.Repeat("a b ", 50),
	}
	for _, in := range inputs {
		tok := Tokenize(in)
		assert.GreaterOrEqual(t, tok.Characters, tok.CharactersNoSpaces, "input %q", in)
		assert.GreaterOrEqual(t, tok.CharactersNoSpaces, 0, "input %q", in)
	}
}

func TestWordTokensLowercase(t *testing.T) {
	assert.Equal(t, []string{"don", "t", "stop_me", "42"}, wordTokens("Don't STOP_me, 42!"))
}
