// Package model defines shared data structures.
package model

import "time"

// BasicStats holds lexical counts and timing estimates for a text.
type BasicStats struct {
	Characters          int     `json:"characters" yaml:"characters"`
	CharactersNoSpaces  int     `json:"charactersNoSpaces" yaml:"charactersNoSpaces"`
	Words               int     `json:"words" yaml:"words"`
	Sentences           int     `json:"sentences" yaml:"sentences"`
	Paragraphs          int     `json:"paragraphs" yaml:"paragraphs"`
	ReadingTimeMinutes  float64 `json:"readingTimeMinutes" yaml:"readingTimeMinutes"`
	SpeakingTimeMinutes float64 `json:"speakingTimeMinutes" yaml:"speakingTimeMinutes"`
}

// AvgWordLength returns non-space characters per word, or 0 without words.
func (s BasicStats) AvgWordLength() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.CharactersNoSpaces) / float64(s.Words)
}

// AvgSentenceLength returns words per sentence, or 0 without sentences.
func (s BasicStats) AvgSentenceLength() float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.Words) / float64(s.Sentences)
}

// CharFrequency is one entry of the character frequency ranking.
type CharFrequency struct {
	Char  string `json:"char" yaml:"char"`
	Count int    `json:"count" yaml:"count"`
}

// WordCount is one entry of the word cloud ranking.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Sentence is a scored sentence inside a paragraph.
type Sentence struct {
	Index      int     `json:"index" yaml:"index"`
	Text       string  `json:"text" yaml:"text"`
	WordCount  int     `json:"wordCount" yaml:"wordCount"`
	Complexity float64 `json:"complexity" yaml:"complexity"`
}

// Paragraph groups the sentences of one paragraph in order.
type Paragraph struct {
	Index     int        `json:"index" yaml:"index"`
	Sentences []Sentence `json:"sentences" yaml:"sentences"`
}

// SentenceCues are presentation hints derived from a sentence's text.
type SentenceCues struct {
	LongWord         bool `json:"longWord" yaml:"longWord"`
	PassiveVoice     bool `json:"passiveVoice" yaml:"passiveVoice"`
	ComplexStructure bool `json:"complexStructure" yaml:"complexStructure"`
}

// HeatmapInsights aggregates structure metrics across all sentences.
type HeatmapInsights struct {
	AverageComplexity    int `json:"averageComplexity" yaml:"averageComplexity"`
	LengthVariation      int `json:"lengthVariation" yaml:"lengthVariation"`
	LongestSentence      int `json:"longestSentence" yaml:"longestSentence"`
	ShortestSentence     int `json:"shortestSentence" yaml:"shortestSentence"`
	MostComplexParagraph int `json:"mostComplexParagraph" yaml:"mostComplexParagraph"`
}

// Tone classifies the register of a text from its readability score.
type Tone string

// Tone values.
const (
	ToneConversational Tone = "Conversational"
	ToneNeutral        Tone = "Neutral"
	ToneFormal         Tone = "Formal"
	ToneNA             Tone = "N/A"
)

// Sentiment classifies positive and negative word balance.
type Sentiment string

// Sentiment values.
const (
	SentimentVeryPositive     Sentiment = "Very Positive"
	SentimentSomewhatPositive Sentiment = "Somewhat Positive"
	SentimentNeutral          Sentiment = "Neutral"
	SentimentSomewhatNegative Sentiment = "Somewhat Negative"
	SentimentVeryNegative     Sentiment = "Very Negative"
	SentimentNA               Sentiment = "N/A"
)

// Readability is the heuristic readability, tone and sentiment assessment.
type Readability struct {
	Score       float64   `json:"readabilityScore" yaml:"readabilityScore"`
	Tone        Tone      `json:"tone" yaml:"tone"`
	Sentiment   Sentiment `json:"sentiment" yaml:"sentiment"`
	Suggestions []string  `json:"suggestions" yaml:"suggestions"`
}

// RoundedScore returns the score rounded to a whole number for display.
func (r Readability) RoundedScore() int {
	return int(r.Score + 0.5)
}

// Report bundles every analysis of a single text.
type Report struct {
	Stats         BasicStats       `json:"stats" yaml:"stats"`
	CharFrequency []CharFrequency  `json:"charFrequency" yaml:"charFrequency"`
	WordCloud     []WordCount      `json:"wordCloud" yaml:"wordCloud"`
	Heatmap       []Paragraph      `json:"heatmap" yaml:"heatmap"`
	Insights      *HeatmapInsights `json:"insights,omitempty" yaml:"insights,omitempty"`
	Readability   Readability      `json:"readability" yaml:"readability"`
}

// Config defines host display and orchestration settings.
type Config struct {
	ReadabilityDelay time.Duration `validate:"gte=0"`
	CloudLimit       int           `validate:"gte=1,lte=50"`
	CharLimit        int           `validate:"gte=1,lte=15"`
	Workers          int           `validate:"gte=0"`
	Format           string        `validate:"oneof=text json yaml"`
}

// Draft is a persisted piece of raw input text.
type Draft struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
