package analysis

import "github.com/verte-zerg/textlens/internal/model"

const (
	readingWPM  = 250.0
	speakingWPM = 150.0
)

// BasicStats computes counts and reading/speaking time estimates.
func BasicStats(text string) model.BasicStats {
	return basicStatsFrom(Tokenize(text))
}

func basicStatsFrom(tok Tokens) model.BasicStats {
	words := len(tok.Words)
	return model.BasicStats{
		Characters:          tok.Characters,
		CharactersNoSpaces:  tok.CharactersNoSpaces,
		Words:               words,
		Sentences:           len(tok.Sentences),
		Paragraphs:          len(tok.Paragraphs),
		ReadingTimeMinutes:  float64(words) / readingWPM,
		SpeakingTimeMinutes: float64(words) / speakingWPM,
	}
}
