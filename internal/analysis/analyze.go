package analysis

import "github.com/verte-zerg/textlens/internal/model"

// Analyze runs every analyzer over text, tokenizing once.
func Analyze(text string) model.Report {
	tok := Tokenize(text)
	heatmap := heatmapFrom(tok)

	rep := model.Report{
		Stats:         basicStatsFrom(tok),
		CharFrequency: CharacterFrequency(text),
		WordCloud:     WordCloud(text),
		Heatmap:       heatmap,
	}
	if ins, ok := Insights(heatmap); ok {
		rep.Insights = &ins
	}
	if TooShort(text) {
		rep.Readability = Insufficient()
	} else {
		rep.Readability = readabilityFrom(text, tok)
	}
	return rep
}
