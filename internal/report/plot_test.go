package report

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PlotCurve(&buf, "Complexity", []float64{8, 76, 40, 100, 0}, 12, 4))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Complexity\n"), "title first: %q", out)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+4+1)
	assert.True(t, strings.HasPrefix(lines[1], "100%"+axisSeparator), "top axis label: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "  0%"+axisSeparator), "bottom axis label: %q", lines[4])
	for _, line := range lines[1:5] {
		plot := line[strings.Index(line, axisSeparator)+len(axisSeparator):]
		assert.Equal(t, 12, utf8.RuneCountInString(plot), "plot cells in %q", line)
	}
	assert.Contains(t, lines[5], "sentence 1..5")
	assert.NotContains(t, out, "\x1b[", "no color for non-terminal writer")
}

func TestPlotCurveEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PlotCurve(&buf, "Complexity", nil, 10, 4))
	assert.Zero(t, buf.Len())
}

func TestPlotCurveForcedColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	require.NoError(t, PlotCurveWithColor(&buf, "", []float64{10, 90}, 10, 3, true))
	assert.Contains(t, buf.String(), curveColor)
}

func TestPlotWidthFor(t *testing.T) {
	axisWidth := utf8.RuneCountInString(axisLabelTop) + utf8.RuneCountInString(axisSeparator)
	assert.Equal(t, 80-axisWidth, PlotWidthFor(80))
	assert.Equal(t, minPlotWidth, PlotWidthFor(0))
}

func TestResampleSeries(t *testing.T) {
	assert.Equal(t, []float64{5, 25}, resampleSeries([]float64{0, 10, 20, 30}, 2))

	up := resampleSeries([]float64{0, 100}, 3)
	require.Len(t, up, 3)
	assert.Equal(t, 50.0, up[1])

	assert.Equal(t, []float64{42, 42, 42, 42}, resampleSeries([]float64{42}, 4))
}
