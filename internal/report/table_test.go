package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Char", "Count", "Share"}
	rows := [][]string{
		{"e", "12", "9.84%"},
		{"中", "3", "2.46%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	assert.Equal(t, []string{
		"Char Count Share",
		"e       12 9.84%",
		"中       3 2.46%",
	}, formatTable(headers, rows, rightAlign))
}

func TestFormatTableLastColumnUnpadded(t *testing.T) {
	lines := formatTable(nil, [][]string{{"word", "long text"}, {"a", "b"}}, nil)
	require.Len(t, lines, 2)
	assert.Equal(t, "a    b", lines[1])
}

func TestFormatTableEmpty(t *testing.T) {
	assert.Nil(t, formatTable(nil, nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.LessOrEqual(t, displayWidth(truncate("a rather long sentence", 8)), 8)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []string{"ID", "Words"}, [][]string{{"a1", "7"}, {"b2", "120"}}, map[int]bool{1: true}))
	assert.Equal(t, "ID Words\na1     7\nb2   120\n", buf.String())
}
