package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestRenderCSV(t *testing.T) {
	out, err := Render(FormatCSV, Dataset{
		Headers: []string{"id", "name"},
		Rows:    [][]string{{"subj_1_abcde", "Math"}, {"subj_2_fghij"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "id,name\nsubj_1_abcde,Math\nsubj_2_fghij,\n", string(out))
}

func TestRenderPDF(t *testing.T) {
	out, err := Render(FormatPDF, Dataset{Title: "Subjects", Headers: []string{"id", "name"}, Rows: [][]string{{"subj_1_abcde", "Math"}}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderRequiresHeaders(t *testing.T) {
	_, err := Render(FormatCSV, Dataset{})
	assert.Error(t, err)
}
