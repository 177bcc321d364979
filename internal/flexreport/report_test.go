package flexreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument_ScoresAndAligns(t *testing.T) {
	doc := BuildDocument("sample", "Hello World", "Hello Wrld")
	assert.InDelta(t, 1.0-1.0/11.0, doc.Score, 1e-9)
	require.NotEmpty(t, doc.Lines)
}

func TestBuildReport_AveragesDocumentScores(t *testing.T) {
	docs := []DocumentResult{{Name: "a", Score: 1.0}, {Name: "b", Score: 0.5}}
	report := BuildReport(docs)
	assert.InDelta(t, 0.75, report.OverallScore, 1e-9)
}

func TestBuildReport_EmptyIsZero(t *testing.T) {
	report := BuildReport(nil)
	assert.Equal(t, 0.0, report.OverallScore)
}

func TestRenderJSON_ValidatesAgainstSchema(t *testing.T) {
	report := BuildReport([]DocumentResult{BuildDocument("doc1", "a\nb", "a\nb")})
	data, err := RenderJSON(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "overall_score")
}

func TestRenderTable_IncludesScoreAndDocumentNames(t *testing.T) {
	report := BuildReport([]DocumentResult{BuildDocument("doc1", "a\nb", "a\nb")})
	out := RenderTable(report)
	assert.Contains(t, out, "doc1")
	assert.Contains(t, out, "flexible character accuracy")
}
