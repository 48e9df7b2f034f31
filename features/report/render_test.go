package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"scamurl/features/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	rep := New("http://phish.example/login", "phish.example", 75, scoring.VerdictWarning, []scoring.Feature{
		{Code: scoring.CodeKeyword, Description: "URL contains a suspicious keyword (login)", Weight: 15},
	}, nil)

	var buf bytes.Buffer
	Render(&buf, rep)

	out := buf.String()
	assert.Contains(t, out, "Risk score: 75 / 100")
	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "[WARNING]")
}

func TestRenderTextNoFindings(t *testing.T) {
	rep := New("https://fine.example/", "fine.example", 0, scoring.VerdictSafe, nil, nil)

	var buf bytes.Buffer
	Render(&buf, rep)

	assert.Contains(t, buf.String(), "No suspicious traits found.")
	assert.Contains(t, buf.String(), "[SAFE]")
}

func TestRenderJSON(t *testing.T) {
	rep := New("http://phish.example/", "phish.example", 40, scoring.VerdictCaution, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, rep))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.ID, decoded.ID)
	assert.Equal(t, 40, decoded.Score)
	assert.Equal(t, scoring.VerdictCaution, decoded.Verdict)
	assert.NotNil(t, decoded.Findings)
}
