package scanner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"scamurl/features/scoring"
	"scamurl/internal/config"
	"scamurl/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitializeLogger()
	config.InitConfig()

	os.Exit(m.Run())
}

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()

	s, err := NewScanner()
	require.NoError(t, err)
	return s
}

func findingCodes(codes []scoring.Feature) []string {
	out := make([]string, 0, len(codes))
	for _, f := range codes {
		out = append(out, f.Code)
	}
	return out
}

func TestScanEmptyURL(t *testing.T) {
	s := newTestScanner(t)

	_, err := s.Scan(context.Background(), "   ", Options{})
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestWhitelistShortCircuit(t *testing.T) {
	s := newTestScanner(t)

	// Path stuffed with otherwise-scoring traits must not matter.
	rep, err := s.Scan(context.Background(), "https://www.google.com/login?verify=1&secure=@", Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, rep.Score)
	assert.Equal(t, scoring.VerdictSafe, rep.Verdict)
	assert.Contains(t, findingCodes(rep.Findings), scoring.CodeWhitelisted)
	assert.Nil(t, rep.Page, "whitelist hits skip the network call")
}

func TestBlacklistShortCircuit(t *testing.T) {
	s := newTestScanner(t)

	rep, err := s.Scan(context.Background(), "https://mvdlstw.net/totally/benign/path", Options{})
	require.NoError(t, err)

	assert.Equal(t, scoring.MaxScore, rep.Score)
	assert.Equal(t, scoring.VerdictWarning, rep.Verdict)
	assert.Contains(t, findingCodes(rep.Findings), scoring.CodeBlacklisted)
	assert.Nil(t, rep.Page, "blacklist hits skip the network call")
}

func TestPhishingExample(t *testing.T) {
	s := newTestScanner(t)

	rep, err := s.Scan(context.Background(), "http://paypa1-secure-login.xyz/verify?user=abc", Options{SkipFetch: true})
	require.NoError(t, err)

	codes := findingCodes(rep.Findings)
	assert.Contains(t, codes, scoring.CodeSuspiciousTLD)
	assert.Contains(t, codes, scoring.CodeKeyword)
	assert.Contains(t, codes, scoring.CodeTyposquat)
	assert.GreaterOrEqual(t, rep.Score, 70)
	assert.Equal(t, scoring.VerdictWarning, rep.Verdict)
}

func TestPasswordFieldContributes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><form><input type="password" name="p"></form></body></html>`))
	}))
	defer srv.Close()

	s := newTestScanner(t)

	rep, err := s.Scan(context.Background(), srv.URL, Options{})
	require.NoError(t, err)

	require.NotNil(t, rep.Page)
	assert.True(t, rep.Page.Observed)
	assert.True(t, rep.Page.HasPasswordField)
	assert.Contains(t, findingCodes(rep.Findings), scoring.CodePasswordField)
}

func TestFetchFailureContributesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<input type="password">`))
	}))
	url := srv.URL
	srv.Close()

	s := newTestScanner(t)

	withFetch, err := s.Scan(context.Background(), url, Options{})
	require.NoError(t, err)

	lexicalOnly, err := s.Scan(context.Background(), url, Options{SkipFetch: true})
	require.NoError(t, err)

	assert.NotContains(t, findingCodes(withFetch.Findings), scoring.CodePasswordField)
	assert.Equal(t, lexicalOnly.Score, withFetch.Score, "an unreachable page must not change the score")
	require.NotNil(t, withFetch.Page)
	assert.False(t, withFetch.Page.Observed)
}

func TestScanIdempotent(t *testing.T) {
	s := newTestScanner(t)

	first, err := s.Scan(context.Background(), "http://paypa1-secure-login.xyz/verify?user=abc", Options{SkipFetch: true})
	require.NoError(t, err)

	second, err := s.Scan(context.Background(), "http://paypa1-secure-login.xyz/verify?user=abc", Options{SkipFetch: true})
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Verdict, second.Verdict)
	assert.Equal(t, first.Findings, second.Findings)
}

func TestUnparsableURLStillProducesReport(t *testing.T) {
	s := newTestScanner(t)

	rep, err := s.Scan(context.Background(), "%%%", Options{SkipFetch: true})
	require.NoError(t, err)

	assert.Contains(t, findingCodes(rep.Findings), scoring.CodeUnparsableURL)
	assert.GreaterOrEqual(t, rep.Score, 70)
	assert.Equal(t, scoring.VerdictWarning, rep.Verdict)
}
