package lexical

import (
	"strings"
	"testing"

	"scamurl/features/scoring"
	"scamurl/internal/config"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalyzer(t *testing.T) (*Analyzer, config.ListsConfig) {
	t.Helper()

	var scoringCfg config.ScoringConfig
	var listsCfg config.ListsConfig
	require.NoError(t, defaults.Set(&scoringCfg))
	require.NoError(t, defaults.Set(&listsCfg))

	return NewAnalyzer(scoringCfg, listsCfg), listsCfg
}

func hasFeature(findings []scoring.Feature, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

func TestParse(t *testing.T) {
	u := Parse("https://www.Example.com:8443/Login?next=home")
	assert.True(t, u.HasHost)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "www.example.com", u.Host)
	assert.Equal(t, "example.com", u.Domain, "domain should drop port and www prefix")
	assert.Equal(t, "/Login", u.Path)
	assert.Equal(t, "next=home", u.RawQuery)
}

func TestParseSchemeless(t *testing.T) {
	u := Parse("example.com/login")
	assert.True(t, u.HasHost, "pasted links without scheme should still resolve a host")
	assert.Equal(t, "example.com", u.Domain)
}

func TestParseGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "%%%", "http://"} {
		u := Parse(raw)
		assert.False(t, u.HasHost, "raw=%q", raw)
	}
}

func TestRegisteredDomain(t *testing.T) {
	assert.Equal(t, "paypal.com", RegisteredDomain("accounts.login.paypal.com"))
	assert.Equal(t, "example.com", RegisteredDomain("example.com"))
	assert.Equal(t, "localhost", RegisteredDomain("localhost"))
}

func TestSuspiciousTLD(t *testing.T) {
	a, _ := testAnalyzer(t)

	findings := a.Analyze(Parse("https://example.xyz/"), nil)
	assert.True(t, hasFeature(findings, scoring.CodeSuspiciousTLD))

	findings = a.Analyze(Parse("https://example.org/"), nil)
	assert.False(t, hasFeature(findings, scoring.CodeSuspiciousTLD))
}

func TestKeywordTriggersOnce(t *testing.T) {
	a, _ := testAnalyzer(t)

	findings := a.Analyze(Parse("https://example.org/login?verify=1&password=x"), nil)

	count := 0
	for _, f := range findings {
		if f.Code == scoring.CodeKeyword {
			count++
		}
	}
	assert.Equal(t, 1, count, "multiple keyword matches must not accumulate weight")
}

func TestLongURLBoundary(t *testing.T) {
	a, _ := testAnalyzer(t)

	base := "https://example.org/"
	atLimit := base + strings.Repeat("a", 75-len(base))
	overLimit := atLimit + "a"

	assert.False(t, hasFeature(a.Analyze(Parse(atLimit), nil), scoring.CodeLongURL))
	assert.True(t, hasFeature(a.Analyze(Parse(overLimit), nil), scoring.CodeLongURL))
}

func TestAtSymbol(t *testing.T) {
	a, _ := testAnalyzer(t)

	findings := a.Analyze(Parse("https://example.org@evil.example/"), nil)
	assert.True(t, hasFeature(findings, scoring.CodeAtSymbol))

	findings = a.Analyze(Parse("https://example.org/"), nil)
	assert.False(t, hasFeature(findings, scoring.CodeAtSymbol))
}

func TestIPHost(t *testing.T) {
	a, _ := testAnalyzer(t)

	findings := a.Analyze(Parse("http://192.168.0.1/index.html"), nil)
	assert.True(t, hasFeature(findings, scoring.CodeIPHost))

	findings = a.Analyze(Parse("http://example.org/"), nil)
	assert.False(t, hasFeature(findings, scoring.CodeIPHost))
}

func TestNoHTTPS(t *testing.T) {
	a, _ := testAnalyzer(t)

	assert.True(t, hasFeature(a.Analyze(Parse("http://example.org/"), nil), scoring.CodeNoHTTPS))
	assert.False(t, hasFeature(a.Analyze(Parse("https://example.org/"), nil), scoring.CodeNoHTTPS))
}

func TestTyposquat(t *testing.T) {
	a, cfg := testAnalyzer(t)
	known := cfg.KnownDomains

	findings := a.Analyze(Parse("https://gooogle.com/"), known)
	assert.True(t, hasFeature(findings, scoring.CodeTyposquat), "one character off a known domain must trigger")

	findings = a.Analyze(Parse("https://google.com/"), known)
	assert.False(t, hasFeature(findings, scoring.CodeTyposquat), "exact known domains never trigger")

	findings = a.Analyze(Parse("http://paypa1-secure-login.xyz/verify?user=abc"), known)
	assert.True(t, hasFeature(findings, scoring.CodeTyposquat), "hyphenated brand imitation must trigger")

	findings = a.Analyze(Parse("https://entirely-unrelated-site.org/"), known)
	assert.False(t, hasFeature(findings, scoring.CodeTyposquat))
}

func TestUnparsableURLIsMaximalRiskFeature(t *testing.T) {
	a, _ := testAnalyzer(t)

	findings := a.Analyze(Parse("%%%"), nil)
	assert.True(t, hasFeature(findings, scoring.CodeUnparsableURL))
}
