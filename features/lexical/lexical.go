package lexical

import (
	"fmt"
	"net"
	"strings"

	"scamurl/features/scoring"
	"scamurl/internal/config"

	"github.com/xrash/smetrics"
)

// Analyzer computes the URL-string features of a scan. Every check is an
// independent (predicate, weight) pair; no check inspects another's
// outcome.
type Analyzer struct {
	scoring config.ScoringConfig
	lists   config.ListsConfig
}

func NewAnalyzer(scoringCfg config.ScoringConfig, listsCfg config.ListsConfig) *Analyzer {
	return &Analyzer{scoring: scoringCfg, lists: listsCfg}
}

// Analyze runs every lexical check against the parsed URL and returns the
// triggered features in a fixed order. Unparsable input degrades to a
// maximal-risk feature; the checks that only need the raw string still run.
func (a *Analyzer) Analyze(u ParsedURL, knownDomains []string) []scoring.Feature {
	var findings []scoring.Feature

	if !u.HasHost {
		findings = append(findings, scoring.Feature{
			Code:        scoring.CodeUnparsableURL,
			Description: "URL has no recoverable host structure",
			Weight:      a.scoring.WeightUnparsableURL,
		})
	} else {
		if ip := net.ParseIP(u.Host); ip != nil {
			findings = append(findings, scoring.Feature{
				Code:        scoring.CodeIPHost,
				Description: "host is an IP address instead of a domain name",
				Weight:      a.scoring.WeightIPHost,
			})
		}

		if u.Scheme != "https" {
			findings = append(findings, scoring.Feature{
				Code:        scoring.CodeNoHTTPS,
				Description: "connection is not protected by HTTPS",
				Weight:      a.scoring.WeightNoHTTPS,
			})
		}

		if tld, ok := a.suspiciousTLD(u.Domain); ok {
			findings = append(findings, scoring.Feature{
				Code:        scoring.CodeSuspiciousTLD,
				Description: fmt.Sprintf("suspicious top-level domain (%s)", tld),
				Weight:      a.scoring.WeightSuspiciousTLD,
			})
		}

		if imitated, ok := a.typosquat(u.Domain, knownDomains); ok {
			findings = append(findings, scoring.Feature{
				Code:        scoring.CodeTyposquat,
				Description: fmt.Sprintf("domain closely resembles a well-known site (%s)", imitated),
				Weight:      a.scoring.WeightTyposquat,
			})
		}
	}

	if kw, ok := a.suspiciousKeyword(u); ok {
		findings = append(findings, scoring.Feature{
			Code:        scoring.CodeKeyword,
			Description: fmt.Sprintf("URL contains a suspicious keyword (%s)", kw),
			Weight:      a.scoring.WeightKeyword,
		})
	}

	if len(u.Raw) > a.scoring.LongURLThreshold {
		findings = append(findings, scoring.Feature{
			Code:        scoring.CodeLongURL,
			Description: fmt.Sprintf("URL is unusually long (%d characters)", len(u.Raw)),
			Weight:      a.scoring.WeightLongURL,
		})
	}

	if strings.Contains(u.Raw, "@") {
		findings = append(findings, scoring.Feature{
			Code:        scoring.CodeAtSymbol,
			Description: "URL contains an '@' symbol that can mask the real host",
			Weight:      a.scoring.WeightAtSymbol,
		})
	}

	return findings
}

func (a *Analyzer) suspiciousTLD(domain string) (string, bool) {
	idx := strings.LastIndex(domain, ".")
	if idx < 0 {
		return "", false
	}

	tld := domain[idx:]
	for _, s := range a.lists.SuspiciousTLDs {
		if tld == s {
			return tld, true
		}
	}
	return "", false
}

// suspiciousKeyword matches the keyword set against host, path and query.
// The first match suffices; multiple keywords never accumulate weight.
func (a *Analyzer) suspiciousKeyword(u ParsedURL) (string, bool) {
	haystack := strings.ToLower(u.Host + u.Path + "?" + u.RawQuery)
	if !u.HasHost {
		haystack = strings.ToLower(u.Raw)
	}

	for _, kw := range a.lists.Keywords {
		if strings.Contains(haystack, kw) {
			return kw, true
		}
	}
	return "", false
}

// typosquat compares the domain against every known domain and triggers
// when the minimum edit distance is small but nonzero. Besides the
// registered domain itself, its second-level label and the hyphen tokens
// of that label are compared, so "paypa1-secure-login.xyz" is caught
// imitating "paypal.com". Exact members of the known set never trigger.
func (a *Analyzer) typosquat(domain string, knownDomains []string) (string, bool) {
	reg := RegisteredDomain(domain)
	if reg == "" {
		return "", false
	}

	for _, known := range knownDomains {
		if domain == known || reg == known {
			return "", false
		}
	}

	candidates := typoCandidates(reg)

	best := -1
	imitated := ""
	for _, known := range knownDomains {
		targets := []string{known}
		if base := baseLabel(known); base != known {
			targets = append(targets, base)
		}

		for _, cand := range candidates {
			for _, target := range targets {
				d := smetrics.WagnerFischer(cand, target, 1, 1, 1)
				if d < 1 {
					continue
				}
				if best < 0 || d < best {
					best = d
					imitated = known
				}
			}
		}
	}

	if best >= 1 && best <= a.scoring.TypoMaxDistance {
		return imitated, true
	}
	return "", false
}

// typoCandidates lists the comparable fragments of a registered domain.
// Tokens shorter than three characters are too noisy to compare.
func typoCandidates(reg string) []string {
	candidates := []string{reg}

	sld := baseLabel(reg)
	if sld != reg {
		candidates = append(candidates, sld)
	}

	for _, tok := range strings.Split(sld, "-") {
		if len(tok) >= 3 && tok != sld {
			candidates = append(candidates, tok)
		}
	}

	return candidates
}

func baseLabel(domain string) string {
	if i := strings.Index(domain, "."); i > 0 {
		return domain[:i]
	}
	return domain
}
