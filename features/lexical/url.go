package lexical

import (
	"net/url"
	"strings"

	"scamurl/features/lists"
)

// ParsedURL is the best-effort decomposition of the input string. A URL
// that cannot be decomposed is never rejected; HasHost=false is itself a
// signal consumed by the analyzer.
type ParsedURL struct {
	Raw      string
	Scheme   string
	Host     string
	Domain   string
	Path     string
	RawQuery string
	HasHost  bool
}

// Parse decomposes a raw URL string. Schemeless inputs such as
// "example.com/login" are retried with an implied authority, mirroring how
// people paste links.
func Parse(raw string) ParsedURL {
	p := ParsedURL{Raw: raw}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return p
	}

	u, err := url.Parse(trimmed)
	if err != nil || u == nil || u.Hostname() == "" {
		if !strings.Contains(trimmed, "://") && !strings.HasPrefix(trimmed, "//") {
			u, err = url.Parse("//" + trimmed)
		}
	}
	if err != nil || u == nil || u.Hostname() == "" {
		return p
	}

	p.Scheme = strings.ToLower(u.Scheme)
	p.Host = strings.ToLower(u.Hostname())
	p.Domain = lists.NormalizeDomain(p.Host)
	p.Path = u.Path
	p.RawQuery = u.RawQuery
	p.HasHost = p.Domain != ""

	return p
}

// RegisteredDomain reduces a domain to its final two labels, the part a
// typosquatter actually imitates ("accounts.paypa1.com" -> "paypa1.com").
func RegisteredDomain(domain string) string {
	labels := strings.Split(domain, ".")
	if len(labels) <= 2 {
		return domain
	}
	return strings.Join(labels[len(labels)-2:], ".")
}
