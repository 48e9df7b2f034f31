package lists

import (
	"errors"
	"strings"
	"sync/atomic"

	"scamurl/internal/config"

	"github.com/rs/zerolog/log"
)

var (
	ErrListSetNotInitialized = errors.New("list set not initialized")

	active atomic.Pointer[ListSet]
)

// ListSet is the immutable reference data a scan is matched against:
// trusted domains, known phishing domains and the typo-similarity set.
// A rebuilt ListSet replaces the active one atomically; readers never see
// a partially built set.
type ListSet struct {
	whitelist map[string]struct{}
	blacklist map[string]struct{}
	known     []string

	prefilter *blacklistPrefilter
}

// NewListSet builds a ListSet from configuration.
func NewListSet(cfg config.ListsConfig) *ListSet {
	ls := &ListSet{
		whitelist: make(map[string]struct{}, len(cfg.Whitelist)),
		blacklist: make(map[string]struct{}, len(cfg.Blacklist)),
		known:     make([]string, 0, len(cfg.KnownDomains)),
	}

	for _, d := range cfg.Whitelist {
		ls.whitelist[NormalizeDomain(d)] = struct{}{}
	}
	for _, d := range cfg.KnownDomains {
		ls.known = append(ls.known, NormalizeDomain(d))
	}

	blacklisted := make([]string, 0, len(cfg.Blacklist))
	for _, d := range cfg.Blacklist {
		nd := NormalizeDomain(d)
		ls.blacklist[nd] = struct{}{}
		blacklisted = append(blacklisted, nd)
	}
	ls.prefilter = newBlacklistPrefilter(blacklisted)

	log.Debug().
		Int("whitelist", len(ls.whitelist)).
		Int("blacklist", len(ls.blacklist)).
		Int("known_domains", len(ls.known)).
		Msg("List set built")

	return ls
}

// Initialize builds the list set from configuration and makes it the
// active one.
func Initialize(cfg config.ListsConfig) *ListSet {
	ls := NewListSet(cfg)
	active.Store(ls)
	return ls
}

// GetListSet returns the active list set.
func GetListSet() (*ListSet, error) {
	ls := active.Load()
	if ls == nil {
		return nil, ErrListSetNotInitialized
	}
	return ls, nil
}

// Swap replaces the active list set. Used by the scheduled reloader.
func Swap(ls *ListSet) {
	active.Store(ls)
}

// NormalizeDomain lower-cases a host and strips a leading "www." so list
// lookups and similarity comparisons share one unit of comparison.
func NormalizeDomain(host string) string {
	d := strings.ToLower(strings.TrimSpace(host))
	d = strings.TrimSuffix(d, ".")
	d = strings.TrimPrefix(d, "www.")
	return d
}

// IsWhitelisted reports whether the domain, or any parent label suffix of
// it, is an exact member of the whitelist. The matched entry is returned.
func (l *ListSet) IsWhitelisted(domain string) (string, bool) {
	d := NormalizeDomain(domain)
	if d == "" {
		return "", false
	}

	labels := strings.Split(d, ".")
	for i := range labels {
		candidate := strings.Join(labels[i:], ".")
		if _, ok := l.whitelist[candidate]; ok {
			return candidate, true
		}
	}

	return "", false
}

// IsBlacklisted reports whether the domain is an exact member of the
// blacklist. The bloom prefilter answers the common negative case without
// touching the set.
func (l *ListSet) IsBlacklisted(domain string) bool {
	d := NormalizeDomain(domain)
	if d == "" {
		return false
	}

	if !l.prefilter.MayContain(d) {
		return false
	}

	_, ok := l.blacklist[d]
	return ok
}

// KnownDomains returns the typo-similarity reference set.
func (l *ListSet) KnownDomains() []string {
	return l.known
}
