package lists

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/rs/zerolog/log"
)

const (
	minBloomCapacity  = 1000
	bloomFalsePosRate = 0.01
)

// blacklistPrefilter fronts the exact blacklist set with a bloom filter,
// so the overwhelmingly common "not blacklisted" answer costs a couple of
// hashes even when the configured list is a large feed dump.
type blacklistPrefilter struct {
	filter *bloom.BloomFilter
}

func newBlacklistPrefilter(domains []string) *blacklistPrefilter {
	capacity := len(domains)
	if capacity < minBloomCapacity {
		capacity = minBloomCapacity
	}

	bf := bloom.NewWithEstimates(uint(capacity), bloomFalsePosRate)
	for _, d := range domains {
		bf.Add([]byte(d))
	}

	log.Debug().
		Int("domains", len(domains)).
		Uint("bloom_capacity", bf.Cap()).
		Uint("hash_functions", bf.K()).
		Msg("Built blacklist bloom prefilter")

	return &blacklistPrefilter{filter: bf}
}

// MayContain reports whether the domain is possibly in the blacklist.
// A false answer is definitive; a true answer still needs the exact set.
func (p *blacklistPrefilter) MayContain(domain string) bool {
	return p.filter.Test([]byte(domain))
}
