package scoring

import (
	"scamurl/internal/config"
)

// Feature codes shared by every check that can contribute to a score.
const (
	CodeBlacklisted   = "KNOWN_PHISHING"
	CodeWhitelisted   = "KNOWN_SAFE"
	CodeUnparsableURL = "UNPARSABLE_URL"
	CodeTyposquat     = "TYPOSQUATTING"
	CodeIPHost        = "IP_AS_DOMAIN"
	CodePasswordField = "PASSWORD_FIELD"
	CodeNoHTTPS       = "NO_HTTPS"
	CodeSuspiciousTLD = "SUSPICIOUS_TLD"
	CodeAtSymbol      = "AT_SYMBOL"
	CodeKeyword       = "KEYWORD"
	CodeLongURL       = "LONG_URL"
)

// Feature is one triggered observation: an independent (predicate, weight)
// pair. Features never depend on each other's presence or weight.
type Feature struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// Verdict is the classification derived from a score.
type Verdict string

const (
	VerdictSafe    Verdict = "safe"
	VerdictCaution Verdict = "caution"
	VerdictWarning Verdict = "warning"
)

func (v Verdict) String() string {
	return string(v)
}

// MaxScore is the upper clamp of every computed score.
const MaxScore = 100

// Scorer aggregates triggered features into a bounded score and maps it to
// a verdict. All weights and thresholds come from configuration.
type Scorer struct {
	cfg config.ScoringConfig
}

func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Config() config.ScoringConfig {
	return s.cfg
}

// Score sums the weights of all triggered features and clamps the result
// to [0, MaxScore].
func (s *Scorer) Score(findings []Feature) int {
	total := 0
	for _, f := range findings {
		total += f.Weight
	}

	if total > MaxScore {
		return MaxScore
	}
	if total < 0 {
		return 0
	}
	return total
}

// Classify maps a score to a verdict via the configured thresholds.
func (s *Scorer) Classify(score int) Verdict {
	switch {
	case score >= s.cfg.WarningThreshold:
		return VerdictWarning
	case score >= s.cfg.CautionThreshold:
		return VerdictCaution
	default:
		return VerdictSafe
	}
}
