package scanner

import (
	"context"
	"errors"
	"strings"
	"time"

	"scamurl/features/content"
	"scamurl/features/lexical"
	"scamurl/features/lists"
	"scamurl/features/pagefetch"
	"scamurl/features/report"
	"scamurl/features/scoring"
	"scamurl/internal/collector"
	"scamurl/internal/config"

	"github.com/rs/zerolog/log"
)

// Scanner errors
var (
	ErrEmptyURL = errors.New("no URL provided")
)

// Scanner evaluates one URL to completion: list lookup, lexical analysis,
// one bounded page fetch, scoring, report. Evaluations are independent and
// share no mutable state.
type Scanner struct {
	analyzer *lexical.Analyzer
	scorer   *scoring.Scorer
	fetcher  *pagefetch.Fetcher
}

// Options tweak a single scan.
type Options struct {
	// SkipFetch evaluates lexical and list features only, without the
	// outbound GET.
	SkipFetch bool
}

// NewScanner wires the scanner from the active configuration and makes
// sure the list set exists.
func NewScanner() (*Scanner, error) {
	cfg := config.GetConfig()

	if _, err := lists.GetListSet(); err != nil {
		lists.Initialize(cfg.Lists)
	}

	return &Scanner{
		analyzer: lexical.NewAnalyzer(cfg.Scoring, cfg.Lists),
		scorer:   scoring.NewScorer(cfg.Scoring),
		fetcher:  pagefetch.NewFetcher(cfg.Fetcher),
	}, nil
}

// Scan produces a report for one URL. The only failure is a missing URL;
// everything else degrades into features or their absence.
func (s *Scanner) Scan(ctx context.Context, rawURL string, opts Options) (*report.Report, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	start := time.Now()
	mc, _ := collector.GetMetricsCollector()

	u := lexical.Parse(rawURL)
	ls, err := lists.GetListSet()
	if err != nil {
		return nil, err
	}

	if u.HasHost {
		if rep, ok := s.matchLists(u, ls); ok {
			s.finish(mc, rep, start)
			return rep, nil
		}
	}

	findings := s.analyzer.Analyze(u, ls.KnownDomains())

	var page *content.PageInfo
	if !opts.SkipFetch {
		res := s.fetcher.Fetch(ctx, rawURL)
		if !res.Available {
			mc.IncrementFetchFailures()
		}

		info := content.Inspect(res)
		page = &info
		if info.HasPasswordField {
			findings = append(findings, scoring.Feature{
				Code:        scoring.CodePasswordField,
				Description: "page contains a password input field",
				Weight:      s.scorer.Config().WeightPasswordField,
			})
		}
	}

	score := s.scorer.Score(findings)
	verdict := s.scorer.Classify(score)

	rep := report.New(rawURL, u.Domain, score, verdict, findings, page)
	s.finish(mc, rep, start)
	return rep, nil
}

// matchLists applies the whitelist/blacklist short-circuits. A hit decides
// the verdict on its own and skips every remaining check, including the
// network call.
func (s *Scanner) matchLists(u lexical.ParsedURL, ls *lists.ListSet) (*report.Report, bool) {
	if ls.IsBlacklisted(u.Domain) {
		findings := []scoring.Feature{{
			Code:        scoring.CodeBlacklisted,
			Description: "domain is on the known phishing blacklist",
			Weight:      s.scorer.Config().WeightBlacklisted,
		}}
		score := s.scorer.Score(findings)
		return report.New(u.Raw, u.Domain, score, s.scorer.Classify(score), findings, nil), true
	}

	if entry, ok := ls.IsWhitelisted(u.Domain); ok {
		findings := []scoring.Feature{{
			Code:        scoring.CodeWhitelisted,
			Description: "domain is on the trusted whitelist (" + entry + ")",
			Weight:      0,
		}}
		return report.New(u.Raw, u.Domain, 0, scoring.VerdictSafe, findings, nil), true
	}

	return nil, false
}

func (s *Scanner) finish(mc *collector.MetricsCollector, rep *report.Report, start time.Time) {
	mc.IncrementScans(rep.Verdict.String())
	for _, f := range rep.Findings {
		mc.IncrementFeatureHit(f.Code)
	}
	mc.ObserveScanDuration(time.Since(start))

	log.Debug().
		Str("url", rep.URL).
		Int("score", rep.Score).
		Str("verdict", rep.Verdict.String()).
		Int("findings", len(rep.Findings)).
		Dur("duration", time.Since(start)).
		Msg("Scan completed")
}
