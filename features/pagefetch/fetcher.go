package pagefetch

import (
	"context"
	"fmt"
	"net/http"

	"scamurl/internal/config"

	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of the single page fetch of a scan. Unreachable
// pages are a sentinel value, never an error: a dead or blocked page must
// not abort the assessment.
type Result struct {
	Available  bool
	StatusCode int
	Body       []byte
}

// Unavailable is the sentinel result for any failed fetch.
func Unavailable() Result {
	return Result{Available: false}
}

// Fetcher performs one bounded HTTP GET per scan through a colly
// collector: configured User-Agent, request timeout, body size cap and a
// redirect limit.
type Fetcher struct {
	cfg config.FetcherConfig
}

func NewFetcher(cfg config.FetcherConfig) *Fetcher {
	return &Fetcher{cfg: cfg}
}

// Fetch issues the GET and returns the body on any 2xx answer (redirects
// are followed first). Timeouts, DNS failures, refused connections, TLS
// errors and non-success statuses all collapse into Unavailable.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Result {
	if err := ctx.Err(); err != nil {
		log.Debug().Err(err).Str("url", rawURL).Msg("Fetch skipped, context done")
		return Unavailable()
	}

	result := Unavailable()

	c := colly.NewCollector(
		colly.MaxBodySize(f.cfg.MaxSize),
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
		colly.UserAgent(f.cfg.UserAgent),
	)
	c.SetRequestTimeout(f.cfg.TimeOut)
	c.SetRedirectHandler(func(req *http.Request, via []*http.Request) error {
		if len(via) >= f.cfg.MaxRedirects {
			return fmt.Errorf("stopped after %d redirects", f.cfg.MaxRedirects)
		}
		return nil
	})

	c.OnResponse(func(r *colly.Response) {
		result = Result{
			Available:  true,
			StatusCode: r.StatusCode,
			Body:       r.Body,
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Debug().
			Err(err).
			Int("status", r.StatusCode).
			Str("url", rawURL).
			Msg("Page fetch failed")
	})

	if err := c.Visit(rawURL); err != nil {
		log.Debug().Err(err).Str("url", rawURL).Msg("Page fetch not attempted")
		return Unavailable()
	}

	return result
}
