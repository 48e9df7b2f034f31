package report

import (
	"time"

	"scamurl/features/content"
	"scamurl/features/scoring"

	"github.com/rs/xid"
)

// Report is the immutable outcome of one scan: produced once, rendered,
// never mutated. Findings keep the order in which the checks triggered.
type Report struct {
	ID        string            `json:"id"`
	URL       string            `json:"url"`
	Domain    string            `json:"domain,omitempty"`
	Score     int               `json:"score"`
	Verdict   scoring.Verdict   `json:"verdict"`
	Findings  []scoring.Feature `json:"findings"`
	Page      *content.PageInfo `json:"page,omitempty"`
	ScannedAt time.Time         `json:"scanned_at"`
}

// New assembles a report for a finished scan.
func New(url, domain string, score int, verdict scoring.Verdict, findings []scoring.Feature, page *content.PageInfo) *Report {
	if findings == nil {
		findings = []scoring.Feature{}
	}

	return &Report{
		ID:        xid.New().String(),
		URL:       url,
		Domain:    domain,
		Score:     score,
		Verdict:   verdict,
		Findings:  findings,
		Page:      page,
		ScannedAt: time.Now().UTC(),
	}
}
