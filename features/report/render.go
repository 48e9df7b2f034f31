package report

import (
	"encoding/json"
	"fmt"
	"io"

	"scamurl/features/scoring"

	"github.com/fatih/color"
)

// Render writes the human-readable form of a report. Pure formatting, no
// logic beyond picking the verdict banner.
func Render(w io.Writer, r *Report) {
	fmt.Fprintf(w, "--- Scan result for %s ---\n", r.URL)
	fmt.Fprintf(w, "Risk score: %d / %d\n", r.Score, scoring.MaxScore)

	if len(r.Findings) == 0 {
		fmt.Fprintln(w, "No suspicious traits found.")
	} else {
		fmt.Fprintln(w, "Suspicious traits:")
		for _, f := range r.Findings {
			fmt.Fprintf(w, " - [%s] %s (+%d)\n", f.Code, f.Description, f.Weight)
		}
	}

	fmt.Fprintln(w)
	switch r.Verdict {
	case scoring.VerdictWarning:
		color.New(color.FgRed, color.Bold).Fprintln(w, "[WARNING] Highly likely a phishing site. Do not enter any information.")
	case scoring.VerdictCaution:
		color.New(color.FgYellow, color.Bold).Fprintln(w, "[CAUTION] Medium risk. Proceed carefully.")
	default:
		color.New(color.FgGreen).Fprintln(w, "[SAFE] Low risk, but stay alert.")
	}
}

// RenderJSON writes the machine-readable form of a report.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
