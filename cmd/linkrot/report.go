package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/awalczyk/linkrot"
)

// renderResult prints one link result line as it arrives.
func renderResult(w io.Writer, r linkrot.LinkResult) {
	switch r.State {
	case linkrot.StateSkipped:
		fmt.Fprintf(w, "[SKP] %s\n", r.URL)
	default:
		fmt.Fprintf(w, "[%d] %s\n", r.Status, r.URL)
	}
}

// renderSummary prints the pass/fail summary after the crawl, listing
// every broken link with the page it was found on.
func renderSummary(w io.Writer, report *linkrot.Report) {
	fmt.Fprintf(w, "\n%d links checked: %d ok, %d broken, %d skipped\n",
		len(report.Results),
		report.Count(linkrot.StateOK),
		report.Count(linkrot.StateBroken),
		report.Count(linkrot.StateSkipped),
	)

	for _, r := range report.Results {
		if r.State != linkrot.StateBroken {
			continue
		}
		if r.Parent != "" {
			fmt.Fprintf(w, "  [%d] %s (found on %s)\n", r.Status, r.URL, r.Parent)
		} else {
			fmt.Fprintf(w, "  [%d] %s\n", r.Status, r.URL)
		}
	}
}

// jsonReport is the machine-readable report shape for CI integration.
type jsonReport struct {
	Summary jsonSummary          `json:"summary"`
	Results []linkrot.LinkResult `json:"results"`
}

type jsonSummary struct {
	Total   int  `json:"total"`
	OK      int  `json:"ok"`
	Broken  int  `json:"broken"`
	Skipped int  `json:"skipped"`
	Passed  bool `json:"passed"`
}

// renderJSON writes the full report as a single JSON document.
func renderJSON(w io.Writer, report *linkrot.Report) error {
	out := jsonReport{
		Summary: jsonSummary{
			Total:   len(report.Results),
			OK:      report.Count(linkrot.StateOK),
			Broken:  report.Count(linkrot.StateBroken),
			Skipped: report.Count(linkrot.StateSkipped),
			Passed:  report.Passed(),
		},
		Results: report.Results,
	}
	if out.Results == nil {
		out.Results = []linkrot.LinkResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
