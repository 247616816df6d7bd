package linkrot

// LinkState classifies the outcome of checking a single link.
type LinkState string

// Link states reported for every visited or attempted URL.
const (
	StateOK      LinkState = "OK"
	StateBroken  LinkState = "BROKEN"
	StateSkipped LinkState = "SKIPPED"
)

// LinkResult records the outcome of checking one URL. Exactly one result is
// emitted per distinct URL, regardless of how many pages link to it.
type LinkResult struct {
	// URL is the normalized absolute URL that was checked.
	URL string `json:"url"`

	// Status is the HTTP status code of the response, or 0 when the
	// request failed at the transport level (DNS, refused, timeout).
	Status int `json:"status"`

	// State classifies the outcome.
	State LinkState `json:"state"`

	// Parent is the URL of the page the link was discovered on.
	// Empty for the crawl root and for sitemap seeds.
	Parent string `json:"parent,omitempty"`
}

// Report holds the outcome of a full crawl. Results appear in completion
// order, not discovery order.
type Report struct {
	Results []LinkResult `json:"results"`
}

// Passed reports whether the crawl found no broken links.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if res.State == StateBroken {
			return false
		}
	}
	return true
}

// Count returns the number of results in the given state.
func (r *Report) Count(state LinkState) int {
	var n int
	for _, res := range r.Results {
		if res.State == state {
			n++
		}
	}
	return n
}
