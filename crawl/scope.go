package crawl

import (
	"net/url"
	"strings"
)

// ShouldRecurse decides whether a discovered link is in scope for
// expansion. It requires recursion to be enabled, the candidate's string
// form to share the crawl root's string form as a prefix, and the hosts to
// match exactly. The host check guards against textual prefix collisions
// across different hosts; the prefix check deliberately keeps recursion
// within the root's path subtree even on the same host.
//
// Off-scope candidates are still probed for their status, just never
// expanded. A candidate that failed URL parsing is never recursable.
func ShouldRecurse(candidate, root *url.URL, recurse bool) bool {
	if !recurse || candidate == nil || root == nil {
		return false
	}
	if !strings.HasPrefix(candidate.String(), root.String()) {
		return false
	}
	return candidate.Host == root.Host
}
