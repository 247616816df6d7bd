package crawl

import (
	"regexp"

	"github.com/awalczyk/linkrot"
)

// Built-in skip patterns. These schemes never denote fetchable resources,
// so they are always skipped in addition to any user-supplied patterns.
var builtinSkips = []string{
	`^mailto:`,
	`^irc:`,
	`^data:`,
}

// SkipList holds the compiled skip patterns for one run. Any match marks a
// link SKIPPED and short-circuits fetching. Patterns are independent;
// order does not matter.
type SkipList struct {
	patterns []*regexp.Regexp
}

// NewSkipList compiles the built-in patterns plus the given user patterns.
// An invalid user pattern fails the whole list with EINVALID.
func NewSkipList(patterns []string) (*SkipList, error) {
	s := &SkipList{}
	for _, p := range builtinSkips {
		s.patterns = append(s.patterns, regexp.MustCompile(p))
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, linkrot.Errorf(linkrot.EINVALID, "invalid skip pattern %q: %v", p, err)
		}
		s.patterns = append(s.patterns, re)
	}
	return s, nil
}

// Match returns true if any pattern matches the URL.
func (s *SkipList) Match(url string) bool {
	for _, re := range s.patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
