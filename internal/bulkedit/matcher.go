// Package bulkedit implements bulk operations over a test plan: matching
// samplers by URI text or header rows by name, and applying delete, disable
// or enable to everything that matched.
package bulkedit

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchOptions control how a pattern is interpreted.
type MatchOptions struct {
	// Regex treats the pattern as a regular expression instead of a
	// substring.
	Regex bool
	// CaseSensitive disables the default case folding.
	CaseSensitive bool
	// Invert selects the candidates that do NOT match.
	Invert bool
}

// Matcher decides whether a candidate string matches a pattern. The regex
// form is compiled once, at construction.
type Matcher struct {
	pattern string
	opts    MatchOptions
	re      *regexp.Regexp
}

// NewMatcher validates the pattern and compiles it when in regex mode.
func NewMatcher(pattern string, opts MatchOptions) (*Matcher, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	m := &Matcher{pattern: pattern, opts: opts}
	if opts.Regex {
		expr := pattern
		if !opts.CaseSensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		m.re = re
	}
	return m, nil
}

// Pattern returns the trimmed pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Matches reports whether the candidate matches. A regex matches when it is
// found anywhere in the candidate; the substring form checks containment.
// An empty candidate never matches, before inversion.
func (m *Matcher) Matches(text string) bool {
	matched := m.matches(text)
	if m.opts.Invert {
		matched = !matched
	}
	return matched
}

func (m *Matcher) matches(text string) bool {
	if text == "" {
		return false
	}

	if m.re != nil {
		return m.re.MatchString(text)
	}

	if m.opts.CaseSensitive {
		return strings.Contains(text, m.pattern)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(m.pattern))
}
