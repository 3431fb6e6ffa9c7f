package matcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single regex evaluation against one line.
const MatchTimeout = 5 * time.Second

// Matcher decides whether a single log line matches the search term.
type Matcher interface {
	Match(line string) (bool, error)
}

// New builds the matcher for one search. In regex mode the term is compiled
// once up front, so a bad pattern fails before any file is read.
func New(term string, useRegex, foldCase bool) (Matcher, error) {
	if useRegex {
		m, err := NewRegexMatcher(term)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return NewLiteralMatcher(term, foldCase), nil
}

// ---------------------------------------------------------------------------
// Regex Matcher
// ---------------------------------------------------------------------------

// RegexMatcher reports lines where the pattern is found anywhere.
// Matching is case-sensitive unless the pattern itself says otherwise (?i).
// Lookarounds and backreferences are supported, and `$` also matches just
// before a trailing newline.
type RegexMatcher struct {
	re *regexp2.Regexp
}

func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	re.MatchTimeout = MatchTimeout
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) Match(line string) (bool, error) {
	return m.re.MatchString(line)
}

// ---------------------------------------------------------------------------
// Literal Matcher
// ---------------------------------------------------------------------------

// LiteralMatcher looks for the term inside the lowercased line. The term
// itself is used as typed, so a term with uppercase letters never matches
// unless FoldCase is set.
type LiteralMatcher struct {
	term string
}

func NewLiteralMatcher(term string, foldCase bool) *LiteralMatcher {
	if foldCase {
		term = strings.ToLower(term)
	}
	return &LiteralMatcher{term: term}
}

func (m *LiteralMatcher) Match(line string) (bool, error) {
	return strings.Contains(strings.ToLower(line), m.term), nil
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

// PatternError reports a search term that is not a valid regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
