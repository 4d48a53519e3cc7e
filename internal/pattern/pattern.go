// Package pattern wraps regular-expression compilation and matching behind
// a small capability surface with classified errors. The validation engine
// consumes patterns only through this package, so a malformed pattern in a
// schema surfaces as a typed error instead of a panic deep in a rule.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"regexp/syntax"
)

// ErrorKind classifies a pattern compilation failure.
type ErrorKind int

const (
	// KindSyntax indicates the pattern itself is malformed.
	KindSyntax ErrorKind = iota
	// KindTooLarge indicates the compiled program exceeded resource limits.
	KindTooLarge
	// KindOther covers anything the engine did not classify.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindTooLarge:
		return "too large"
	default:
		return "other"
	}
}

// Error is a classified pattern compilation failure.
type Error struct {
	Kind    ErrorKind
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pattern %q: %s error: %v", e.Pattern, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Compiled is a compiled pattern ready for matching.
type Compiled struct {
	re *regexp.Regexp
}

// Compile compiles a pattern. Failures come back as *Error with the kind
// set; the caller decides how to report them.
//
// Patterns are unanchored, matching JSON Schema semantics: "a" matches any
// string containing an "a", not only the exact string "a".
func Compile(p string) (*Compiled, error) {
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, &Error{Kind: classify(err), Pattern: p, Err: err}
	}
	return &Compiled{re: re}, nil
}

// Matches reports whether s contains a match of the pattern.
func (c *Compiled) Matches(s string) bool {
	return c.re.MatchString(s)
}

func classify(err error) ErrorKind {
	var syntaxErr *syntax.Error
	if errors.As(err, &syntaxErr) {
		if syntaxErr.Code == syntax.ErrLarge || syntaxErr.Code == syntax.ErrNestingDepth {
			return KindTooLarge
		}
		return KindSyntax
	}
	return KindOther
}
