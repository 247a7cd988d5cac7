package chomsky

import (
	"github.com/pkg/errors"
)

// ErrMalformedGrammar is returned when a rule references a symbol in
// neither N nor Σ.
var ErrMalformedGrammar = errors.New("chomsky: rule references a symbol in neither N nor Σ")

// ErrEmptyLHS is returned when a rule has an empty left-hand side.
var ErrEmptyLHS = errors.New("chomsky: rule has an empty left-hand side")

// ErrStartNotInN is returned when the start symbol is not a member of N.
var ErrStartNotInN = errors.New("chomsky: start symbol is not a member of N")

// ErrAlphabetOverlap is returned when N and Σ are not disjoint.
var ErrAlphabetOverlap = errors.New("chomsky: N and Σ are not disjoint")

// validate checks the construction-time invariants from spec §3 and
// returns a wrapped sentinel error (carrying the offending rule or symbol in
// its message) on the first violation found.
func validate(N, Sigma SymbolSet, S Symbol, P RuleSet) error {
	if !N.Contains(S) {
		return errors.Wrapf(ErrStartNotInN, "S = %q", S)
	}
	for s := range N {
		if Sigma.Contains(s) {
			return errors.Wrapf(ErrAlphabetOverlap, "symbol %q", s)
		}
	}

	inAlphabets := func(s Symbol) bool {
		return N.Contains(s) || Sigma.Contains(s)
	}

	for _, prod := range P {
		if len(prod.LHS) == 0 {
			return errors.Wrapf(ErrEmptyLHS, "rule -> %q", prod.RHS)
		}
		for _, s := range prod.LHS {
			if !inAlphabets(s) {
				return errors.Wrapf(ErrMalformedGrammar, "LHS %q: symbol %q", prod.LHS, s)
			}
		}
		for _, s := range prod.RHS {
			if !inAlphabets(s) {
				return errors.Wrapf(ErrMalformedGrammar, "RHS %q of rule %q: symbol %q", prod.RHS, prod.LHS, s)
			}
		}
	}
	return nil
}

// MatchResult is the outcome of a membership query. Unlike a bare bool, it
// gives the recursive recognizer's bounded search a first-class way to
// report that it could neither prove nor disprove membership within its
// search bound (spec §7, §9).
type MatchResult int

const (
	// NoMatch means x is definitely not in L(G).
	NoMatch MatchResult = iota
	// MatchFound means x is definitely in L(G).
	MatchFound
	// Indeterminate means the recursive recognizer exceeded its search
	// bound before proving or disproving membership.
	Indeterminate
)

// String renders the result for debug traces and test failures.
func (r MatchResult) String() string {
	switch r {
	case NoMatch:
		return "no-match"
	case MatchFound:
		return "match"
	case Indeterminate:
		return "indeterminate"
	default:
		return "invalid"
	}
}

// MatchBool collapses Indeterminate to false, the "simpler API" spec §7
// explicitly allows a caller to choose, provided the choice is documented:
// an unresolved bounded search is treated the same as a disproof.
func (r MatchResult) MatchBool() bool {
	return r == MatchFound
}
