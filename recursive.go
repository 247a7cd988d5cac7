package chomsky

import (
	"github.com/cnf/structhash"
)

// defaultRecursiveBound caps the number of distinct strings the recursive
// recognizer will visit before giving up and reporting Indeterminate. The
// public Build API (spec §6) takes no bound parameter, so this is the
// internal ceiling every recursive recognizer uses; see DESIGN.md for why
// that Open Question was resolved this way.
const defaultRecursiveBound = 20000

// recursiveRecognizer implements memoized reverse-rewrite search for
// rewriting systems that are neither context-free nor growing
// context-sensitive (spec §4.5). Grounded on
// original_source/grammars/recursive.py, with two deliberate departures:
// the reverse rule table maps an RHS pattern to the *set* of LHS strings it
// may have come from (the source's dict silently keeps only the last one),
// and cache entries are marked false before recursing into neighbors so a
// rewrite cycle terminates instead of recursing forever.
type recursiveRecognizer struct {
	S            Symbol
	reverseRules map[string][]SymbolString
	bound        int
}

// newRecursiveRecognizer indexes every rule's RHS, keyed by its structural
// hash, to the set of LHS strings that rewrite to it.
func newRecursiveRecognizer(g Grammar) *recursiveRecognizer {
	r := &recursiveRecognizer{
		S:            g.S,
		reverseRules: map[string][]SymbolString{},
		bound:        defaultRecursiveBound,
	}
	for _, prod := range g.P {
		h := hashSymbolString(prod.RHS)
		r.reverseRules[h] = append(r.reverseRules[h], prod.LHS)
	}
	return r
}

// hashSymbolString produces a stable cache key for a symbol string. Uses
// structhash the way the pack's earley parser hashes item/state pairs: call
// it, trust it, panic if the library itself misbehaves.
func hashSymbolString(ss SymbolString) string {
	h, err := structhash.Hash(ss, 1)
	if err != nil {
		panic(err)
	}
	return h
}

// Match runs the bounded reverse-rewrite search on x.
func (r *recursiveRecognizer) Match(x string) (MatchResult, error) {
	sym := make(SymbolString, 0, len([]rune(x)))
	for _, ch := range x {
		sym = append(sym, NewTerminal(ch))
	}

	cache := map[string]bool{hashSymbolString(SymbolString{r.S}): true}
	stats := &searchStats{}
	matched, hitBound := r.search(sym, cache, stats)
	traceCache(stats.hits, stats.misses)

	if hitBound {
		return Indeterminate, nil
	}
	return boolToResult(matched), nil
}

type searchStats struct {
	hits   int
	misses int
}

// search is the recursive reverse-rewrite step (spec §4.5): for every
// contiguous substring of y that equals some rule's RHS, rewrite it to that
// rule's LHS and recurse on the result. Cache entries are set to false
// before recursing, so a rewrite that cycles back to y reports false for
// that branch rather than recursing indefinitely.
func (r *recursiveRecognizer) search(y SymbolString, cache map[string]bool, stats *searchStats) (matched bool, hitBound bool) {
	key := hashSymbolString(y)
	if v, ok := cache[key]; ok {
		stats.hits++
		return v, false
	}
	stats.misses++
	if len(cache) >= r.bound {
		return false, true
	}
	cache[key] = false

	for i := 1; i <= len(y); i++ {
		for j := 0; j < i; j++ {
			substr := y[j:i]
			candidates, ok := r.reverseRules[hashSymbolString(substr)]
			if !ok {
				continue
			}
			for _, lhs := range candidates {
				next := make(SymbolString, 0, len(y)-len(substr)+len(lhs))
				next = append(next, y[:j]...)
				next = append(next, lhs...)
				next = append(next, y[i:]...)

				ok2, bound2 := r.search(next, cache, stats)
				if bound2 {
					return false, true
				}
				if ok2 {
					cache[key] = true
					return true, false
				}
			}
		}
	}
	return false, false
}
