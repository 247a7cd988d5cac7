package chomsky

// Grammar is the caller-supplied quadruple G = (N, Σ, S, P). Grammars are
// immutable after construction; a Grammar value is read by exactly one
// recognizer constructor and then never mutated again (see Build in
// dispatch.go).
type Grammar struct {
	N     SymbolSet
	Sigma SymbolSet
	S     Symbol
	P     RuleSet
}

// newGrammar validates and wraps a caller-supplied quadruple. Construction
// errors (MalformedGrammar, EmptyLHS, start symbol not in N, N/Σ overlap)
// are surfaced here rather than discovered later inside a recognizer.
func newGrammar(N, Sigma SymbolSet, S Symbol, P RuleSet) (Grammar, error) {
	if err := validate(N, Sigma, S, P); err != nil {
		return Grammar{}, err
	}
	return Grammar{N: N, Sigma: Sigma, S: S, P: P}, nil
}

// productionsByLHSKey groups productions by the key() of their LHS,
// preserving the order each LHS's productions were declared in: "all the
// right-hand sides for this left-hand side". The CNF passes and the
// classification checks do not call it; they iterate P directly.
func (g Grammar) productionsByLHSKey() map[string][]Production {
	byLHS := make(map[string][]Production)
	for _, prod := range g.P {
		key := prod.LHS.key()
		byLHS[key] = append(byLHS[key], prod)
	}
	return byLHS
}

// isContextFree reports whether every LHS is a single nonterminal — the
// first branch of the dispatcher (spec §4.6). RHS membership in N ∪ Σ is not
// checked here; newGrammar's validation enforces it before Build classifies.
func (g Grammar) isContextFree() bool {
	for _, prod := range g.P {
		if len(prod.LHS) != 1 || prod.LHS[0].IsTerminal() {
			return false
		}
	}
	return true
}

// decomposition is a rule's split into longest-common-prefix / single-
// nonterminal center / longest-common-suffix, computed once at construction
// for the growing context-sensitive recognizer (spec §3, "Derived entity —
// decomposed rule").
type decomposition struct {
	Prefix SymbolString
	Center Symbol
	Growth SymbolString
	Suffix SymbolString
}

// decompose splits LHS = πAσ, RHS = πγσ for π, σ the longest common
// prefix/suffix of LHS and RHS. ok is false if the center does not reduce to
// exactly one nonterminal.
func decompose(lhs, rhs SymbolString) (d decomposition, ok bool) {
	n := len(lhs)
	if len(rhs) < n {
		n = len(rhs)
	}
	prefixLen := 0
	for prefixLen < n && lhs[prefixLen] == rhs[prefixLen] {
		prefixLen++
	}
	suffixLen := 0
	for suffixLen < n-prefixLen && lhs[len(lhs)-1-suffixLen] == rhs[len(rhs)-1-suffixLen] {
		suffixLen++
	}

	center := lhs[prefixLen : len(lhs)-suffixLen]
	if len(center) != 1 || center[0].IsTerminal() {
		return decomposition{}, false
	}

	return decomposition{
		Prefix: lhs[:prefixLen],
		Center: center[0],
		Growth: rhs[prefixLen : len(rhs)-suffixLen],
		Suffix: lhs[len(lhs)-suffixLen:],
	}, true
}

// isGrowingContextSensitive reports whether every rule α → β satisfies
// |β| > |α| and decomposes into a single-nonterminal center with |γ| > 1,
// exempting rules rooted at S from the growth requirement so that S → ε can
// express ε ∈ L(G) (spec §3, §4.6).
func (g Grammar) isGrowingContextSensitive() bool {
	for _, prod := range g.P {
		if prod.LHS.Equal(SymbolString{g.S}) {
			continue
		}
		if len(prod.RHS) <= len(prod.LHS) {
			return false
		}
		d, ok := decompose(prod.LHS, prod.RHS)
		if !ok {
			return false
		}
		if len(d.Growth) <= 1 {
			return false
		}
	}
	return true
}
