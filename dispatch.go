package chomsky

// Recognizer answers the membership question x ∈ L(G) for the grammar it
// was built from (spec §6).
type Recognizer interface {
	Match(x string) (MatchResult, error)
}

// Build classifies (N, Σ, S, P) into the narrowest sound recognition regime
// and constructs the corresponding recognizer (spec §4.6, §6). The
// classifier itself never fails — a rule set that fits neither the
// context-free nor growing-context-sensitive shape falls through to the
// recursive recognizer — but Build still validates the grammar quadruple
// first, since a malformed or empty-LHS rule is a construction error no
// recognizer can recover from.
func Build(N, Sigma SymbolSet, S Symbol, P RuleSet) (Recognizer, error) {
	g, err := newGrammar(N, Sigma, S, P)
	if err != nil {
		return nil, err
	}

	switch {
	case g.isContextFree():
		traceDispatch("context-free", len(g.P))
		return newCFRecognizer(g), nil
	case g.isGrowingContextSensitive():
		traceDispatch("growing context-sensitive", len(g.P))
		return newGCSRecognizer(g), nil
	default:
		traceDispatch("recursive", len(g.P))
		return newRecursiveRecognizer(g), nil
	}
}
