package chomsky

// gcsRecognizer implements the generalized CYK recognizer for growing
// context-sensitive grammars (spec §4.4). Grounded on
// original_source/grammars/growing_cs.py, re-expressed against absolute
// (start, end) span indices instead of the source's "vars, i, j" relative
// scan, to read directly off the spec's T[i][j][A] / F[r][s] formulation.
type gcsRecognizer struct {
	N     SymbolSet
	S     Symbol
	rules []decomposition
}

// newGCSRecognizer eliminates pure unit rules (A → B) from g's rule set —
// the same UNIT pass the CNF pipeline uses, applied standalone here exactly
// as growing_cs.py's constructor does — then decomposes every remaining
// rule into (π, A, γ, σ).
func newGCSRecognizer(g Grammar) *gcsRecognizer {
	pipe := &cnfPipeline{N: g.N.Clone(), Sigma: g.Sigma, S: g.S, P: append(RuleSet{}, g.P...)}
	pipe.unit()

	r := &gcsRecognizer{N: pipe.N, S: pipe.S}
	for _, prod := range pipe.P {
		if d, ok := decompose(prod.LHS, prod.RHS); ok {
			r.rules = append(r.rules, d)
		}
	}
	return r
}

// spanTable is T[i][j][A]: "there is a derivation A ⇒* x[i..j]". Only cells
// with i ≤ j are ever populated.
type spanTable [][]map[Symbol]bool

func newSpanTable(L int) spanTable {
	t := make(spanTable, L)
	for i := range t {
		t[i] = make([]map[Symbol]bool, L)
		for j := range t[i] {
			t[i][j] = map[Symbol]bool{}
		}
	}
	return t
}

func (t spanTable) get(i, j int, A Symbol) bool {
	if i < 0 || j >= len(t) || i > j {
		return false
	}
	return t[i][j][A]
}

func (t spanTable) set(i, j int, A Symbol) {
	t[i][j][A] = true
}

// Match runs the generalized CYK algorithm on x (spec §4.4).
func (r *gcsRecognizer) Match(x string) (MatchResult, error) {
	runes := []rune(x)
	L := len(runes)
	table := newSpanTable(L)

	if L == 0 {
		return boolToResult(r.derivesEpsilon()), nil
	}

	for i := 0; i < L; i++ {
		for _, rule := range r.rules {
			if len(rule.Growth) != 1 || !rule.Growth[0].IsTerminal() || rule.Growth[0].Rune != runes[i] {
				continue
			}
			if r.fits(rule.Prefix, i-len(rule.Prefix), i-1, table, runes) &&
				r.fits(rule.Suffix, i+1, i+len(rule.Suffix), table, runes) {
				table.set(i, i, rule.Center)
			}
		}
	}

	for length := 2; length <= L; length++ {
		for i := 0; i <= L-length; i++ {
			j := i + length - 1
			for _, rule := range r.rules {
				if !r.prefixFitsSomewhere(rule.Prefix, i, table, runes) {
					continue
				}
				if !r.suffixFitsSomewhere(rule.Suffix, j, table, runes) {
					continue
				}
				if r.fits(rule.Growth, i, j, table, runes) {
					table.set(i, j, rule.Center)
				}
			}
		}
	}

	return boolToResult(table.get(0, L-1, r.S)), nil
}

// prefixFitsSomewhere reports whether ∃ k ≤ i such that π fits x[k..i-1].
func (r *gcsRecognizer) prefixFitsSomewhere(pi SymbolString, i int, table spanTable, x []rune) bool {
	for k := 0; k <= i; k++ {
		if r.fits(pi, k, i-1, table, x) {
			return true
		}
	}
	return false
}

// suffixFitsSomewhere reports whether ∃ k ≥ j such that σ fits x[j+1..k].
func (r *gcsRecognizer) suffixFitsSomewhere(sigma SymbolString, j int, table spanTable, x []rune) bool {
	for k := j; k <= len(x)-1; k++ {
		if r.fits(sigma, j+1, k, table, x) {
			return true
		}
	}
	return false
}

// fits decides whether symbol string v can derive x[p..q] under the
// current DP table (spec §4.4, "the fits subroutine"). F[r][s] = "v1..vr
// can derive x[p..p+s]", with s shifted by one (sIdx = s+1) so that the
// base case F[0][-1] = true (empty prefix ≡ empty suffix) has a valid index.
func (r *gcsRecognizer) fits(v SymbolString, p, q int, table spanTable, x []rune) bool {
	spanLen := q - p + 1
	if spanLen <= 0 {
		return len(v) == 0
	}
	if len(v) == 0 {
		return false
	}

	// Fast-path prune: a terminal prefix/suffix of v must match x[p..q]
	// character-for-character, else fail immediately (spec §4.4).
	for k := 0; k < len(v) && v[k].IsTerminal(); k++ {
		if k >= spanLen || x[p+k] != v[k].Rune {
			return false
		}
	}
	for k := 0; k < len(v) && v[len(v)-1-k].IsTerminal(); k++ {
		if k >= spanLen || x[q-k] != v[len(v)-1-k].Rune {
			return false
		}
	}

	m := len(v)
	F := make([][]bool, m+1)
	for i := range F {
		F[i] = make([]bool, spanLen+1)
	}
	F[0][0] = true // F[0][-1]

	for rr := 1; rr <= m; rr++ {
		vr := v[rr-1]
		for sIdx := 1; sIdx <= spanLen; sIdx++ {
			s := sIdx - 1
			if vr.IsTerminal() {
				if p+s < len(x) && x[p+s] == vr.Rune {
					F[rr][sIdx] = F[rr-1][sIdx-1]
				}
				continue
			}
			for sPrimeIdx := rr - 1; sPrimeIdx <= sIdx-1; sPrimeIdx++ {
				if sPrimeIdx < 0 || sPrimeIdx > spanLen {
					continue
				}
				sPrime := sPrimeIdx - 1
				if F[rr-1][sPrimeIdx] && table.get(p+sPrime+1, p+s, vr) {
					F[rr][sIdx] = true
					break
				}
			}
		}
	}

	return F[m][spanLen]
}

// derivesEpsilon reports whether S → ε is among the (unit-eliminated)
// decomposed rules, used for the L = 0 special case.
func (r *gcsRecognizer) derivesEpsilon() bool {
	for _, rule := range r.rules {
		if rule.Center == r.S && len(rule.Growth) == 0 && len(rule.Prefix) == 0 && len(rule.Suffix) == 0 {
			return true
		}
	}
	return false
}
