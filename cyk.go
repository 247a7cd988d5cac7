package chomsky

// cfRecognizer implements CYK over a CNF grammar (spec §4.3).
type cfRecognizer struct {
	table *cnfTable
}

// newCFRecognizer converts g to CNF and builds the CYK lookup table.
func newCFRecognizer(g Grammar) *cfRecognizer {
	cnf := convertToCNF(g)
	return &cfRecognizer{table: buildCNFTable(cnf)}
}

// Match runs CYK on x and reports whether x ∈ L(G).
//
// DP table T[i][j][A] means "x[i..j] is derivable from nonterminal A", for
// 0 ≤ i ≤ j < len(x). Base case fills spans of length 1 from terminal rules;
// the induction fills longer spans from binary rules A → BC by trying every
// split point. Ordering is irrelevant: each cell only ever flips from false
// to true, so any traversal reaching the same fixpoint is correct (spec
// §4.3, §8 invariant 4).
func (r *cfRecognizer) Match(x string) (MatchResult, error) {
	runes := []rune(x)
	L := len(runes)

	if L == 0 {
		if r.table.epsilonRule {
			return MatchFound, nil
		}
		return NoMatch, nil
	}

	// T[length][start][symbol] — length is 1-indexed span length to avoid a
	// separate zero-length row, as the teacher's cyk.go table does.
	T := make([][]map[Symbol]bool, L+1)
	for length := 1; length <= L; length++ {
		T[length] = make([]map[Symbol]bool, L-length+1)
		for start := range T[length] {
			T[length][start] = map[Symbol]bool{}
		}
	}

	for i := 0; i < L; i++ {
		for _, A := range r.table.terminalRules[runes[i]] {
			T[1][i][A] = true
		}
	}

	for length := 2; length <= L; length++ {
		for start := 0; start <= L-length; start++ {
			for partition := 1; partition < length; partition++ {
				leftCell := T[partition][start]
				rightCell := T[length-partition][start+partition]
				for B := range leftCell {
					rightRules, ok := r.table.binaryRules[B]
					if !ok {
						continue
					}
					for C := range rightCell {
						for _, A := range rightRules[C] {
							T[length][start][A] = true
						}
					}
				}
			}
		}
	}

	return boolToResult(T[L][0][r.table.S0]), nil
}

func boolToResult(ok bool) MatchResult {
	if ok {
		return MatchFound
	}
	return NoMatch
}
