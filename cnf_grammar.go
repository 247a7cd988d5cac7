package chomsky

// cnfTable is the flat, lookup-oriented rule table the CYK recognizer reads.
// Adapted from the teacher's CNFGrammar: the same "index rules by what they
// produce" shape (map terminal/pair-of-targets to sources), minus the
// probability and derivation-path bookkeeping PCFG parsing needed and this
// boolean recognizer (spec §1 Non-goals: no weighted/probabilistic
// recognition, no parse-tree reconstruction) does not.
type cnfTable struct {
	S0 Symbol

	// epsilonRule is true when S0 → ε is present (spec §4.3 special case).
	epsilonRule bool

	// terminalRules[a] holds every A such that A → a.
	terminalRules map[rune][]Symbol

	// binaryRules[B][C] holds every A such that A → BC.
	binaryRules map[Symbol]map[Symbol][]Symbol
}

// buildCNFTable indexes a post-pipeline grammar's rules for CYK lookup. g
// must already satisfy the CNF postcondition: every rule is A → BC, A → a,
// or S0 → ε.
func buildCNFTable(g Grammar) *cnfTable {
	t := &cnfTable{
		S0:            g.S,
		terminalRules: map[rune][]Symbol{},
		binaryRules:   map[Symbol]map[Symbol][]Symbol{},
	}

	for _, prod := range g.P {
		switch len(prod.RHS) {
		case 0:
			if prod.LHS.Equal(SymbolString{g.S}) {
				t.epsilonRule = true
			}
		case 1:
			a := prod.RHS[0].Rune
			t.terminalRules[a] = append(t.terminalRules[a], prod.LHS[0])
		case 2:
			B, C := prod.RHS[0], prod.RHS[1]
			if t.binaryRules[B] == nil {
				t.binaryRules[B] = map[Symbol][]Symbol{}
			}
			t.binaryRules[B][C] = append(t.binaryRules[B][C], prod.LHS[0])
		}
	}
	return t
}
