package chomsky

// ss builds a SymbolString from a short literal: uppercase ASCII letters are
// nonterminals, everything else is a terminal. Good enough for every test
// grammar in this package — none of them need a nonterminal that isn't an
// uppercase letter.
func ss(s string) SymbolString {
	out := make(SymbolString, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			out = append(out, NewNonterminal(r))
		} else {
			out = append(out, NewTerminal(r))
		}
	}
	return out
}

func nt(r rune) Symbol { return NewNonterminal(r) }

func rule(lhs, rhs string) Production {
	return Production{LHS: ss(lhs), RHS: ss(rhs)}
}

func symbolSet(s string) SymbolSet {
	set := make(SymbolSet, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			set.Add(NewNonterminal(r))
		} else {
			set.Add(NewTerminal(r))
		}
	}
	return set
}
