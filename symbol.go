package chomsky

import (
	"strings"
)

// SymbolKind distinguishes a terminal from a nonterminal symbol.
type SymbolKind int

const (
	// Nonterminal is an auxiliary symbol of the grammar, rewritten by rules.
	Nonterminal SymbolKind = iota
	// Terminal is an alphabet symbol of the generated language.
	Terminal
)

// Symbol is a single atomic terminal or nonterminal. The source's
// single-character convention (overloading ASCII letters as symbols) is an
// encoding choice, not a semantic constraint, so a symbol here is tagged by
// kind plus a rune instead of relying on character identity alone.
type Symbol struct {
	Kind SymbolKind
	Rune rune
}

// NewTerminal builds a terminal symbol from a single codepoint.
func NewTerminal(r rune) Symbol {
	return Symbol{Kind: Terminal, Rune: r}
}

// NewNonterminal builds a nonterminal symbol from a single codepoint.
func NewNonterminal(r rune) Symbol {
	return Symbol{Kind: Nonterminal, Rune: r}
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// String renders the symbol for debugging and error messages.
func (s Symbol) String() string {
	return string(s.Rune)
}

// SymbolString is an ordered sequence of symbols, possibly empty (ε).
type SymbolString []Symbol

// Equal reports whether two symbol strings hold the same symbols in the
// same order.
func (ss SymbolString) Equal(other SymbolString) bool {
	if len(ss) != len(other) {
		return false
	}
	for i := range ss {
		if ss[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the symbol string for debugging and error messages.
func (ss SymbolString) String() string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteRune(s.Rune)
	}
	return b.String()
}

// IsEpsilon reports whether this symbol string is the empty string.
func (ss SymbolString) IsEpsilon() bool {
	return len(ss) == 0
}

// symbolKey renders a single symbol as a string suitable for use as a map
// key, disambiguating a terminal from a nonterminal that happen to share a
// rune.
func symbolKey(s Symbol) string {
	if s.Kind == Terminal {
		return "t" + string(s.Rune)
	}
	return "n" + string(s.Rune)
}

// key renders ss as a string suitable for use as a map key, disambiguating
// a terminal from a nonterminal that happen to share a rune.
func (ss SymbolString) key() string {
	var b strings.Builder
	for _, s := range ss {
		if s.Kind == Terminal {
			b.WriteByte('t')
		} else {
			b.WriteByte('n')
		}
		b.WriteRune(s.Rune)
		b.WriteByte(0)
	}
	return b.String()
}

// SymbolSet is an unordered collection of symbols, used to represent N and Σ.
type SymbolSet map[Symbol]struct{}

// NewSymbolSet builds a SymbolSet from the given symbols.
func NewSymbolSet(symbols ...Symbol) SymbolSet {
	set := make(SymbolSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether s is a member of the set.
func (set SymbolSet) Contains(s Symbol) bool {
	_, ok := set[s]
	return ok
}

// Add inserts s into the set.
func (set SymbolSet) Add(s Symbol) {
	set[s] = struct{}{}
}

// Clone returns a shallow copy of the set.
func (set SymbolSet) Clone() SymbolSet {
	clone := make(SymbolSet, len(set))
	for s := range set {
		clone[s] = struct{}{}
	}
	return clone
}

// Production is a single rule LHS -> RHS. A Production's LHS is a nonempty
// symbol string: a single nonterminal for context-free grammars, or a longer
// string πAσ for growing context-sensitive grammars.
type Production struct {
	LHS SymbolString
	RHS SymbolString
}

// RuleSet is P: an ordered collection of productions. Order is preserved
// from construction so that error messages and debug traces can reference
// rules the way the caller wrote them; the recognizers never rely on rule
// order themselves (the DP tables form a monotone boolean lattice, see
// the CYK recognizer).
type RuleSet []Production
