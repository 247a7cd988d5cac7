package chomsky

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// hasRule reports whether P contains a production with exactly this LHS/RHS.
func hasRule(P RuleSet, lhs, rhs string) bool {
	for _, prod := range P {
		if prod.LHS.Equal(ss(lhs)) && prod.RHS.Equal(ss(rhs)) {
			return true
		}
	}
	return false
}

// TestUnitPassComputesFullClosure exercises the exact defect spec §9 flags:
// a chain of unit rules (A -> B -> C -> x) must forward x to every
// ancestor, not just the immediate parent.
func TestUnitPassComputesFullClosure(t *testing.T) {
	a := assert.New(t)

	pipe := &cnfPipeline{
		N: symbolSet("ABC"), Sigma: symbolSet("x"), S: nt('A'),
		P: RuleSet{rule("A", "B"), rule("B", "C"), rule("C", "x")},
	}
	pipe.unit()

	a.True(hasRule(pipe.P, "A", "x"), "A should inherit C's production transitively through B")
	a.True(hasRule(pipe.P, "B", "x"))
	a.True(hasRule(pipe.P, "C", "x"))
	for _, prod := range pipe.P {
		a.False(len(prod.RHS) == 1 && !prod.RHS[0].IsTerminal(), "no unit rule should survive: %v -> %v", prod.LHS, prod.RHS)
	}
}

// TestUnitPassHandlesMultipleSources exercises the DAG case: two distinct
// nonterminals unit-reduce to the same target. The source's one-source
// shortcut would only forward the target's production to one of them.
func TestUnitPassHandlesMultipleSources(t *testing.T) {
	a := assert.New(t)

	pipe := &cnfPipeline{
		N: symbolSet("ABC"), Sigma: symbolSet("y"), S: nt('A'),
		P: RuleSet{rule("A", "B"), rule("C", "B"), rule("B", "y")},
	}
	pipe.unit()

	a.True(hasRule(pipe.P, "A", "y"))
	a.True(hasRule(pipe.P, "C", "y"))
}

func TestNullableSetFixedPoint(t *testing.T) {
	a := assert.New(t)

	pipe := &cnfPipeline{
		N: symbolSet("SAB"), Sigma: symbolSet("a"),
		P: RuleSet{rule("S", "AB"), rule("A", ""), rule("B", "")},
	}
	nullable := pipe.nullableSet()

	a.True(nullable.Contains(symbolKey(nt('A'))))
	a.True(nullable.Contains(symbolKey(nt('B'))))
	a.True(nullable.Contains(symbolKey(nt('S'))), "S should be nullable since both A and B are")
}

// TestDelPassEnumeratesAllNullableSubsets exercises a rule with two
// independently nullable positions, requiring all four subset variants.
func TestDelPassEnumeratesAllNullableSubsets(t *testing.T) {
	a := assert.New(t)

	pipe := &cnfPipeline{
		N: symbolSet("SAB"), Sigma: symbolSet("a"), S: nt('S'),
		P: RuleSet{rule("S", "AaB"), rule("A", ""), rule("B", "")},
	}
	pipe.del()

	a.True(hasRule(pipe.P, "S", "AaB"))
	a.True(hasRule(pipe.P, "S", "aB"))
	a.True(hasRule(pipe.P, "S", "Aa"))
	a.True(hasRule(pipe.P, "S", "a"))
}

// TestConvertToCNFProducesOnlyCNFShapedRules checks the pipeline's
// postcondition on a small grammar mixing all five passes' concerns.
func TestConvertToCNFProducesOnlyCNFShapedRules(t *testing.T) {
	a := assert.New(t)

	g := Grammar{
		N: symbolSet("SA"), Sigma: symbolSet("ab"), S: nt('S'),
		P: RuleSet{rule("S", "aAb"), rule("A", "aaAbb"), rule("A", "ab")},
	}
	cnf := convertToCNF(g)

	for _, prod := range cnf.P {
		switch len(prod.RHS) {
		case 0:
			a.True(prod.LHS.Equal(SymbolString{cnf.S}), "only the start symbol may have an epsilon rule")
		case 1:
			a.True(prod.RHS[0].IsTerminal(), "unary RHS must be a terminal: %v -> %v", prod.LHS, prod.RHS)
		case 2:
			a.False(prod.RHS[0].IsTerminal(), "binary RHS symbols must be nonterminals: %v -> %v", prod.LHS, prod.RHS)
			a.False(prod.RHS[1].IsTerminal())
		default:
			t.Fatalf("rule %v -> %v is not in CNF shape", prod.LHS, prod.RHS)
		}
	}
}
