package chomsky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsMalformedGrammar(t *testing.T) {
	require := require.New(t)

	// Rule references 'z', which is in neither N nor Σ.
	_, err := Build(
		symbolSet("S"), symbolSet("a"), nt('S'),
		RuleSet{rule("S", "z")},
	)
	require.Error(err)
	require.ErrorIs(err, ErrMalformedGrammar)
}

func TestBuildRejectsEmptyLHS(t *testing.T) {
	require := require.New(t)

	_, err := Build(
		symbolSet("S"), symbolSet("a"), nt('S'),
		RuleSet{{LHS: SymbolString{}, RHS: ss("a")}},
	)
	require.Error(err)
	require.ErrorIs(err, ErrEmptyLHS)
}

func TestBuildRejectsStartNotInN(t *testing.T) {
	require := require.New(t)

	_, err := Build(
		symbolSet("S"), symbolSet("a"), nt('X'),
		RuleSet{rule("S", "a")},
	)
	require.Error(err)
	require.ErrorIs(err, ErrStartNotInN)
}

func TestBuildRejectsAlphabetOverlap(t *testing.T) {
	require := require.New(t)

	_, err := Build(
		symbolSet("Sa"), symbolSet("a"), nt('S'),
		RuleSet{rule("S", "a")},
	)
	require.Error(err)
	require.ErrorIs(err, ErrAlphabetOverlap)
}

// TestClassifierIsDeterministicAndTotal exercises spec §8 invariant 2:
// classifying the same grammar twice returns the same regime, and every
// grammar shape lands in exactly one of the three regimes.
func TestClassifierIsDeterministicAndTotal(t *testing.T) {
	a := assert.New(t)
	require := require.New(t)

	cfGrammar := Grammar{N: symbolSet("S"), Sigma: symbolSet("a"), S: nt('S'), P: RuleSet{rule("S", "a")}}
	gcsGrammar := Grammar{N: symbolSet("SAB"), Sigma: symbolSet("abc"), S: nt('S'), P: RuleSet{
		rule("S", "aAbc"), rule("Ab", "aAbb"), rule("Ab", "abb"), rule("Ac", "aaAcc"), rule("Ac", "aac"), rule("bA", "bbAa"), rule("cA", "ccAa"),
	}}
	recGrammar := Grammar{N: symbolSet("SA"), Sigma: symbolSet("ab"), S: nt('S'), P: RuleSet{rule("S", "aS"), rule("S", "Sb"), rule("S", "A"), rule("aAb", "b")}}

	for _, g := range []Grammar{cfGrammar, gcsGrammar, recGrammar} {
		first := classify(g)
		second := classify(g)
		a.Equal(first, second, "classification must be deterministic")
	}

	require.True(cfGrammar.isContextFree())
	require.False(gcsGrammar.isContextFree())
	require.True(gcsGrammar.isGrowingContextSensitive())
	require.False(recGrammar.isContextFree())
	require.False(recGrammar.isGrowingContextSensitive())
}

// classify mirrors Build's dispatch logic as a pure function, for tests
// that want to check determinism without constructing a full recognizer.
func classify(g Grammar) string {
	switch {
	case g.isContextFree():
		return "context-free"
	case g.isGrowingContextSensitive():
		return "growing-context-sensitive"
	default:
		return "recursive"
	}
}
