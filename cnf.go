package chomsky

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// cnfPipeline carries the (N, Σ, S, P) quadruple through the five CNF
// passes. A single freshAllocator is threaded through every pass so that a
// symbol freshened by an earlier pass can never collide with one minted by
// a later pass.
type cnfPipeline struct {
	N     SymbolSet
	Sigma SymbolSet
	S     Symbol
	P     RuleSet
	alloc *freshAllocator
}

// convertToCNF runs START, TERM, BIN, DEL, UNIT in that order and returns the
// transformed grammar. Each pass preserves L(G) exactly (spec §4.2).
func convertToCNF(g Grammar) Grammar {
	pipe := &cnfPipeline{
		N:     g.N.Clone(),
		Sigma: g.Sigma,
		S:     g.S,
		P:     append(RuleSet{}, g.P...),
		alloc: newFreshAllocator(g.N, g.Sigma),
	}

	pipe.start()
	trace("CNF/START", pipe.N, pipe.P)
	pipe.term()
	trace("CNF/TERM", pipe.N, pipe.P)
	pipe.bin()
	trace("CNF/BIN", pipe.N, pipe.P)
	pipe.del()
	trace("CNF/DEL", pipe.N, pipe.P)
	pipe.unit()
	trace("CNF/UNIT", pipe.N, pipe.P)

	return Grammar{N: pipe.N, Sigma: pipe.Sigma, S: pipe.S, P: pipe.P}
}

// start introduces S0 = fresh(N, Σ), adds S0 → S, and makes S0 the new start
// symbol, ensuring the start symbol never appears on any RHS of the
// original rules.
func (p *cnfPipeline) start() {
	s0 := p.alloc.next()
	p.N.Add(s0)
	p.P = append(p.P, Production{LHS: SymbolString{s0}, RHS: SymbolString{p.S}})
	p.S = s0
}

// term replaces, on every RHS of length ≥ 2, each terminal occurrence a with
// a fresh nonterminal Na and adds Na → a. One fresh nonterminal is shared
// by every occurrence of the same terminal.
func (p *cnfPipeline) term() {
	terminalSubs := map[Symbol]Symbol{}
	newRules := make(RuleSet, 0, len(p.P))

	for _, prod := range p.P {
		if len(prod.RHS) < 2 {
			newRules = append(newRules, prod)
			continue
		}
		newRHS := make(SymbolString, len(prod.RHS))
		for i, s := range prod.RHS {
			if !s.IsTerminal() {
				newRHS[i] = s
				continue
			}
			na, ok := terminalSubs[s]
			if !ok {
				na = p.alloc.next()
				terminalSubs[s] = na
				p.N.Add(na)
				newRules = append(newRules, Production{LHS: SymbolString{na}, RHS: SymbolString{s}})
			}
			newRHS[i] = na
		}
		newRules = append(newRules, Production{LHS: prod.LHS, RHS: newRHS})
	}
	p.P = newRules
}

// bin replaces every rule A → X1 X2 … Xn with n > 2 by a chain of binary
// rules through fresh nonterminals A1, …, An-2.
func (p *cnfPipeline) bin() {
	newRules := make(RuleSet, 0, len(p.P))
	for _, prod := range p.P {
		if len(prod.RHS) <= 2 {
			newRules = append(newRules, prod)
			continue
		}
		rhs := prod.RHS
		left := prod.LHS
		for len(rhs) > 2 {
			next := p.alloc.next()
			p.N.Add(next)
			newRules = append(newRules, Production{LHS: left, RHS: SymbolString{rhs[0], next}})
			left = SymbolString{next}
			rhs = rhs[1:]
		}
		newRules = append(newRules, Production{LHS: left, RHS: rhs})
	}
	p.P = newRules
}

// del computes the Nullable set by fixed-point iteration and then, for every
// rule A → X1…Xn, adds every variant obtained by deleting some subset of
// nullable occurrences, dropping resulting ε-rules except S0 → ε (and only
// when S0 is itself nullable, i.e. the original S derived ε).
func (p *cnfPipeline) del() {
	nullable := p.nullableSet()

	seen := map[string]bool{}
	newRules := make(RuleSet, 0, len(p.P))
	add := func(lhs, rhs SymbolString) {
		if len(rhs) == 0 {
			if lhs.Equal(SymbolString{p.S}) && nullable.Contains(symbolKey(p.S)) {
				key := lhs.key() + "->" + rhs.key()
				if !seen[key] {
					seen[key] = true
					newRules = append(newRules, Production{LHS: lhs, RHS: rhs})
				}
			}
			return
		}
		key := lhs.key() + "->" + rhs.key()
		if seen[key] {
			return
		}
		seen[key] = true
		newRules = append(newRules, Production{LHS: lhs, RHS: rhs})
	}

	for _, prod := range p.P {
		add(prod.LHS, prod.RHS)
		nullablePositions := []int{}
		for i, s := range prod.RHS {
			if !s.IsTerminal() && nullable.Contains(symbolKey(s)) {
				nullablePositions = append(nullablePositions, i)
			}
		}
		for _, subset := range nonEmptySubsets(nullablePositions) {
			drop := make(map[int]bool, len(subset))
			for _, i := range subset {
				drop[i] = true
			}
			variant := make(SymbolString, 0, len(prod.RHS))
			for i, s := range prod.RHS {
				if !drop[i] {
					variant = append(variant, s)
				}
			}
			add(prod.LHS, variant)
		}
	}
	p.P = newRules
}

// nullableSet computes, by fixed-point iteration, the nonterminals that
// derive ε: A is nullable if A → ε, or if A → X1…Xn with every Xi nullable.
func (p *cnfPipeline) nullableSet() *treeset.Set {
	nullable := treeset.NewWith(utils.StringComparator)
	changed := true
	for changed {
		changed = false
		for _, prod := range p.P {
			if len(prod.LHS) != 1 {
				// Only single-nonterminal LHS productions participate in
				// nullability (spec §4.2 operates on a CNF-bound grammar at
				// this point in the pipeline).
				continue
			}
			key := symbolKey(prod.LHS[0])
			if nullable.Contains(key) {
				continue
			}
			if len(prod.RHS) == 0 {
				nullable.Add(key)
				changed = true
				continue
			}
			allNullable := true
			for _, s := range prod.RHS {
				if s.IsTerminal() || !nullable.Contains(symbolKey(s)) {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable.Add(key)
				changed = true
			}
		}
	}
	return nullable
}

// nonEmptySubsets returns every non-empty subset of positions, used by DEL
// to enumerate "some subset of nullable occurrences deleted".
func nonEmptySubsets(positions []int) [][]int {
	if len(positions) == 0 {
		return nil
	}
	var subsets [][]int
	for mask := 1; mask < (1 << len(positions)); mask++ {
		var subset []int
		for i, pos := range positions {
			if mask&(1<<i) != 0 {
				subset = append(subset, pos)
			}
		}
		subsets = append(subsets, subset)
	}
	return subsets
}

// unit eliminates rules of the form A → B (B a nonterminal) by computing the
// full unit closure {(A, B) : A ⇒* B via unit rules only} and, for every
// non-unit rule B → γ and every (A, B) in the closure, adding A → γ. This
// replaces the teacher-adjacent source's one-source-per-target shortcut
// (spec §9) with the actual transitive closure.
func (p *cnfPipeline) unit() {
	graph := newDirectedGraph()
	nodeOf := map[string]SymbolString{}
	isUnit := func(prod Production) bool {
		return len(prod.RHS) == 1 && !prod.RHS[0].IsTerminal()
	}

	for _, prod := range p.P {
		if !isUnit(prod) {
			continue
		}
		aKey, bKey := prod.LHS.key(), prod.RHS.key()
		nodeOf[aKey] = prod.LHS
		nodeOf[bKey] = prod.RHS
		graph.add(aKey, bKey)
	}

	var nonUnit RuleSet
	for _, prod := range p.P {
		if !isUnit(prod) {
			nonUnit = append(nonUnit, prod)
		}
	}

	seen := map[string]bool{}
	for _, prod := range nonUnit {
		seen[prod.LHS.key()+"->"+prod.RHS.key()] = true
	}

	result := append(RuleSet{}, nonUnit...)
	for aKey, lhs := range nodeOf {
		closure := graph.reachable(aKey)
		for _, bKeyVal := range closure.Values() {
			bKey := bKeyVal.(string)
			for _, prod := range nonUnit {
				if prod.LHS.key() != bKey {
					continue
				}
				key := lhs.key() + "->" + prod.RHS.key()
				if seen[key] {
					continue
				}
				seen[key] = true
				result = append(result, Production{LHS: lhs, RHS: prod.RHS})
			}
		}
	}

	p.P = result
}
