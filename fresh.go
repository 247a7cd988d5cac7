package chomsky

// asciiLetterOrder is the fixed preference order the allocator tries before
// falling back to an arbitrary codepoint. Matches the source's
// "ABC...Zabc...z" scan order exactly, so that two grammars with the same N
// and Σ but explored in the same order always mint the same fresh symbols.
const asciiLetterOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// privateUseAreaStart is the first codepoint tried once all 52 ASCII letters
// are taken. The source draws a random codepoint here; a deterministic
// counter is used instead so fresh-symbol identity never varies between
// runs of the same grammar (see spec §4.1, §9).
const privateUseAreaStart = 0xE000

// freshAllocator mints nonterminal symbols unused by either alphabet. One
// allocator is threaded through an entire CNF-pipeline run so that symbols
// freshened by an earlier pass are never reissued by a later one.
type freshAllocator struct {
	used     SymbolSet
	fallback rune
}

// newFreshAllocator seeds the allocator with every symbol already present in
// N and Σ.
func newFreshAllocator(N, Sigma SymbolSet) *freshAllocator {
	used := make(SymbolSet, len(N)+len(Sigma))
	for s := range N {
		used.Add(s)
	}
	for s := range Sigma {
		used.Add(s)
	}
	return &freshAllocator{used: used, fallback: privateUseAreaStart}
}

// taken reports whether r is already used by some terminal or nonterminal,
// regardless of which kind.
func (f *freshAllocator) taken(r rune) bool {
	return f.used.Contains(NewTerminal(r)) || f.used.Contains(NewNonterminal(r))
}

// next mints a fresh nonterminal not in N ∪ Σ and marks it used. Exhausting
// the entire codepoint space is unreachable in practice and is treated as an
// implementation bug rather than a user-facing error, per spec §4.1.
func (f *freshAllocator) next() Symbol {
	for _, r := range asciiLetterOrder {
		if !f.taken(r) {
			s := NewNonterminal(r)
			f.used.Add(s)
			return s
		}
	}

	for {
		r := f.fallback
		f.fallback++
		assert(f.fallback <= 0x10FFFF, "chomsky: fresh-symbol codepoint space exhausted")
		if !f.taken(r) {
			s := NewNonterminal(r)
			f.used.Add(s)
			return s
		}
	}
}
