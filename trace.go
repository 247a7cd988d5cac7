package chomsky

import (
	"fmt"

	"github.com/pterm/pterm"
)

// debugEnabled mirrors the teacher's package-level gEnableDebug switch: off
// by default, toggled once via DebugMode(), and read by the CNF pipeline, the
// dispatcher and the recursive recognizer. It never affects a match's return
// value.
var debugEnabled bool

// DebugMode turns on tracing of CNF-pipeline passes, dispatcher decisions
// and recursive-recognizer cache statistics. It prints via pterm instead of
// the teacher's raw fmt.Println, but plays the same role the teacher's
// DebugMode() does.
func DebugMode() {
	debugEnabled = true
}

// trace prints the rule-set size after a CNF pass.
func trace(stage string, N SymbolSet, P RuleSet) {
	if !debugEnabled {
		return
	}
	pterm.Debug.Println(fmt.Sprintf("%s: |N| = %d, |P| = %d", stage, len(N), len(P)))
}

// traceDispatch prints which recognition regime the classifier chose.
func traceDispatch(regime string, ruleCount int) {
	if !debugEnabled {
		return
	}
	pterm.Info.Println(fmt.Sprintf("dispatcher: chose %s recognizer (%d rules)", regime, ruleCount))
}

// traceCache prints recursive-recognizer cache statistics after a match call.
func traceCache(hits, misses int) {
	if !debugEnabled {
		return
	}
	pterm.Debug.Println(fmt.Sprintf("recursive recognizer: %d cache hits, %d misses", hits, misses))
}
