// Package coreglob provides a compiled glob-pattern matching engine.
//
// A pattern is compiled once into an immutable instruction program and then
// matched against many candidate strings with no allocation on the match
// path, e.g. once per entry during a directory walk.
//
// Supported syntax:
//
//	*            zero or more of any character
//	?            exactly one character
//	[set] [!set] one character in/not in set; literal members, a-z ranges,
//	             [:posixclass:] named classes
//	{a,b,...}    one of the comma-separated alternatives, each a full
//	             sub-pattern; nestable; empty alternatives allowed
//	\c           literal c, overriding any special meaning
//
// Matching is whole-string only: the pattern must consume the entire
// candidate. Brace alternatives compose with trailing pattern content at any
// nesting depth, so {a,b}-suffix requires -suffix after either alternative.
//
// Compilation never fails. Malformed constructs degrade to literals: an
// unterminated [ or { matches itself, an unrecognized [:name:] is re-parsed
// as ordinary class members.
//
// Matching operates on bytes with ASCII POSIX-class semantics; there is no
// Unicode case folding or normalization.
//
// Basic usage:
//
//	g := coreglob.Compile("{foo,bar-*}-baz")
//	g.Match("bar-anything-baz") // true
//	g.Match("bar-anything")     // false
package coreglob

import (
	"fmt"
	"strings"

	"github.com/coregx/coreglob/prefilter"
	"github.com/coregx/coreglob/prog"
)

// Glob is a compiled glob pattern.
//
// A Glob is immutable and safe to use concurrently from multiple goroutines.
type Glob struct {
	pattern  string
	program  prog.Program
	analysis prog.Analysis
	pf       prefilter.Prefilter // nil when the backtracker is required
}

// Compile compiles a glob pattern.
//
// Compile never fails: syntactically ambiguous or unterminated constructs
// are interpreted as literally as possible, so a caller walking a filesystem
// never has a malformed pattern abort the walk (it merely matches less).
//
// Example:
//
//	g := coreglob.Compile("*.tar.{gz,bz2,xz}")
//	g.Match("backup.tar.gz") // true
func Compile(pattern string) *Glob {
	program := prog.Compile(pattern)
	return &Glob{
		pattern:  pattern,
		program:  program,
		analysis: prog.Analyze(program),
		pf:       prefilter.Build(program),
	}
}

// Match reports whether the candidate string matches the pattern in its
// entirety. There is no partial or prefix matching.
//
// Match allocates nothing and runs to completion: there is no guard against
// pathological backtracking, so adversarial patterns stacking stars and
// brace groups can take exponential time.
func (g *Glob) Match(s string) bool {
	if g.pf != nil {
		return g.pf.IsMatch(s)
	}
	// Cheap rejections before the backtracker: width and literal affixes.
	if len(s) < g.analysis.MinWidth {
		return false
	}
	if !g.analysis.Variable && len(s) != g.analysis.MinWidth {
		return false
	}
	if !strings.HasPrefix(s, g.analysis.Prefix) || !strings.HasSuffix(s, g.analysis.Suffix) {
		return false
	}
	return g.program.Match(s)
}

// IsLiteral reports whether the pattern contains no special construct, i.e.
// it can only match exactly itself. Callers use this to bypass matching
// entirely (e.g. a single map lookup per directory instead of a scan).
func (g *Glob) IsLiteral() bool {
	return g.program.IsLiteral()
}

// Pattern returns the source text the Glob was compiled from.
func (g *Glob) Pattern() string {
	return g.pattern
}

// String returns a canonical reconstruction of the pattern from the compiled
// program. It is equivalent to the source pattern (compiles to the same
// matching behavior) but not necessarily byte-identical: escaping is
// normalized and class members may be reordered.
func (g *Glob) String() string {
	return g.program.String()
}

// Strategy returns the name of the matching strategy selected at compile
// time, for diagnostics.
func (g *Glob) Strategy() string {
	if g.pf != nil {
		return g.pf.Name()
	}
	return "backtrack"
}

// Explain returns a multi-line description of the compiled pattern: the
// canonical form, the selected strategy, and the instruction listing.
func (g *Glob) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pattern:   %s\n", g.pattern)
	fmt.Fprintf(&b, "canonical: %s\n", g.String())
	fmt.Fprintf(&b, "literal:   %v\n", g.IsLiteral())
	fmt.Fprintf(&b, "strategy:  %s\n", g.Strategy())
	fmt.Fprintf(&b, "min width: %d", g.analysis.MinWidth)
	if g.analysis.Variable {
		b.WriteString(" (variable)")
	}
	b.WriteString("\ninstructions:\n")
	b.WriteString(g.program.Dump())
	return b.String()
}
