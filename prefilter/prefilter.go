// Package prefilter selects complete fast-path matchers for compiled glob
// programs.
//
// Unlike a regex prefilter, which finds candidate positions that still need
// verification, a glob matches the whole candidate string, so several common
// pattern shapes can be decided outright without running the backtracking
// engine: pure literals, prefix/suffix/substring patterns, and literal
// alternations. Build recognizes those shapes; everything else falls through
// to the backtracker.
package prefilter

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coreglob/prog"
)

// Prefilter decides matches for one recognized pattern shape. A Prefilter's
// verdict is complete: it is the final match result, not a candidate filter.
type Prefilter interface {
	// IsMatch reports whether the candidate matches the pattern.
	IsMatch(s string) bool

	// Name identifies the strategy, for diagnostics.
	Name() string
}

// Build returns a complete fast-path matcher for the program, or nil when
// the program's shape requires the backtracking engine.
//
// Recognized shapes:
//   - pure literal (including the empty pattern): exact comparison
//   - stars only: match-all
//   - literal then star: prefix check
//   - star then literal: suffix check
//   - star, literal, star: substring check
//   - single brace group of literal alternatives: set lookup
//   - star, brace group of literal alternatives, star: Aho-Corasick
//     contains-any, the multi-literal alternation strategy
func Build(p prog.Program) Prefilter {
	if p.IsLiteral() {
		return &exact{lit: p.LiteralString()}
	}
	if allStars(p) {
		return matchAll{}
	}
	switch len(p) {
	case 1:
		if lits, ok := literalAlternatives(&p[0]); ok {
			set := make(map[string]struct{}, len(lits))
			for _, l := range lits {
				set[l] = struct{}{}
			}
			return &literalSet{set: set}
		}
	case 2:
		if p[0].Op() == prog.OpLiteral && p[1].Op() == prog.OpStar {
			return &prefix{lit: p[0].Literal()}
		}
		if p[0].Op() == prog.OpStar && p[1].Op() == prog.OpLiteral {
			return &suffix{lit: p[1].Literal()}
		}
	case 3:
		if p[0].Op() != prog.OpStar || p[2].Op() != prog.OpStar {
			break
		}
		if p[1].Op() == prog.OpLiteral {
			return &contains{lit: p[1].Literal()}
		}
		if lits, ok := literalAlternatives(&p[1]); ok {
			return buildContainsAny(lits)
		}
	}
	return nil
}

// literalAlternatives returns the literal text of every alternative when the
// instruction is a brace group whose alternatives are all pure literals.
func literalAlternatives(in *prog.Inst) ([]string, bool) {
	alts := in.Alternatives()
	if alts == nil {
		return nil, false
	}
	lits := make([]string, len(alts))
	for i, alt := range alts {
		if !alt.IsLiteral() {
			return nil, false
		}
		lits[i] = alt.LiteralString()
	}
	return lits, true
}

func allStars(p prog.Program) bool {
	if len(p) == 0 {
		return false
	}
	for i := range p {
		if p[i].Op() != prog.OpStar {
			return false
		}
	}
	return true
}

// buildContainsAny builds the Aho-Corasick automaton for *{a,b,...}*
// patterns. An empty alternative means every candidate contains a match.
// Returns nil when automaton construction fails, so the caller falls back
// to the backtracker.
func buildContainsAny(lits []string) Prefilter {
	builder := ahocorasick.NewBuilder()
	for _, l := range lits {
		if l == "" {
			return matchAll{}
		}
		builder.AddPattern([]byte(l))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &containsAny{auto: auto}
}

type matchAll struct{}

func (matchAll) IsMatch(string) bool { return true }
func (matchAll) Name() string        { return "match-all" }

type exact struct{ lit string }

func (f *exact) IsMatch(s string) bool { return s == f.lit }
func (f *exact) Name() string          { return "exact-literal" }

type prefix struct{ lit string }

func (f *prefix) IsMatch(s string) bool { return strings.HasPrefix(s, f.lit) }
func (f *prefix) Name() string          { return "literal-prefix" }

type suffix struct{ lit string }

func (f *suffix) IsMatch(s string) bool { return strings.HasSuffix(s, f.lit) }
func (f *suffix) Name() string          { return "literal-suffix" }

type contains struct{ lit string }

func (f *contains) IsMatch(s string) bool { return strings.Contains(s, f.lit) }
func (f *contains) Name() string          { return "literal-inner" }

type literalSet struct{ set map[string]struct{} }

func (f *literalSet) IsMatch(s string) bool {
	_, ok := f.set[s]
	return ok
}
func (f *literalSet) Name() string { return "literal-set" }

type containsAny struct{ auto *ahocorasick.Automaton }

func (f *containsAny) IsMatch(s string) bool { return f.auto.IsMatch([]byte(s)) }
func (f *containsAny) Name() string          { return "aho-corasick" }
