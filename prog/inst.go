// Package prog provides the compiled instruction program for glob patterns.
//
// This package implements the core of the engine: a pattern string is compiled
// once into an immutable Program (an ordered sequence of instructions), and the
// Program is then matched against candidate strings by a continuation-passing
// backtracking matcher. Matching is whole-string only and allocates nothing.
//
// Matching operates on bytes (code units). POSIX class semantics are ASCII;
// Unicode-aware folding or classification is out of scope.
package prog

import (
	"fmt"
	"strings"
)

// Op identifies the type of instruction and determines which payload fields
// are valid.
type Op uint8

const (
	// OpLiteral matches an exact run of characters verbatim.
	OpLiteral Op = iota

	// OpStar matches zero or more of any character.
	OpStar

	// OpQuestion matches exactly one character.
	OpQuestion

	// OpCharClass matches exactly one character against a bracket expression
	// (explicit members, ranges, POSIX classes, optional negation).
	OpCharClass

	// OpAlternatives matches any one of a list of sub-programs (brace group).
	OpAlternatives
)

// String returns a human-readable representation of the Op.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpStar:
		return "Star"
	case OpQuestion:
		return "Question"
	case OpCharClass:
		return "CharClass"
	case OpAlternatives:
		return "Alternatives"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Range is an inclusive byte range inside a character class, as written
// x-y in the pattern.
type Range struct {
	Lo byte // inclusive lower bound
	Hi byte // inclusive upper bound
}

// CharClass is the payload of an OpCharClass instruction: one candidate
// character matches if it belongs to the union of Chars, Ranges and Classes.
// Negated inverts the verdict of that union as a whole, not per subpart.
type CharClass struct {
	Chars   []byte
	Ranges  []Range
	Classes ClassSet
	Negated bool
}

// Contains reports whether c belongs to the class, honoring negation.
func (cc *CharClass) Contains(c byte) bool {
	found := false
	for _, m := range cc.Chars {
		if c == m {
			found = true
			break
		}
	}
	if !found {
		for _, r := range cc.Ranges {
			if c >= r.Lo && c <= r.Hi {
				found = true
				break
			}
		}
	}
	if !found && cc.Classes != 0 {
		found = cc.Classes.Contains(c)
	}
	return found != cc.Negated
}

// Inst is a single compiled pattern instruction. The instruction's Op
// determines which payload fields are valid.
type Inst struct {
	op Op

	// For OpLiteral: the exact text to match.
	lit string

	// For OpCharClass.
	class CharClass

	// For OpAlternatives: each alternative is a full sub-program.
	alts []Program
}

// Op returns the instruction's type.
func (in *Inst) Op() Op {
	return in.op
}

// Literal returns the literal text for OpLiteral instructions.
// Returns "" for other instructions.
func (in *Inst) Literal() string {
	if in.op == OpLiteral {
		return in.lit
	}
	return ""
}

// Class returns the character class for OpCharClass instructions.
// Returns nil for other instructions.
func (in *Inst) Class() *CharClass {
	if in.op == OpCharClass {
		return &in.class
	}
	return nil
}

// Alternatives returns the alternative sub-programs for OpAlternatives
// instructions. Returns nil for other instructions. The returned slice is
// shared and must not be modified.
func (in *Inst) Alternatives() []Program {
	if in.op == OpAlternatives {
		return in.alts
	}
	return nil
}

// String returns a human-readable representation of the instruction,
// for diagnostics and the explain command.
func (in *Inst) String() string {
	switch in.op {
	case OpLiteral:
		return fmt.Sprintf("Literal(%q)", in.lit)
	case OpStar:
		return "Star"
	case OpQuestion:
		return "Question"
	case OpCharClass:
		var b strings.Builder
		b.WriteString("CharClass(")
		if in.class.Negated {
			b.WriteString("negated ")
		}
		fmt.Fprintf(&b, "chars=%q ranges=%d classes=%s)", in.class.Chars, len(in.class.Ranges), in.class.Classes)
		return b.String()
	case OpAlternatives:
		return fmt.Sprintf("Alternatives(%d)", len(in.alts))
	default:
		return fmt.Sprintf("Unknown(%d)", in.op)
	}
}

// Program is an ordered sequence of compiled instructions. A Program is
// immutable once built by Compile and is safe for concurrent Match calls.
type Program []Inst

// IsLiteral reports whether every instruction in the program is a literal,
// i.e. the pattern contains no special construct. Callers use this as a
// fast-path hint to skip the matcher entirely.
func (p Program) IsLiteral() bool {
	for i := range p {
		if p[i].op != OpLiteral {
			return false
		}
	}
	return true
}

// LiteralString returns the concatenated literal text of the program.
// Only meaningful when IsLiteral reports true.
func (p Program) LiteralString() string {
	if len(p) == 1 {
		return p[0].lit
	}
	var b strings.Builder
	for i := range p {
		b.WriteString(p[i].lit)
	}
	return b.String()
}

// Dump returns a multi-line instruction listing for diagnostics.
func (p Program) Dump() string {
	var b strings.Builder
	for i := range p {
		fmt.Fprintf(&b, "%3d  %s\n", i, p[i].String())
	}
	return b.String()
}
