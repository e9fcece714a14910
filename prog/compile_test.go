package prog

import "testing"

// ops extracts the instruction tags of a program.
func ops(p Program) []Op {
	out := make([]Op, len(p))
	for i := range p {
		out[i] = p[i].Op()
	}
	return out
}

func sameOps(a, b []Op) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompileShapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Op
	}{
		{"", nil},
		{"abc", []Op{OpLiteral}},
		{"a*b?c", []Op{OpLiteral, OpStar, OpLiteral, OpQuestion, OpLiteral}},
		{"**", []Op{OpStar, OpStar}},
		{"[a-z]", []Op{OpCharClass}},
		{"{a,b}", []Op{OpAlternatives}},
		{"{a,b}-tail", []Op{OpAlternatives, OpLiteral}},
		{"head-{a,b}", []Op{OpLiteral, OpAlternatives}},
		// Escapes coalesce into the surrounding literal run.
		{`a\*b`, []Op{OpLiteral}},
		{`\{a,b\}`, []Op{OpLiteral}},
		// Malformed constructs degrade to literals.
		{"[abc", []Op{OpLiteral}},
		{"{abc", []Op{OpLiteral}},
		{"a[b{c", []Op{OpLiteral}},
		// Degraded '[' resumes scanning after it, so later specials
		// still compile.
		{"[ab*", []Op{OpLiteral, OpStar}},
		{"{ab*", []Op{OpLiteral, OpStar}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := Compile(tt.pattern)
			if !sameOps(ops(p), tt.want) {
				t.Errorf("Compile(%q) ops = %v, want %v", tt.pattern, ops(p), tt.want)
			}
		})
	}
}

func TestCompileLiteralCoalescing(t *testing.T) {
	p := Compile(`foo\*bar\?baz`)
	if len(p) != 1 || p[0].Op() != OpLiteral {
		t.Fatalf("expected single literal, got:\n%s", p.Dump())
	}
	if got, want := p[0].Literal(), "foo*bar?baz"; got != want {
		t.Errorf("literal = %q, want %q", got, want)
	}
}

func TestCompileCharClass(t *testing.T) {
	p := Compile("[!a-z0-9_.]")
	if len(p) != 1 || p[0].Op() != OpCharClass {
		t.Fatalf("expected single class, got:\n%s", p.Dump())
	}
	c := p[0].Class()
	if !c.Negated {
		t.Error("expected negated class")
	}
	if len(c.Ranges) != 2 {
		t.Errorf("ranges = %v, want a-z and 0-9", c.Ranges)
	}
	if string(c.Chars) != "_." {
		t.Errorf("chars = %q, want %q", c.Chars, "_.")
	}
}

func TestCompilePosixClasses(t *testing.T) {
	p := Compile("[[:upper:][:digit:]x]")
	c := p[0].Class()
	if c.Classes != ClassUpper|ClassDigit {
		t.Errorf("classes = %s, want upper|digit", c.Classes)
	}
	if string(c.Chars) != "x" {
		t.Errorf("chars = %q, want %q", c.Chars, "x")
	}
}

func TestCompileLeadingBracketMember(t *testing.T) {
	// A ']' right after '[' or '[!' is a member, not a terminator.
	c := Compile("[]a]")[0].Class()
	if string(c.Chars) != "]a" {
		t.Errorf("chars = %q, want %q", c.Chars, "]a")
	}
	c = Compile("[!]a]")[0].Class()
	if !c.Negated || string(c.Chars) != "]a" {
		t.Errorf("negated=%v chars=%q, want negated ]a", c.Negated, c.Chars)
	}
}

func TestCompileBraceSplitting(t *testing.T) {
	tests := []struct {
		pattern string
		count   int
	}{
		{"{a}", 1},
		{"{a,b}", 2},
		{"{a,b,c}", 3},
		{"{}", 1},          // one empty alternative
		{"{,}", 2},         // two empty alternatives
		{"{a,{b,c},d}", 3}, // inner commas do not split the outer group
		{"{a,{b,{c,d}}}", 2},
		{`{a\,b,c}`, 2}, // escaped comma does not split
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := Compile(tt.pattern)
			if len(p) != 1 || p[0].Op() != OpAlternatives {
				t.Fatalf("Compile(%q) = %v, want single Alternatives", tt.pattern, ops(p))
			}
			if got := len(p[0].Alternatives()); got != tt.count {
				t.Errorf("Compile(%q) alternatives = %d, want %d", tt.pattern, got, tt.count)
			}
		})
	}
}

func TestCompileNestedBraceStructure(t *testing.T) {
	p := Compile("{a,{b,c}}")
	alts := p[0].Alternatives()
	if len(alts) != 2 {
		t.Fatalf("outer alternatives = %d, want 2", len(alts))
	}
	inner := alts[1]
	if len(inner) != 1 || inner[0].Op() != OpAlternatives {
		t.Fatalf("second alternative = %v, want nested Alternatives", ops(inner))
	}
	if got := len(inner[0].Alternatives()); got != 2 {
		t.Errorf("inner alternatives = %d, want 2", got)
	}
}

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{"", true},
		{"plain-name.txt", true},
		{`escaped\*star`, true},
		{"[abc", true}, // degraded to literal
		{"{abc", true},
		{"a*b", false},
		{"a?", false},
		{"[abc]", false},
		{"{a,b}", false},
	}
	for _, tt := range tests {
		if got := Compile(tt.pattern).IsLiteral(); got != tt.want {
			t.Errorf("Compile(%q).IsLiteral() = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestTrailingBackslash(t *testing.T) {
	p := Compile(`ab\`)
	if len(p) != 1 || p[0].Literal() != "ab" {
		t.Errorf("Compile(`ab\\`) = %v, want literal %q", p.Dump(), "ab")
	}
}
