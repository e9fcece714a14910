package prog

import "strings"

// String reconstructs a textual glob pattern from the program. The result is
// equivalent to a pattern that compiles to the same matching behavior, not
// necessarily byte-identical to the original: literal runs re-escape all
// metacharacters, and class members and ranges are emitted in stored order
// with POSIX classes in canonical order.
func (p Program) String() string {
	var b strings.Builder
	appendProgram(&b, p)
	return b.String()
}

func appendProgram(b *strings.Builder, p Program) {
	for i := range p {
		appendInst(b, &p[i])
	}
}

func appendInst(b *strings.Builder, in *Inst) {
	switch in.op {
	case OpLiteral:
		for i := 0; i < len(in.lit); i++ {
			c := in.lit[i]
			switch c {
			case '*', '?', '[', ']', '{', '}', '\\', ',':
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	case OpStar:
		b.WriteByte('*')
	case OpQuestion:
		b.WriteByte('?')
	case OpCharClass:
		b.WriteByte('[')
		if in.class.Negated {
			b.WriteByte('!')
		}
		for _, c := range in.class.Chars {
			// '-' and '!' are escaped too: a bare '-' between members
			// would re-parse as a range, a bare leading '!' as negation.
			switch c {
			case ']', '\\', '-', '!':
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		for _, r := range in.class.Ranges {
			b.WriteByte(r.Lo)
			b.WriteByte('-')
			b.WriteByte(r.Hi)
		}
		b.WriteString(in.class.Classes.String())
		b.WriteByte(']')
	case OpAlternatives:
		b.WriteByte('{')
		for i, alt := range in.alts {
			if i > 0 {
				b.WriteByte(',')
			}
			appendProgram(b, alt)
		}
		b.WriteByte('}')
	}
}
