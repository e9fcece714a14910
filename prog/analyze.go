package prog

// Analysis holds compile-time facts about a program, used by callers to
// reject candidates cheaply before running the backtracking matcher and to
// select fast-path strategies.
type Analysis struct {
	// MinWidth is the minimum candidate length that can possibly match.
	MinWidth int

	// Variable reports whether matches of different lengths are possible.
	// When false, only candidates of exactly MinWidth can match.
	Variable bool

	// Prefix is literal text every match must start with (the leading
	// literal run of the program; empty when the program starts with a
	// non-literal instruction).
	Prefix string

	// Suffix is literal text every match must end with.
	Suffix string
}

// Analyze computes matching facts for a compiled program.
func Analyze(p Program) Analysis {
	a := Analysis{
		MinWidth: minWidth(p),
		Variable: variableWidth(p),
	}
	for i := range p {
		if p[i].op != OpLiteral {
			break
		}
		a.Prefix += p[i].lit
	}
	// A fully literal program contributes its whole text as both affixes;
	// harmless, since affix checks are only ever conservative rejections.
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].op != OpLiteral {
			break
		}
		a.Suffix = p[i].lit + a.Suffix
	}
	return a
}

func minWidth(p Program) int {
	w := 0
	for i := range p {
		switch p[i].op {
		case OpLiteral:
			w += len(p[i].lit)
		case OpQuestion, OpCharClass:
			w++
		case OpAlternatives:
			min := -1
			for _, alt := range p[i].alts {
				if aw := minWidth(alt); min < 0 || aw < min {
					min = aw
				}
			}
			if min > 0 {
				w += min
			}
		}
	}
	return w
}

func variableWidth(p Program) bool {
	for i := range p {
		switch p[i].op {
		case OpStar:
			return true
		case OpAlternatives:
			alts := p[i].alts
			for _, alt := range alts {
				if variableWidth(alt) {
					return true
				}
			}
			// Fixed-width alternatives of different widths still make the
			// whole program variable.
			if len(alts) > 1 {
				w := minWidth(alts[0])
				for _, alt := range alts[1:] {
					if minWidth(alt) != w {
						return true
					}
				}
			}
		}
	}
	return false
}
