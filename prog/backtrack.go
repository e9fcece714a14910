package prog

// The matcher is a recursive backtracking procedure over the instruction
// program. Brace groups complicate it: after matching one alternative the
// engine must resume with whatever followed the group, at any nesting depth.
// That "what to match next" is threaded through the recursion as an explicit
// continuation: a transient node holding the trailing instructions plus a
// link to the outer continuation, forming a singly linked stack (innermost
// first). Continuations live only inside one Match call and never escape it.

// noMatch is the sentinel result of matchImpl, distinct from every valid
// consumed count (including zero).
const noMatch = -1

// continuation holds the instructions to match after the current sequence
// finishes, plus the enclosing continuation. Nodes are created only when
// entering a brace group that has trailing instructions.
type continuation struct {
	insts Program
	next  *continuation
}

// Match reports whether the program matches the entire candidate string.
// There is no partial or prefix matching.
//
// Star splits and brace alternatives are tried in a fixed order (increasing
// position; listed order) and the first success wins. Match is a decision
// procedure, not a capturing match, so the specific choice among multiple
// viable splits is unobservable.
//
// Match performs no heap allocation and is safe to call concurrently on the
// same Program. There is no guard against pathological backtracking:
// adversarial patterns stacking stars and brace groups can take exponential
// time.
func (p Program) Match(candidate string) bool {
	n := matchImpl(candidate, 0, p, nil)
	return n != noMatch && n == len(candidate)
}

// matchImpl matches insts against candidate starting at pos, with cont as
// the work remaining after insts is exhausted. It returns the total number
// of candidate bytes consumed (including by delegation to cont), or noMatch.
//
// Only the top-level caller enforces full consumption; nested calls return
// the first viable result and leave the final length check to it.
func matchImpl(candidate string, pos int, insts Program, cont *continuation) int {
	for idx := 0; idx < len(insts); idx++ {
		in := &insts[idx]
		switch in.op {
		case OpLiteral:
			end := pos + len(in.lit)
			if end > len(candidate) || candidate[pos:end] != in.lit {
				return noMatch
			}
			pos = end

		case OpQuestion:
			if pos >= len(candidate) {
				return noMatch
			}
			pos++

		case OpCharClass:
			if pos >= len(candidate) || !in.class.Contains(candidate[pos]) {
				return noMatch
			}
			pos++

		case OpStar:
			if idx == len(insts)-1 {
				if cont == nil {
					// Nothing left to satisfy: the star swallows the rest.
					return len(candidate)
				}
				for i := pos; i <= len(candidate); i++ {
					if n := matchImpl(candidate, i, cont.insts, cont.next); n != noMatch {
						return n
					}
				}
				return noMatch
			}
			for i := pos; i <= len(candidate); i++ {
				if n := matchImpl(candidate, i, insts[idx+1:], cont); n != noMatch {
					return n
				}
			}
			return noMatch

		case OpAlternatives:
			braceCont := cont
			if rem := insts[idx+1:]; len(rem) > 0 {
				braceCont = &continuation{insts: rem, next: cont}
			}
			for _, alt := range in.alts {
				n := matchImpl(candidate, pos, alt, braceCont)
				if n == noMatch {
					continue
				}
				if cont != nil {
					// Nested group: the outermost call checks full
					// consumption, first success stands.
					return n
				}
				if n == len(candidate) {
					return n
				}
				// Top-level group with a partial result: the remaining
				// alternatives may still consume everything.
			}
			return noMatch
		}
	}
	if cont != nil {
		return matchImpl(candidate, pos, cont.insts, cont.next)
	}
	return pos
}
