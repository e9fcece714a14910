package prog

// Compile compiles a glob pattern into an instruction program.
//
// Compile never fails: malformed constructs degrade to literals instead of
// producing an error. An unterminated bracket expression or brace group is
// emitted as a literal '[' or '{' and scanning resumes after it, and an
// unrecognized [:name:] class is re-parsed as ordinary class members. A
// caller matching many patterns against a filesystem walk should never have
// one malformed pattern abort the walk.
func Compile(pattern string) Program {
	var p Program
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			p = append(p, Inst{op: OpLiteral, lit: string(lit)})
			lit = lit[:0]
		}
	}

	i := 0
	for i < len(pattern) {
		switch c := pattern[i]; c {
		case '\\':
			// Escaped character is literal. A trailing backslash with
			// nothing following consumes only itself.
			i++
			if i < len(pattern) {
				lit = append(lit, pattern[i])
				i++
			}
		case '*':
			flush()
			p = append(p, Inst{op: OpStar})
			i++
		case '?':
			flush()
			p = append(p, Inst{op: OpQuestion})
			i++
		case '[':
			if class, next, ok := parseClass(pattern, i+1); ok {
				flush()
				p = append(p, Inst{op: OpCharClass, class: class})
				i = next
			} else {
				lit = append(lit, '[')
				i++
			}
		case '{':
			if alts, next, ok := parseBraces(pattern, i+1); ok {
				flush()
				p = append(p, Inst{op: OpAlternatives, alts: alts})
				i = next
			} else {
				lit = append(lit, '{')
				i++
			}
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()
	return p
}

// parseClass parses a bracket expression. i points just past the opening '['.
// Returns the class and the index just past the closing ']', or ok=false when
// no unescaped ']' terminates the expression before end of input.
func parseClass(pattern string, i int) (CharClass, int, bool) {
	var class CharClass
	if i < len(pattern) && pattern[i] == '!' {
		class.Negated = true
		i++
	}
	// A ']' immediately after '[' or '[!' is a literal member, not a
	// terminator (POSIX convention).
	first := true
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == ']' && !first:
			return class, i + 1, true
		case c == '\\':
			// Escaped members are always literal, never range endpoints.
			i++
			if i < len(pattern) {
				class.Chars = append(class.Chars, pattern[i])
				i++
			}
		case c == '[' && i+1 < len(pattern) && pattern[i+1] == ':':
			if bit, next, ok := parsePosixClass(pattern, i+2); ok {
				class.Classes |= bit
				i = next
			} else {
				// Unrecognized name: '[' is an ordinary member and the
				// rest is re-parsed as literal members.
				class.Chars = append(class.Chars, '[')
				i++
			}
		default:
			if i+2 < len(pattern) && pattern[i+1] == '-' && pattern[i+2] != ']' && pattern[i+2] != '\\' {
				class.Ranges = append(class.Ranges, Range{Lo: c, Hi: pattern[i+2]})
				i += 3
			} else {
				class.Chars = append(class.Chars, c)
				i++
			}
		}
		first = false
	}
	return CharClass{}, 0, false
}

// parsePosixClass parses "name:]" with i just past "[:". Returns the class
// bit and the index just past the closing ":]".
func parsePosixClass(pattern string, i int) (ClassSet, int, bool) {
	j := i
	for j < len(pattern) && pattern[j] != ':' && pattern[j] != ']' {
		j++
	}
	if j+1 >= len(pattern) || pattern[j] != ':' || pattern[j+1] != ']' {
		return 0, 0, false
	}
	bit := LookupClass(pattern[i:j])
	if bit == 0 {
		return 0, 0, false
	}
	return bit, j + 2, true
}

// parseBraces parses a brace group. i points just past the opening '{'.
// The group's span runs to the matching '}' (nesting tracked, escapes
// skipped); alternatives are split on ',' at depth 0 only and each segment,
// including empty ones, is recursively compiled. Returns ok=false when no
// matching '}' exists.
func parseBraces(pattern string, i int) ([]Program, int, bool) {
	var alts []Program
	depth := 0
	segStart := i
	for j := i; j < len(pattern); {
		switch pattern[j] {
		case '\\':
			j += 2
		case '{':
			depth++
			j++
		case '}':
			if depth == 0 {
				alts = append(alts, Compile(pattern[segStart:j]))
				return alts, j + 1, true
			}
			depth--
			j++
		case ',':
			if depth == 0 {
				alts = append(alts, Compile(pattern[segStart:j]))
				segStart = j + 1
			}
			j++
		default:
			j++
		}
	}
	return nil, 0, false
}
