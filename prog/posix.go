package prog

import "strings"

// ClassSet is a bitset of POSIX character classes active inside a bracket
// expression. Membership tests are ASCII-only.
type ClassSet uint16

const (
	ClassAlnum ClassSet = 1 << iota
	ClassAlpha
	ClassBlank
	ClassCntrl
	ClassDigit
	ClassGraph
	ClassLower
	ClassPrint
	ClassPunct
	ClassSpace
	ClassUpper
	ClassXdigit
)

// classNames lists the POSIX class names in canonical order, matching the
// bit order of the constants above. The stringifier renders classes in this
// order regardless of the order they appeared in the pattern.
var classNames = []string{
	"alnum", "alpha", "blank", "cntrl", "digit", "graph",
	"lower", "print", "punct", "space", "upper", "xdigit",
}

// LookupClass returns the bit for a POSIX class name, or 0 if the name is
// not recognized.
func LookupClass(name string) ClassSet {
	for i, n := range classNames {
		if n == name {
			return 1 << i
		}
	}
	return 0
}

// Contains reports whether c belongs to any class in the set.
func (s ClassSet) Contains(c byte) bool {
	for bit, i := ClassSet(1), 0; i < len(classNames); bit, i = bit<<1, i+1 {
		if s&bit != 0 && classContains(bit, c) {
			return true
		}
	}
	return false
}

// String renders the set as its bracketed class names in canonical order,
// e.g. "[:alpha:][:digit:]". Returns "" for the empty set.
func (s ClassSet) String() string {
	if s == 0 {
		return ""
	}
	var b strings.Builder
	for i, n := range classNames {
		if s&(1<<i) != 0 {
			b.WriteString("[:")
			b.WriteString(n)
			b.WriteString(":]")
		}
	}
	return b.String()
}

func classContains(class ClassSet, c byte) bool {
	switch class {
	case ClassAlnum:
		return isDigit(c) || isAlpha(c)
	case ClassAlpha:
		return isAlpha(c)
	case ClassBlank:
		return c == ' ' || c == '\t'
	case ClassCntrl:
		return c < 0x20 || c == 0x7f
	case ClassDigit:
		return isDigit(c)
	case ClassGraph:
		return c > 0x20 && c < 0x7f
	case ClassLower:
		return c >= 'a' && c <= 'z'
	case ClassPrint:
		return c >= 0x20 && c < 0x7f
	case ClassPunct:
		return c > 0x20 && c < 0x7f && !isDigit(c) && !isAlpha(c)
	case ClassSpace:
		return c == ' ' || (c >= '\t' && c <= '\r')
	case ClassUpper:
		return c >= 'A' && c <= 'Z'
	case ClassXdigit:
		return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
