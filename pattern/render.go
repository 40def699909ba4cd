// render.go — turn a node tree into one pattern string.
//
// Render is pure and total over constructed trees: same tree in, byte-
// identical string out, no error path. The two correctness-critical rules
// live here: an alternation inside a sequence is grouped before
// concatenation, and a multi-atom repetition child is grouped before its
// quantifier.

package pattern

import (
	"fmt"
	"strings"
)

// Render converts a composition tree into a pattern string in the subset
// shared by RE2 and PCRE. It may be called concurrently on the same or
// different trees.
//
// Complexity: O(n) in node count.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case literal:
		b.WriteString(v.text)

	case charSet:
		b.WriteByte('[')
		if v.negated {
			b.WriteByte('^')
		}
		for _, m := range v.members {
			renderMember(b, m)
		}
		b.WriteByte(']')

	case sequence:
		for _, c := range v.children {
			// Alternation binds loosest; inline it and "ab|c" would no
			// longer mean "a(b|c)". Group before concatenating.
			if _, ok := c.(alternation); ok {
				renderGrouped(b, c)
				continue
			}
			render(b, c)
		}

	case alternation:
		for i, c := range v.children {
			if i > 0 {
				b.WriteByte('|')
			}
			render(b, c)
		}

	case group:
		switch {
		case v.name != "":
			b.WriteString("(?P<")
			b.WriteString(v.name)
			b.WriteByte('>')
		case v.capturing:
			b.WriteByte('(')
		default:
			b.WriteString("(?:")
		}
		render(b, v.child)
		b.WriteByte(')')

	case repetition:
		// A quantifier binds to exactly one preceding atom.
		if quantifiable(v.child) {
			render(b, v.child)
		} else {
			renderGrouped(b, v.child)
		}
		b.WriteString(quantifier(v.min, v.max))

	case anchor:
		b.WriteString(anchorToken(v.kind))

	default:
		// A variant without a render rule is a defect in this package,
		// not a runtime condition.
		panic(fmt.Sprintf("pattern: no render rule for %T", n))
	}
}

// renderGrouped renders n inside a non-capturing group.
func renderGrouped(b *strings.Builder, n Node) {
	b.WriteString("(?:")
	render(b, n)
	b.WriteByte(')')
}

func renderMember(b *strings.Builder, m SetMember) {
	switch m.kind {
	case memberChar:
		writeClassRune(b, m.lo)
	case memberRange:
		writeClassRune(b, m.lo)
		b.WriteByte('-')
		writeClassRune(b, m.hi)
	case memberShorthand:
		b.WriteString(m.raw)
	default:
		panic(fmt.Sprintf("pattern: no render rule for set member kind %d", m.kind))
	}
}

// quantifiable reports whether child is a single atom a quantifier may
// follow directly: a one-atom literal, a character class, or a node that
// already carries its own parentheses. Everything else gets wrapped.
func quantifiable(child Node) bool {
	switch c := child.(type) {
	case literal:
		return isAtom(c.text)
	case charSet:
		return true
	case group:
		return true
	default:
		return false
	}
}

// isAtom reports whether literal text is one quantifiable unit: a single
// rune, or a backslash escape such as `\d` or `\.`.
func isAtom(text string) bool {
	rs := []rune(text)
	switch len(rs) {
	case 1:
		return true
	case 2:
		return rs[0] == '\\'
	default:
		return false
	}
}

// quantifier returns the tightest spelling for the bounds.
func quantifier(min, max int) string {
	switch {
	case min == 0 && max == Unbounded:
		return "*"
	case min == 1 && max == Unbounded:
		return "+"
	case min == 0 && max == 1:
		return "?"
	case max == Unbounded:
		return fmt.Sprintf("{%d,}", min)
	case min == max:
		return fmt.Sprintf("{%d}", min)
	default:
		return fmt.Sprintf("{%d,%d}", min, max)
	}
}

func anchorToken(kind AnchorKind) string {
	switch kind {
	case LineStart:
		return "^"
	case LineEnd:
		return "$"
	case TextStart:
		return `\A`
	case TextEnd:
		return `\z`
	case WordBoundary:
		return `\b`
	case NonWordBoundary:
		return `\B`
	default:
		panic(fmt.Sprintf("pattern: no token for anchor kind %d", kind))
	}
}
