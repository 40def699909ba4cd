// api.go — public constructors for every node variant.
//
// Validation happens here, as early as possible: a constructor either
// returns a fully valid node or a sentinel wrapping ErrConstruction.
// No partially built node ever escapes. Constructors that cannot fail
// return Node directly; the rest return (Node, error).

package pattern

import "fmt"

// Text converts free text into a literal node, escaping every regex
// metacharacter in it. This is the one place literal-context escaping is
// applied; the resulting node renders verbatim forever after.
//
//	Text(".+") renders as `\.\+` and matches the two characters ".+".
func Text(s string) Node {
	return literal{text: escapeLiteral(s)}
}

// Raw wraps an already-valid pattern fragment without touching it. The
// caller vouches for its syntax; nothing is escaped, now or at render
// time. Use Text unless the fragment genuinely is pattern syntax
// (e.g. `\d`).
func Raw(s string) Node {
	return literal{text: s}
}

// Char builds a set member matching exactly the character r.
func Char(r rune) SetMember {
	return SetMember{kind: memberChar, lo: r}
}

// Range builds a set member matching every character from lo to hi
// inclusive. A reversed range is rejected by Set/NegatedSet with
// ErrReversedRange, never reordered silently.
func Range(lo, hi rune) SetMember {
	return SetMember{kind: memberRange, lo: lo, hi: hi}
}

// Shorthand wraps a raw class-context fragment, such as `\d` or `\p{L}`,
// for inclusion in a bracket expression. Like Raw, the caller vouches for
// its validity in class context. The classes package exposes prebuilt
// shorthands for the common table.
func Shorthand(s string) SetMember {
	return SetMember{kind: memberShorthand, raw: s}
}

// Set builds a character class from the given members: [abc0-9\d].
// Duplicate members are permitted and render exactly as written.
//
// Returns ErrEmptySet for zero members and ErrReversedRange for a range
// whose start exceeds its end.
func Set(members ...SetMember) (Node, error) {
	return newSet(members, false)
}

// NegatedSet is Set with matching inverted: [^...].
func NegatedSet(members ...SetMember) (Node, error) {
	return newSet(members, true)
}

func newSet(members []SetMember, negated bool) (Node, error) {
	if len(members) == 0 {
		return nil, ErrEmptySet
	}
	for _, m := range members {
		if m.kind == memberRange && m.lo > m.hi {
			return nil, fmt.Errorf("%w: %q > %q", ErrReversedRange, m.lo, m.hi)
		}
		if m.kind == memberShorthand && m.raw == "" {
			return nil, fmt.Errorf("%w: empty shorthand member", ErrConstruction)
		}
	}
	ms := make([]SetMember, len(members))
	copy(ms, members)
	return charSet{members: ms, negated: negated}, nil
}

// Seq concatenates children in order. Concatenation is associative, so
// nesting sequences does not change the rendered output.
//
// A zero-child sequence is legal and renders to the empty string — the
// empty match, equivalent to Raw(""). This is the identity element of
// concatenation and the natural seed value for builders.
func Seq(children ...Node) Node {
	cs := make([]Node, len(children))
	copy(cs, children)
	return sequence{children: cs}
}

// Alt builds an alternation over the given branches, tried left to right
// by the eventual engine, so order is preserved and significant.
//
// A branch that is itself an alternation is flattened: its branches are
// spliced, in order, directly into the new node. Rendering therefore
// yields "a|b|c", never "(?:a|b)|c". Returns ErrNoAlternatives for zero
// branches.
func Alt(children ...Node) (Node, error) {
	if len(children) == 0 {
		return nil, ErrNoAlternatives
	}
	cs := make([]Node, 0, len(children))
	for _, c := range children {
		if inner, ok := c.(alternation); ok {
			cs = append(cs, inner.children...)
			continue
		}
		cs = append(cs, c)
	}
	return alternation{children: cs}, nil
}

// Group wraps child in a non-capturing group (?:...).
func Group(child Node) Node {
	return group{child: child}
}

// Capture wraps child in a capturing group (...).
func Capture(child Node) Node {
	return group{child: child, capturing: true}
}

// Named wraps child in a named capturing group (?P<name>...), the
// spelling shared by RE2 and PCRE. The name must match
// [A-Za-z_][A-Za-z0-9_]*; anything else returns ErrBadGroupName.
func Named(name string, child Node) (Node, error) {
	if !validGroupName(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadGroupName, name)
	}
	return group{child: child, capturing: true, name: name}, nil
}

func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Repeat quantifies child to occur between min and max times inclusive.
// Pass Unbounded as max for no upper limit. Bounds must satisfy
// 0 <= min <= max; violations return ErrBadBounds — never a silent clamp.
//
// Rendering picks the tightest quantifier: * + ? {n} {m,} {m,n}. A child
// wider than one atom is wrapped in a non-capturing group first, so the
// quantifier always binds to the whole child.
func Repeat(child Node, min, max int) (Node, error) {
	if min < 0 {
		return nil, fmt.Errorf("%w: min %d is negative", ErrBadBounds, min)
	}
	if max != Unbounded {
		if max < 0 {
			return nil, fmt.Errorf("%w: max %d is negative", ErrBadBounds, max)
		}
		if min > max {
			return nil, fmt.Errorf("%w: min %d > max %d", ErrBadBounds, min, max)
		}
	}
	return repetition{child: child, min: min, max: max}, nil
}

// ZeroOrMore quantifies child with *.
func ZeroOrMore(child Node) Node {
	return repetition{child: child, min: 0, max: Unbounded}
}

// OneOrMore quantifies child with +.
func OneOrMore(child Node) Node {
	return repetition{child: child, min: 1, max: Unbounded}
}

// Optional quantifies child with ?.
func Optional(child Node) Node {
	return repetition{child: child, min: 0, max: 1}
}

// Exactly quantifies child with {n}. Negative n returns ErrBadBounds;
// n == 0 is legal and renders "{0}" (matches the empty string).
func Exactly(child Node, n int) (Node, error) {
	return Repeat(child, n, n)
}

// AtLeast quantifies child with {n,} (or the tighter * / + when n is
// 0 or 1). Negative n returns ErrBadBounds.
func AtLeast(child Node, n int) (Node, error) {
	return Repeat(child, n, Unbounded)
}

// Anchor returns the zero-width assertion node for kind.
func Anchor(kind AnchorKind) Node {
	return anchor{kind: kind}
}
