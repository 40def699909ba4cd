package fluent

import (
	"github.com/rexlib/rex/classes"
	"github.com/rexlib/rex/pattern"
)

// Expr is an in-progress expression: a pattern node plus the first
// construction error met along the chain, if any. The zero value is the
// empty expression; Expr is a value type and methods never mutate their
// receiver.
type Expr struct {
	node pattern.Node
	err  error
}

// New returns the empty expression (renders to "").
func New() Expr {
	return Expr{node: pattern.Seq()}
}

// base returns the underlying node, normalizing the zero value to the
// empty sequence so a chain may start from `var e Expr` as documented.
func (e Expr) base() pattern.Node {
	if e.node == nil {
		return pattern.Seq()
	}
	return e.node
}

// Text starts an expression from free text, escaping metacharacters.
func Text(s string) Expr {
	return Expr{node: pattern.Text(s)}
}

// Raw starts an expression from an already-valid pattern fragment.
func Raw(s string) Expr {
	return Expr{node: pattern.Raw(s)}
}

// From lifts any pattern node into a chain.
func From(n pattern.Node) Expr {
	return Expr{node: n}
}

// Then appends next to the expression.
func (e Expr) Then(next Expr) Expr {
	if e.err != nil {
		return e
	}
	if next.err != nil {
		return Expr{err: next.err}
	}
	return Expr{node: pattern.Seq(e.base(), next.base())}
}

// Text appends escaped free text.
func (e Expr) Text(s string) Expr {
	return e.Then(Text(s))
}

// Raw appends a trusted pattern fragment.
func (e Expr) Raw(s string) Expr {
	return e.Then(Raw(s))
}

// With appends a prebuilt node, typically a classes table entry.
func (e Expr) With(n pattern.Node) Expr {
	return e.Then(From(n))
}

// Or turns the expression into an alternation between itself and next,
// in that order. Chained Ors flatten: a.Or(b).Or(c) renders "a|b|c".
func (e Expr) Or(next Expr) Expr {
	if e.err != nil {
		return e
	}
	if next.err != nil {
		return Expr{err: next.err}
	}
	n, err := pattern.Alt(e.base(), next.base())
	return Expr{node: n, err: err}
}

// AnyOf appends a character set matching any one rune of chars.
// An empty chars surfaces ErrEmptySet at Build.
func (e Expr) AnyOf(chars string) Expr {
	return e.Then(set(chars, false))
}

// NoneOf appends a negated character set over the runes of chars.
func (e Expr) NoneOf(chars string) Expr {
	return e.Then(set(chars, true))
}

func set(chars string, negated bool) Expr {
	members := make([]pattern.SetMember, 0, len(chars))
	for _, r := range chars {
		members = append(members, pattern.Char(r))
	}
	var (
		n   pattern.Node
		err error
	)
	if negated {
		n, err = pattern.NegatedSet(members...)
	} else {
		n, err = pattern.Set(members...)
	}
	return Expr{node: n, err: err}
}

// Anything appends ".*" — zero or more of any character.
func (e Expr) Anything() Expr {
	return e.With(pattern.ZeroOrMore(classes.Any))
}

// Whitespace appends `\s*` — optional whitespace of any length.
func (e Expr) Whitespace() Expr {
	return e.With(pattern.ZeroOrMore(classes.Whitespace))
}

// Newlines appends zero or more portable line breaks (\n, \r\n or \r).
func (e Expr) Newlines() Expr {
	return e.With(pattern.ZeroOrMore(classes.Newline))
}

// StartOfLine appends the ^ assertion.
func (e Expr) StartOfLine() Expr {
	return e.With(classes.LineStart)
}

// EndOfLine appends the $ assertion.
func (e Expr) EndOfLine() Expr {
	return e.With(classes.LineEnd)
}

// WordBoundary appends the \b assertion.
func (e Expr) WordBoundary() Expr {
	return e.With(classes.WordBoundary)
}

// ZeroOrMore repeats the whole expression so far zero or more times.
func (e Expr) ZeroOrMore() Expr {
	if e.err != nil {
		return e
	}
	return Expr{node: pattern.ZeroOrMore(e.base())}
}

// OneOrMore repeats the whole expression so far one or more times.
func (e Expr) OneOrMore() Expr {
	if e.err != nil {
		return e
	}
	return Expr{node: pattern.OneOrMore(e.base())}
}

// Optional makes the whole expression so far optional.
func (e Expr) Optional() Expr {
	if e.err != nil {
		return e
	}
	return Expr{node: pattern.Optional(e.base())}
}

// Exactly repeats the whole expression exactly n times ({n}).
func (e Expr) Exactly(n int) Expr {
	if e.err != nil {
		return e
	}
	node, err := pattern.Exactly(e.base(), n)
	return Expr{node: node, err: err}
}

// AtLeast repeats the whole expression n or more times ({n,}).
func (e Expr) AtLeast(n int) Expr {
	if e.err != nil {
		return e
	}
	node, err := pattern.AtLeast(e.base(), n)
	return Expr{node: node, err: err}
}

// Between repeats the whole expression between m and n times inclusive.
func (e Expr) Between(m, n int) Expr {
	if e.err != nil {
		return e
	}
	node, err := pattern.Repeat(e.base(), m, n)
	return Expr{node: node, err: err}
}

// Capture wraps the whole expression in a capturing group.
func (e Expr) Capture() Expr {
	if e.err != nil {
		return e
	}
	return Expr{node: pattern.Capture(e.base())}
}

// Group wraps the whole expression in a non-capturing group.
func (e Expr) Group() Expr {
	if e.err != nil {
		return e
	}
	return Expr{node: pattern.Group(e.base())}
}

// Named wraps the whole expression in a named capturing group.
func (e Expr) Named(name string) Expr {
	if e.err != nil {
		return e
	}
	node, err := pattern.Named(name, e.base())
	return Expr{node: node, err: err}
}

// Node returns the underlying pattern node, or the first error met along
// the chain.
func (e Expr) Node() (pattern.Node, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.base(), nil
}

// Err returns the first error met along the chain, if any.
func (e Expr) Err() error {
	return e.err
}

// Build renders the expression, or returns the first chain error.
func (e Expr) Build() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return pattern.Render(e.base()), nil
}

// MustBuild is Build for chains known valid at compile time; it panics
// on a chain error.
func (e Expr) MustBuild() string {
	s, err := e.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer; an errored chain prints as "".
func (e Expr) String() string {
	s, _ := e.Build()
	return s
}
