// This file declares the Node union, the SetMember value used by character
// sets, and the AnchorKind enumeration. Constructors live in api.go,
// rendering in render.go, escaping in escape.go.

package pattern

// Node is one vertex of a composition tree: a literal, character set,
// sequence, alternation, group, repetition or anchor.
//
// Nodes are immutable values. Composition always returns new nodes, so a
// node may appear in any number of trees and be rendered from any number
// of goroutines without synchronization. The interface is sealed; values
// are created only through the constructors in this package.
type Node interface {
	// node restricts implementations to this package.
	node()
}

// Unbounded marks a repetition with no upper bound, as in "a{3,}" or "a*".
const Unbounded = -1

// AnchorKind enumerates the zero-width assertions Anchor can emit.
type AnchorKind uint8

const (
	// LineStart asserts position at the start of input ("^").
	LineStart AnchorKind = iota

	// LineEnd asserts position at the end of input ("$").
	LineEnd

	// TextStart asserts absolute start of text (`\A`), unaffected by
	// multi-line mode.
	TextStart

	// TextEnd asserts absolute end of text (`\z`).
	TextEnd

	// WordBoundary asserts a word/non-word transition (`\b`).
	WordBoundary

	// NonWordBoundary asserts the absence of such a transition (`\B`).
	NonWordBoundary
)

// SetMember is one element of a character set: a single character, an
// inclusive character range, or a raw class-context shorthand such as \d.
// Build members with Char, Range and Shorthand; validation happens when
// the member is handed to Set or NegatedSet.
type SetMember struct {
	kind   memberKind
	lo, hi rune   // memberChar uses lo; memberRange uses lo..hi
	raw    string // memberShorthand only; trusted class-context text
}

type memberKind uint8

const (
	memberChar memberKind = iota
	memberRange
	memberShorthand
)

// literal is raw pattern text. Escaping, if any, happened at construction
// (Text escapes, Raw trusts); rendering emits the text verbatim.
type literal struct {
	text string
}

// charSet is a bracket expression; negated flips it to [^...].
type charSet struct {
	members []SetMember
	negated bool
}

// sequence is ordered concatenation. No implicit grouping exists between
// children; Render groups alternation children on the fly.
type sequence struct {
	children []Node
}

// alternation is an ordered list of branches joined by "|". Construction
// keeps it flat: a branch is never itself an alternation.
type alternation struct {
	children []Node
}

// group is explicit parenthesization. name != "" implies a named capture
// (?P<name>...); otherwise capturing selects (...) vs (?:...).
type group struct {
	child     Node
	capturing bool
	name      string
}

// repetition quantifies child; max == Unbounded means no upper bound.
// Invariant (checked at construction): 0 <= min, and min <= max when max
// is bounded.
type repetition struct {
	child    Node
	min, max int
}

// anchor is a zero-width assertion token.
type anchor struct {
	kind AnchorKind
}

func (literal) node()     {}
func (charSet) node()     {}
func (sequence) node()    {}
func (alternation) node() {}
func (group) node()       {}
func (repetition) node()  {}
func (anchor) node()      {}
