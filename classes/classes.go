// Package classes is the constant table of rex: a fixed mapping from
// semantic names to prebuilt pattern nodes for the well-known character
// classes, plus set-member shorthands for embedding the same classes
// inside a larger bracket expression.
//
// Everything here is pure data, built once at package initialization and
// never mutated. Each node renders to a fragment that is valid standalone
// (Digit → `\d`) and, where an *InSet counterpart exists, valid inside a
// bracket expression too ([\d_-]).
//
// ⚙️ Usage:
//
//	phone := pattern.Seq(
//	    classes.LineStart,
//	    pattern.OneOrMore(classes.Digit),
//	    classes.LineEnd,
//	)
//
//	ident, _ := pattern.Set(classes.WordInSet, pattern.Char('-'))
package classes

import "github.com/rexlib/rex/pattern"

// Standalone class nodes.
var (
	// Any matches any character (the bare dot).
	Any = pattern.Raw(`.`)

	// Digit matches any decimal digit, `\d`.
	Digit = pattern.Raw(`\d`)

	// NonDigit matches anything but a decimal digit, `\D`.
	NonDigit = pattern.Raw(`\D`)

	// Word matches a word character (letter, digit or underscore), `\w`.
	Word = pattern.Raw(`\w`)

	// NonWord matches anything but a word character, `\W`.
	NonWord = pattern.Raw(`\W`)

	// Whitespace matches any whitespace character, `\s`.
	Whitespace = pattern.Raw(`\s`)

	// NonWhitespace matches anything but whitespace, `\S`.
	NonWhitespace = pattern.Raw(`\S`)

	// Lower matches one lowercase ASCII letter.
	Lower = mustSet(pattern.Range('a', 'z'))

	// Upper matches one uppercase ASCII letter.
	Upper = mustSet(pattern.Range('A', 'Z'))

	// Alpha matches one ASCII letter of either case.
	Alpha = mustSet(pattern.Range('a', 'z'), pattern.Range('A', 'Z'))

	// AlphaNumeric matches one ASCII letter or digit (no underscore —
	// use Word for the `\w` semantics).
	AlphaNumeric = mustSet(pattern.Range('0', '9'), pattern.Range('a', 'z'), pattern.Range('A', 'Z'))

	// Newline matches one line break portably across operating systems:
	// \n, \r\n or a bare \r.
	Newline = pattern.Raw(`(?:\n|\r\n?)`)
)

// Anchor nodes, re-exported here so a whole expression can often be
// assembled from this table alone.
var (
	// LineStart is the ^ assertion.
	LineStart = pattern.Anchor(pattern.LineStart)

	// LineEnd is the $ assertion.
	LineEnd = pattern.Anchor(pattern.LineEnd)

	// TextStart is the \A assertion.
	TextStart = pattern.Anchor(pattern.TextStart)

	// TextEnd is the \z assertion.
	TextEnd = pattern.Anchor(pattern.TextEnd)

	// WordBoundary is the \b assertion.
	WordBoundary = pattern.Anchor(pattern.WordBoundary)

	// NonWordBoundary is the \B assertion.
	NonWordBoundary = pattern.Anchor(pattern.NonWordBoundary)
)

// Set-member shorthands: the same classes in bracket-expression form, for
// pattern.Set / pattern.NegatedSet.
var (
	// DigitInSet contributes \d to a bracket expression.
	DigitInSet = pattern.Shorthand(`\d`)

	// NonDigitInSet contributes \D to a bracket expression.
	NonDigitInSet = pattern.Shorthand(`\D`)

	// WordInSet contributes \w to a bracket expression.
	WordInSet = pattern.Shorthand(`\w`)

	// NonWordInSet contributes \W to a bracket expression.
	NonWordInSet = pattern.Shorthand(`\W`)

	// WhitespaceInSet contributes \s to a bracket expression.
	WhitespaceInSet = pattern.Shorthand(`\s`)

	// NonWhitespaceInSet contributes \S to a bracket expression.
	NonWhitespaceInSet = pattern.Shorthand(`\S`)
)

// mustSet builds a table entry from members known valid at compile time.
func mustSet(members ...pattern.SetMember) pattern.Node {
	n, err := pattern.Set(members...)
	if err != nil {
		panic(err)
	}
	return n
}
