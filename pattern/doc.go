// Package pattern is the composition core of rex: a typed node model for
// regular expressions plus the rendering rules that turn a node tree into
// one valid pattern string.
//
// 🚀 What is pattern?
//
//	Seven node variants cover the common regex surface:
//	  • Text / Raw      — literal fragments (escaped vs. trusted)
//	  • Set / NegatedSet — character classes with chars, ranges, shorthands
//	  • Seq             — ordered concatenation
//	  • Alt             — alternation, flattened and |-joined
//	  • Group / Capture / Named — explicit parenthesization
//	  • Repeat (+ ZeroOrMore, OneOrMore, Optional, Exactly, AtLeast)
//	  • Anchor          — ^ $ \A \z \b \B
//
// ✨ Key guarantees:
//
//   - Immutability – every node is a frozen value; constructors copy their
//     inputs and composition never mutates, so nodes can be shared across
//     trees and goroutines freely.
//   - Early validation – structurally invalid input (empty set, reversed
//     repetition bounds, …) fails at construction with a sentinel error
//     wrapping ErrConstruction; Render is total over constructed trees.
//   - Precedence safety – Render inserts non-capturing groups exactly where
//     concatenation or a quantifier would otherwise change meaning
//     ("ab|c" vs "a(?:b|c)", "ab*" vs "(?:ab)*").
//   - Two escaping tiers – free text and bracket-expression interiors use
//     different metacharacter sets and are never mixed.
//
// ⚙️ Usage:
//
//	import "github.com/rexlib/rex/pattern"
//
//	hex, err := pattern.Set(
//	    pattern.Range('0', '9'),
//	    pattern.Range('a', 'f'),
//	)
//	if err != nil {
//	    // ErrEmptySet / ErrReversedRange — both wrap ErrConstruction
//	}
//	color := pattern.Seq(pattern.Text("#"), pattern.Exactly(hex, 6))
//	pattern.Render(color) // "#[0-9a-f]{6}"
//
// Rendering conforms to the subset shared by RE2 (Go's regexp) and PCRE;
// the resulting string is meant for an external compiler — pattern itself
// never matches anything.
//
// Complexity: Render is a single traversal, O(n) in node count.
package pattern
