// Package rex builds regular expressions as trees of typed, immutable
// pattern nodes and renders them to plain pattern strings — no more
// hand-counting backslashes inside string literals.
//
// 🚀 What is rex?
//
//	A small, composition-first library that brings together:
//		• Typed nodes: literals, character sets, sequences, alternations,
//		  groups, repetitions and anchors
//		• A rendering engine that knows when a sub-pattern needs a
//		  non-capturing group and which escaping tier applies where
//		• A constant table of well-known character classes (\d, \w, \s, …)
//		• A fluent façade for callers who prefer chained calls
//
// ✨ Why choose rex?
//
//   - Correct by construction – invalid trees fail at build time with a
//     named error, never at match time deep inside an engine
//   - Immutable values – any node can be reused across trees and
//     goroutines without synchronization
//   - Dialect-portable – output sticks to the subset shared by Go's
//     regexp (RE2) and PCRE
//   - Pure Go – rendering never compiles or executes a pattern
//
// Everything is organized under three public packages:
//
//	pattern/ — node model, constructors, Render and escaping (the core)
//	classes/ — prebuilt nodes and set members for common classes
//	fluent/  — chainable builder sugar over pattern
//
// Quick example:
//
//	word, _ := pattern.Alt(pattern.Text("cat"), pattern.Text("dog"))
//	p := pattern.Render(pattern.Seq(
//	    pattern.Anchor(pattern.LineStart),
//	    word,
//	    pattern.OneOrMore(classes.Digit),
//	))
//	// p == `^(?:cat|dog)\d+`
//
// The rendered string is meant to be handed to a regex compiler such as
// regexp.Compile; rex itself never calls one.
//
//	go get github.com/rexlib/rex
package rex
