// Package fluent is chainable sugar over pattern: every method appends
// to, wraps or branches an immutable expression and returns a new value,
// so chains read left to right the way the final pattern does.
//
// fluent adds no semantics of its own — each method is a one-line
// delegation to a pattern constructor. What it adds is ergonomics:
//
//   - value chaining — the receiver is never mutated, so any prefix of a
//     chain can be kept and extended in several directions safely;
//   - sticky errors — the first construction failure rides along and
//     surfaces once, at Build (or MustBuild), instead of forcing an error
//     check between every two calls.
//
// ⚙️ Usage:
//
//	p, err := fluent.Text("cat").
//	    Or(fluent.Text("dog")).
//	    Text("s").
//	    Build()
//	// p == "(?:cat|dog)s"
//
// Wrapping methods (ZeroOrMore, Optional, Capture, …) apply to the whole
// chain so far:
//
//	fluent.Text("ab").ZeroOrMore().MustBuild() // "(?:ab)*"
//
// For anything structurally interesting, drop down to pattern directly
// and lift the result back with fluent.From.
package fluent
