// escape.go — the two escaping tiers.
//
// Free text and bracket-expression interiors have different metacharacter
// sets. Mixing the tiers produces patterns that still compile but match
// the wrong language, so each tier is its own function and neither calls
// the other.

package pattern

import "strings"

// literalMeta is every character with special meaning in free pattern
// text. Matches the set regexp.QuoteMeta protects.
const literalMeta = `.+*?()|[]{}^$\`

// classMeta is every character with special meaning inside a bracket
// expression. Deliberately narrower than literalMeta: '-' is included so
// an escaped literal dash can never be misread as a range separator.
const classMeta = `]^\-`

// escapeLiteral returns s with every literal-context metacharacter
// preceded by a backslash. Applied exactly once, by Text, at construction;
// rendering never re-escapes.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, literalMeta) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if strings.ContainsRune(literalMeta, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeClassRune writes r into b escaped for bracket-expression context.
func writeClassRune(b *strings.Builder, r rune) {
	if strings.ContainsRune(classMeta, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
