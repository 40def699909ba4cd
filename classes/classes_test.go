package classes_test

import (
	"regexp"
	"testing"

	"github.com/rexlib/rex/classes"
	"github.com/rexlib/rex/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClasses_RenderedFragments pins the exact fragment behind each
// semantic name.
func TestClasses_RenderedFragments(t *testing.T) {
	cases := []struct {
		name string
		node pattern.Node
		want string
	}{
		{"Any", classes.Any, `.`},
		{"Digit", classes.Digit, `\d`},
		{"NonDigit", classes.NonDigit, `\D`},
		{"Word", classes.Word, `\w`},
		{"NonWord", classes.NonWord, `\W`},
		{"Whitespace", classes.Whitespace, `\s`},
		{"NonWhitespace", classes.NonWhitespace, `\S`},
		{"Lower", classes.Lower, `[a-z]`},
		{"Upper", classes.Upper, `[A-Z]`},
		{"Alpha", classes.Alpha, `[a-zA-Z]`},
		{"AlphaNumeric", classes.AlphaNumeric, `[0-9a-zA-Z]`},
		{"Newline", classes.Newline, `(?:\n|\r\n?)`},
		{"LineStart", classes.LineStart, `^`},
		{"LineEnd", classes.LineEnd, `$`},
		{"WordBoundary", classes.WordBoundary, `\b`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pattern.Render(tc.node), tc.name)
	}
}

// TestClasses_CompileStandalone: every table entry must be a valid
// pattern on its own — the first half of the table contract.
func TestClasses_CompileStandalone(t *testing.T) {
	entries := []pattern.Node{
		classes.Any, classes.Digit, classes.NonDigit,
		classes.Word, classes.NonWord,
		classes.Whitespace, classes.NonWhitespace,
		classes.Lower, classes.Upper, classes.Alpha, classes.AlphaNumeric,
		classes.Newline,
		classes.LineStart, classes.LineEnd,
		classes.TextStart, classes.TextEnd,
		classes.WordBoundary, classes.NonWordBoundary,
	}
	for i, n := range entries {
		p := pattern.Render(n)
		_, err := regexp.Compile(p)
		assert.NoError(t, err, "entry %d rendered %q must compile standalone", i, p)
	}
}

// TestClasses_CompileEmbedded: the InSet shorthands must stay valid when
// contributed into a larger bracket expression — the second half of the
// contract.
func TestClasses_CompileEmbedded(t *testing.T) {
	members := []pattern.SetMember{
		classes.DigitInSet, classes.NonDigitInSet,
		classes.WordInSet, classes.NonWordInSet,
		classes.WhitespaceInSet, classes.NonWhitespaceInSet,
	}
	for i, m := range members {
		set, err := pattern.Set(m, pattern.Char('-'), pattern.Range('a', 'f'))
		require.NoError(t, err, "member %d", i)
		p := pattern.Render(set)
		_, err = regexp.Compile(p)
		assert.NoError(t, err, "member %d embedded as %q must compile", i, p)
	}

	// Semantics spot-check: [\d_-] matches digits, underscore and dash.
	ident, err := pattern.Set(classes.DigitInSet, pattern.Char('_'), pattern.Char('-'))
	require.NoError(t, err)
	re := regexp.MustCompile("^" + pattern.Render(ident) + "$")
	for _, s := range []string{"7", "_", "-"} {
		assert.True(t, re.MatchString(s), "must match %q", s)
	}
	assert.False(t, re.MatchString("x"))
}

// TestClasses_Newline matches all three line-break conventions.
func TestClasses_Newline(t *testing.T) {
	re := regexp.MustCompile("^" + pattern.Render(classes.Newline) + "$")
	for _, s := range []string{"\n", "\r\n", "\r"} {
		assert.True(t, re.MatchString(s), "must match %q", s)
	}
}
