package pattern_test

import (
	"regexp"
	"testing"

	"github.com/rexlib/rex/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEscape_LiteralTier escapes every free-text metacharacter and leaves
// everything else alone.
func TestEscape_LiteralTier(t *testing.T) {
	assert.Equal(t,
		`\.\+\*\?\(\)\|\[\]\{\}\^\$\\`,
		pattern.Render(pattern.Text(`.+*?()|[]{}^$\`)))

	// Characters special only inside a class stay bare in free text.
	assert.Equal(t, "a-z", pattern.Render(pattern.Text("a-z")))
	assert.Equal(t, "hello world", pattern.Render(pattern.Text("hello world")))
}

// TestEscape_ClassTier: inside a bracket expression only ] ^ \ - are
// escaped; free-text metacharacters like . + * stay bare.
func TestEscape_ClassTier(t *testing.T) {
	set, err := pattern.Set(
		pattern.Char(']'),
		pattern.Char('^'),
		pattern.Char('\\'),
		pattern.Char('-'),
		pattern.Char('.'),
		pattern.Char('+'),
		pattern.Char('*'),
	)
	require.NoError(t, err)
	got := pattern.Render(set)
	assert.Equal(t, `[\]\^\\\-.+*]`, got)

	re, err := regexp.Compile("^" + got + "$")
	require.NoError(t, err, "class-escaped set must compile")
	for _, s := range []string{"]", "^", `\`, "-", ".", "+", "*"} {
		assert.True(t, re.MatchString(s), "set must match %q", s)
	}
	assert.False(t, re.MatchString("a"))
}

// TestEscape_RangeEndpoints class-escapes range endpoints while the
// separating dash stays bare.
func TestEscape_RangeEndpoints(t *testing.T) {
	set, err := pattern.Set(pattern.Range('\\', '^'))
	require.NoError(t, err)
	got := pattern.Render(set)
	assert.Equal(t, `[\\-\^]`, got)

	re, err := regexp.Compile("^" + got + "$")
	require.NoError(t, err)
	assert.True(t, re.MatchString("]"), "']' lies between '\\' and '^'")
}

// TestEscape_TiersNeverMix: the same character escapes differently (or
// not at all) depending on context, which is exactly why the tiers are
// separate functions.
func TestEscape_TiersNeverMix(t *testing.T) {
	// '.' is meta in free text, ordinary in a class.
	assert.Equal(t, `\.`, pattern.Render(pattern.Text(".")))
	set, err := pattern.Set(pattern.Char('.'))
	require.NoError(t, err)
	assert.Equal(t, "[.]", pattern.Render(set))

	// '-' is ordinary in free text, meta in a class.
	assert.Equal(t, "-", pattern.Render(pattern.Text("-")))
	set, err = pattern.Set(pattern.Char('-'))
	require.NoError(t, err)
	assert.Equal(t, `[\-]`, pattern.Render(set))
}
