package pattern_test

import (
	"testing"

	"github.com/rexlib/rex/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_EmptyMembers verifies that a character set with zero members
// fails with ErrEmptySet, which also classifies as ErrConstruction.
func TestSet_EmptyMembers(t *testing.T) {
	_, err := pattern.Set()
	assert.ErrorIs(t, err, pattern.ErrEmptySet, "empty set must error")
	assert.ErrorIs(t, err, pattern.ErrConstruction, "ErrEmptySet must wrap ErrConstruction")

	_, err = pattern.NegatedSet()
	assert.ErrorIs(t, err, pattern.ErrEmptySet, "empty negated set must error")
}

// TestSet_ReversedRange ensures Range('z','a') is rejected at set
// construction rather than silently reordered.
func TestSet_ReversedRange(t *testing.T) {
	_, err := pattern.Set(pattern.Range('z', 'a'))
	assert.ErrorIs(t, err, pattern.ErrReversedRange, "reversed range must error")
	assert.ErrorIs(t, err, pattern.ErrConstruction)

	// A single-character range is legal.
	n, err := pattern.Set(pattern.Range('a', 'a'))
	require.NoError(t, err)
	assert.Equal(t, "[a-a]", pattern.Render(n))
}

// TestAlt_NoBranches verifies ErrNoAlternatives on an empty alternation.
func TestAlt_NoBranches(t *testing.T) {
	_, err := pattern.Alt()
	assert.ErrorIs(t, err, pattern.ErrNoAlternatives)
	assert.ErrorIs(t, err, pattern.ErrConstruction)
}

// TestRepeat_BadBounds covers every rejected bound combination: inverted,
// negative min, negative bounded max.
func TestRepeat_BadBounds(t *testing.T) {
	a := pattern.Text("a")

	_, err := pattern.Repeat(a, 3, 1)
	assert.ErrorIs(t, err, pattern.ErrBadBounds, "min > max must error")
	assert.ErrorIs(t, err, pattern.ErrConstruction)

	_, err = pattern.Repeat(a, -1, 2)
	assert.ErrorIs(t, err, pattern.ErrBadBounds, "negative min must error")

	_, err = pattern.Repeat(a, 0, -2)
	assert.ErrorIs(t, err, pattern.ErrBadBounds, "negative bounded max must error")

	_, err = pattern.Exactly(a, -1)
	assert.ErrorIs(t, err, pattern.ErrBadBounds, "Exactly(-1) must error")

	_, err = pattern.AtLeast(a, -3)
	assert.ErrorIs(t, err, pattern.ErrBadBounds, "AtLeast(-3) must error")
}

// TestRepeat_ZeroZero verifies that {0} is a legal, constructible bound.
func TestRepeat_ZeroZero(t *testing.T) {
	n, err := pattern.Repeat(pattern.Text("a"), 0, 0)
	require.NoError(t, err, "min=max=0 is legal")
	assert.Equal(t, "a{0}", pattern.Render(n))
}

// TestNamed_BadNames rejects names outside [A-Za-z_][A-Za-z0-9_]*.
func TestNamed_BadNames(t *testing.T) {
	child := pattern.Text("x")
	for _, name := range []string{"", "1a", "a-b", "a b", "héllo"} {
		_, err := pattern.Named(name, child)
		assert.ErrorIs(t, err, pattern.ErrBadGroupName, "name %q must be rejected", name)
	}
	for _, name := range []string{"a", "_", "year", "_tmp2", "A1_b"} {
		_, err := pattern.Named(name, child)
		assert.NoError(t, err, "name %q must be accepted", name)
	}
}

// TestSeq_ZeroChildren documents the package decision: an empty sequence
// is legal and renders the empty string (the empty match).
func TestSeq_ZeroChildren(t *testing.T) {
	assert.Equal(t, "", pattern.Render(pattern.Seq()))
}

// TestConstructors_Immutability re-renders a shared subtree after reusing
// it in two parents and after mutating the variadic slice that built it;
// the node must be unaffected either way.
func TestConstructors_Immutability(t *testing.T) {
	children := []pattern.Node{pattern.Text("a"), pattern.Text("b")}
	seq := pattern.Seq(children...)
	children[0] = pattern.Text("X") // caller's slice, not the node's
	assert.Equal(t, "ab", pattern.Render(seq), "Seq must copy its input slice")

	// One subtree, two parents: read-only reuse is safe.
	left := pattern.Seq(seq, pattern.Text("!"))
	right := pattern.OneOrMore(seq)
	assert.Equal(t, "ab!", pattern.Render(left))
	assert.Equal(t, "(?:ab)+", pattern.Render(right))
	assert.Equal(t, "ab", pattern.Render(seq), "shared subtree must stay intact")
}

// TestSet_CopiesMembers mirrors the slice-aliasing check for set members.
func TestSet_CopiesMembers(t *testing.T) {
	ms := []pattern.SetMember{pattern.Char('a'), pattern.Char('b')}
	set, err := pattern.Set(ms...)
	require.NoError(t, err)
	ms[1] = pattern.Char('Z')
	assert.Equal(t, "[ab]", pattern.Render(set))
}
