// errors.go — sentinel errors for the pattern package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never by string comparison.
//   - Every construction-time sentinel wraps ErrConstruction, so callers
//     may test for the whole class or for the specific cause.
//   - Render never returns an error: all validation happens at
//     construction, and rendering is total over constructed trees.

package pattern

import (
	"errors"
	"fmt"
)

// ErrConstruction is the umbrella for every structurally-invalid-input
// error raised by a constructor. errors.Is(err, ErrConstruction) holds for
// all sentinels below.
var ErrConstruction = errors.New("pattern: invalid construction")

// ErrEmptySet indicates Set or NegatedSet was given zero members.
// A bracket expression must match at least one character position.
// Usage: if errors.Is(err, ErrEmptySet) { /* supply members */ }.
var ErrEmptySet = fmt.Errorf("%w: character set needs at least one member", ErrConstruction)

// ErrReversedRange indicates a Range member whose start exceeds its end,
// e.g. Range('z', 'a'). Bounds are never silently swapped or clamped.
var ErrReversedRange = fmt.Errorf("%w: character range start exceeds end", ErrConstruction)

// ErrNoAlternatives indicates Alt was given zero branches. An alternation
// over nothing has no meaning; a zero-child Seq (empty match) is the legal
// way to express "nothing".
var ErrNoAlternatives = fmt.Errorf("%w: alternation needs at least one branch", ErrConstruction)

// ErrBadBounds indicates repetition bounds that violate
// 0 <= min <= max: a negative bound, or min > max with max bounded.
// Usage: if errors.Is(err, ErrBadBounds) { /* fix min/max */ }.
var ErrBadBounds = fmt.Errorf("%w: repetition bounds out of order", ErrConstruction)

// ErrBadGroupName indicates a Named capture whose name is empty or not of
// the form [A-Za-z_][A-Za-z0-9_]*, the spelling both RE2 and PCRE accept.
var ErrBadGroupName = fmt.Errorf("%w: capture group name is invalid", ErrConstruction)
