// Package treefile decodes a YAML description of a composition tree into
// a pattern node, for callers (the rex CLI foremost) that receive trees
// as data rather than as code.
//
// Every tree node is a one-key mapping naming its variant:
//
//	seq:
//	  - anchor: line-start
//	  - text: "v"
//	  - repeat: { of: { class: digit }, min: 1 }
//	  - capture:
//	      alt: [ { text: "alpha" }, { text: "beta" } ]
//
// Variants: text, raw, seq, alt, set, negated-set, repeat, group,
// capture, named, anchor, class. Set members are single-character
// scalars, { range: "a-z" } or { class: digit }. A repeat without max is
// unbounded.
//
// Decode errors carry the offending line and wrap a sentinel; pattern
// construction errors pass through unwrapped, so errors.Is against
// pattern.ErrConstruction still works end to end.
package treefile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rexlib/rex/classes"
	"github.com/rexlib/rex/pattern"
)

// Sentinel errors for document-shape problems (as opposed to pattern
// construction errors, which pass through from the pattern package).
var (
	// ErrEmptyDocument indicates the input held no YAML document.
	ErrEmptyDocument = errors.New("treefile: empty document")

	// ErrBadNode indicates a tree node that is not a one-key mapping.
	ErrBadNode = errors.New("treefile: node must be a mapping with exactly one variant key")

	// ErrUnknownVariant indicates an unrecognized variant key.
	ErrUnknownVariant = errors.New("treefile: unknown node variant")

	// ErrBadMember indicates a malformed set member.
	ErrBadMember = errors.New("treefile: bad set member")

	// ErrUnknownAnchor indicates an unrecognized anchor kind name.
	ErrUnknownAnchor = errors.New("treefile: unknown anchor kind")

	// ErrUnknownClass indicates a class name absent from the constant table.
	ErrUnknownClass = errors.New("treefile: unknown class name")

	// ErrBadRepeat indicates a repeat clause with a missing or malformed
	// "of", "min" or "max" field.
	ErrBadRepeat = errors.New("treefile: bad repeat clause")
)

// anchorKinds maps the document spelling to the pattern enumeration.
var anchorKinds = map[string]pattern.AnchorKind{
	"line-start":        pattern.LineStart,
	"line-end":          pattern.LineEnd,
	"text-start":        pattern.TextStart,
	"text-end":          pattern.TextEnd,
	"word-boundary":     pattern.WordBoundary,
	"non-word-boundary": pattern.NonWordBoundary,
}

// classNodes maps class names to constant-table nodes.
var classNodes = map[string]pattern.Node{
	"any":            classes.Any,
	"digit":          classes.Digit,
	"non-digit":      classes.NonDigit,
	"word":           classes.Word,
	"non-word":       classes.NonWord,
	"whitespace":     classes.Whitespace,
	"non-whitespace": classes.NonWhitespace,
	"lower":          classes.Lower,
	"upper":          classes.Upper,
	"alpha":          classes.Alpha,
	"alphanumeric":   classes.AlphaNumeric,
	"newline":        classes.Newline,
}

// classMembers maps class names to their bracket-expression form, for
// { class: ... } set members. Only the shorthand-backed classes qualify.
var classMembers = map[string]pattern.SetMember{
	"digit":          classes.DigitInSet,
	"non-digit":      classes.NonDigitInSet,
	"word":           classes.WordInSet,
	"non-word":       classes.NonWordInSet,
	"whitespace":     classes.WhitespaceInSet,
	"non-whitespace": classes.NonWhitespaceInSet,
}

// Parse decodes one YAML document into a pattern node.
func Parse(data []byte) (pattern.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("treefile: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return decodeNode(doc.Content[0])
}

// decodeNode dispatches on the single variant key of a tree node.
func decodeNode(n *yaml.Node) (pattern.Node, error) {
	if n.Kind == yaml.AliasNode {
		return decodeNode(n.Alias)
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("%w (line %d)", ErrBadNode, n.Line)
	}
	key, val := n.Content[0], n.Content[1]

	switch key.Value {
	case "text":
		var s string
		if err := val.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: text (line %d): %v", ErrBadNode, val.Line, err)
		}
		return pattern.Text(s), nil

	case "raw":
		var s string
		if err := val.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: raw (line %d): %v", ErrBadNode, val.Line, err)
		}
		return pattern.Raw(s), nil

	case "seq":
		children, err := decodeList(val)
		if err != nil {
			return nil, err
		}
		return pattern.Seq(children...), nil

	case "alt":
		children, err := decodeList(val)
		if err != nil {
			return nil, err
		}
		return pattern.Alt(children...)

	case "set":
		return decodeSet(val, false)

	case "negated-set":
		return decodeSet(val, true)

	case "repeat":
		return decodeRepeat(val)

	case "group":
		child, err := decodeNode(val)
		if err != nil {
			return nil, err
		}
		return pattern.Group(child), nil

	case "capture":
		child, err := decodeNode(val)
		if err != nil {
			return nil, err
		}
		return pattern.Capture(child), nil

	case "named":
		var clause struct {
			Name string    `yaml:"name"`
			Of   yaml.Node `yaml:"of"`
		}
		if err := val.Decode(&clause); err != nil {
			return nil, fmt.Errorf("%w: named (line %d): %v", ErrBadNode, val.Line, err)
		}
		child, err := decodeNode(&clause.Of)
		if err != nil {
			return nil, err
		}
		return pattern.Named(clause.Name, child)

	case "anchor":
		kind, ok := anchorKinds[val.Value]
		if !ok {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrUnknownAnchor, val.Value, val.Line)
		}
		return pattern.Anchor(kind), nil

	case "class":
		node, ok := classNodes[val.Value]
		if !ok {
			return nil, fmt.Errorf("%w: %q (line %d)", ErrUnknownClass, val.Value, val.Line)
		}
		return node, nil

	default:
		return nil, fmt.Errorf("%w: %q (line %d)", ErrUnknownVariant, key.Value, key.Line)
	}
}

func decodeList(val *yaml.Node) ([]pattern.Node, error) {
	if val.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list (line %d)", ErrBadNode, val.Line)
	}
	children := make([]pattern.Node, 0, len(val.Content))
	for _, item := range val.Content {
		child, err := decodeNode(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func decodeSet(val *yaml.Node, negated bool) (pattern.Node, error) {
	var clause struct {
		Members []yaml.Node `yaml:"members"`
	}
	if err := val.Decode(&clause); err != nil {
		return nil, fmt.Errorf("%w: set (line %d): %v", ErrBadNode, val.Line, err)
	}
	members := make([]pattern.SetMember, 0, len(clause.Members))
	for i := range clause.Members {
		m, err := decodeMember(&clause.Members[i])
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if negated {
		return pattern.NegatedSet(members...)
	}
	return pattern.Set(members...)
}

// decodeMember reads one set member: a single-character scalar,
// { range: "a-z" } or { class: digit }.
func decodeMember(n *yaml.Node) (pattern.SetMember, error) {
	var zero pattern.SetMember

	if n.Kind == yaml.ScalarNode {
		rs := []rune(n.Value)
		if len(rs) != 1 {
			return zero, fmt.Errorf("%w: %q is not a single character (line %d)", ErrBadMember, n.Value, n.Line)
		}
		return pattern.Char(rs[0]), nil
	}

	if n.Kind == yaml.MappingNode && len(n.Content) == 2 {
		key, val := n.Content[0], n.Content[1]
		switch key.Value {
		case "range":
			rs := []rune(val.Value)
			if len(rs) != 3 || rs[1] != '-' {
				return zero, fmt.Errorf("%w: range %q wants the form \"a-z\" (line %d)", ErrBadMember, val.Value, val.Line)
			}
			return pattern.Range(rs[0], rs[2]), nil
		case "class":
			m, ok := classMembers[val.Value]
			if !ok {
				return zero, fmt.Errorf("%w: %q has no bracket form (line %d)", ErrUnknownClass, val.Value, val.Line)
			}
			return m, nil
		}
	}

	return zero, fmt.Errorf("%w (line %d)", ErrBadMember, n.Line)
}

func decodeRepeat(val *yaml.Node) (pattern.Node, error) {
	var clause struct {
		// A *yaml.Node field decodes to an empty node under yaml.v3, so
		// "of" must be a value and absence shows as the zero Kind.
		Of  yaml.Node `yaml:"of"`
		Min int       `yaml:"min"`
		Max *int      `yaml:"max"`
	}
	if err := val.Decode(&clause); err != nil {
		return nil, fmt.Errorf("%w (line %d): %v", ErrBadRepeat, val.Line, err)
	}
	if clause.Of.Kind == 0 {
		return nil, fmt.Errorf("%w: missing \"of\" (line %d)", ErrBadRepeat, val.Line)
	}
	child, err := decodeNode(&clause.Of)
	if err != nil {
		return nil, err
	}
	max := pattern.Unbounded
	if clause.Max != nil {
		max = *clause.Max
	}
	return pattern.Repeat(child, clause.Min, max)
}
