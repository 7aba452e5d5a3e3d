package template

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies which of the three value shapes a Value holds.
type Kind int

const (
	// KindNull is an explicitly empty value (`key:` or `key: null`).
	KindNull Kind = iota
	// KindString is a scalar value kept as its literal text.
	KindString
	// KindSequence is an ordered list of scalar strings.
	KindSequence
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// nullLiteral is how a null value renders into a template body.
const nullLiteral = "null"

// Value is a header variable value: null, a string, or a sequence of strings.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	seq  []string
}

// NullValue returns the null value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// SequenceValue returns a sequence value holding a copy of items.
func SequenceValue(items ...string) Value {
	seq := make([]string, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, seq: seq}
}

// Kind returns the value's shape.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string held by v. ok is false unless v is a string.
func (v Value) Str() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Strings returns a copy of the sequence held by v. ok is false unless v is a sequence.
func (v Value) Strings() (items []string, ok bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	return slices.Clone(v.seq), true
}

// Equal reports whether two values have the same shape and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindSequence:
		return slices.Equal(v.seq, other.seq)
	default:
		return true
	}
}

// String renders the value the way it is substituted into a body: strings
// verbatim, null as "null", sequences in block form ("- a\n- b").
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindSequence:
		if len(v.seq) == 0 {
			return "[]"
		}
		out, err := yaml.Marshal(v.seq)
		if err != nil {
			// Marshalling a []string cannot fail; keep a readable fallback anyway.
			return strings.Join(v.seq, "\n")
		}
		return strings.TrimSpace(string(out))
	default:
		return nullLiteral
	}
}

// decodeHeader decodes a header block into a flat variable mapping.
func decodeHeader(header string) (map[string]Value, error) {
	vars := make(map[string]Value)

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return vars, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		// comment-only header
		return vars, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("header must be a mapping of variables, got %s", nodeKindName(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := resolveAlias(root.Content[i])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: variable names must be scalars", keyNode.Line)
		}
		if _, dup := vars[keyNode.Value]; dup {
			return nil, fmt.Errorf("line %d: variable %q is defined more than once", keyNode.Line, keyNode.Value)
		}

		value, err := decodeValue(keyNode.Value, resolveAlias(root.Content[i+1]))
		if err != nil {
			return nil, err
		}
		vars[keyNode.Value] = value
	}

	return vars, nil
}

func decodeValue(key string, node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return NullValue(), nil
		}
		return StringValue(node.Value), nil

	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: variable %q: sequences may only contain scalars, got %s",
					item.Line, key, nodeKindName(item))
			}
			if item.ShortTag() == "!!null" {
				items = append(items, nullLiteral)
				continue
			}
			items = append(items, item.Value)
		}
		return SequenceValue(items...), nil

	default:
		return Value{}, fmt.Errorf("line %d: variable %q: unsupported value of kind %s (expected null, string or sequence)",
			node.Line, key, nodeKindName(node))
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func nodeKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
