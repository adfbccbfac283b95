package extract

import (
	"bytes"
	"encoding/json"
	"sort"
)

// nodeKind enumerates the shapes a vendor response field can take
type nodeKind int

const (
	nodeAbsent nodeKind = iota
	nodeString
	nodeObject
	nodeArray
)

// Node models a vendor OCR response as a tagged union of string, mapping and
// array shapes. Scalar JSON values (numbers, booleans) are carried as their
// string form so labelled-field matching still sees them; anything that
// cannot be interpreted becomes an absent node and is skipped during
// scanning, never an error.
type Node struct {
	kind   nodeKind
	str    string
	object map[string]Node
	array  []Node
}

// StringNode wraps plain OCR text in a Node
func StringNode(text string) Node {
	return Node{kind: nodeString, str: text}
}

// ObjectNode builds a mapping Node from field values
func ObjectNode(fields map[string]Node) Node {
	return Node{kind: nodeObject, object: fields}
}

// ArrayNode builds an array Node from elements
func ArrayNode(items ...Node) Node {
	return Node{kind: nodeArray, array: items}
}

// ParseDocument decodes raw vendor JSON into a Node. Undecodable input
// yields an absent node rather than an error: the extractor treats it as
// text-free.
func ParseDocument(data []byte) Node {
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return Node{}
	}
	return node
}

// UnmarshalJSON decodes any JSON shape into the union. Unexpected shapes
// decode to an absent node; this method never reports an error so that one
// malformed field cannot abort scanning of its siblings.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*n = Node{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*n = Node{}
			return nil
		}
		*n = Node{kind: nodeString, str: s}
	case '{':
		var m map[string]Node
		if err := json.Unmarshal(trimmed, &m); err != nil {
			*n = Node{}
			return nil
		}
		*n = Node{kind: nodeObject, object: m}
	case '[':
		var a []Node
		if err := json.Unmarshal(trimmed, &a); err != nil {
			*n = Node{}
			return nil
		}
		*n = Node{kind: nodeArray, array: a}
	default:
		// Numbers and booleans are kept as text; null becomes absent
		if string(trimmed) == "null" {
			*n = Node{}
			return nil
		}
		*n = Node{kind: nodeString, str: string(trimmed)}
	}

	return nil
}

// IsString reports whether the node carries text
func (n Node) IsString() bool { return n.kind == nodeString }

// IsObject reports whether the node is a mapping
func (n Node) IsObject() bool { return n.kind == nodeObject }

// IsArray reports whether the node is an array
func (n Node) IsArray() bool { return n.kind == nodeArray }

// Text returns the node's text, empty for non-string nodes
func (n Node) Text() string {
	if n.kind != nodeString {
		return ""
	}
	return n.str
}

// Field looks up a mapping field by name
func (n Node) Field(name string) (Node, bool) {
	if n.kind != nodeObject {
		return Node{}, false
	}
	child, ok := n.object[name]
	return child, ok
}

// FieldNames returns the mapping's field names in sorted order so that
// scanning is deterministic
func (n Node) FieldNames() []string {
	if n.kind != nodeObject {
		return nil
	}
	names := make([]string, 0, len(n.object))
	for name := range n.object {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Items returns the array elements, nil for non-array nodes
func (n Node) Items() []Node {
	if n.kind != nodeArray {
		return nil
	}
	return n.array
}
