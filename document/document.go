// Package document turns specification text into a format-neutral, ordered
// tree. Tables keep the order in which their keys appear in the source, which
// is what lets the loader report violations and the emitters declare entries
// in document order.
package document

import (
	"fmt"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/grassplain/errs"
)

// Kind is the type of a document node
type Kind int

const (
	Null Kind = iota
	Table
	Array
	String
	Integer
	Float
	Bool
	Datetime
)

// String returns the name used for a Kind in diagnostics
func (k Kind) String() string {
	switch k {
	case Table:
		return "table"
	case Array:
		return "array"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "boolean"
	case Datetime:
		return "datetime"
	case Null:
		fallthrough
	default:
		return "null"
	}
}

// Node is one value of a document. Fields is set for tables, Items for
// arrays and Value for scalars (string, int64, float64, bool or a date/time
// value of the source format). Line and Column are 1-based, or 0 when the
// front end does not track locations.
type Node struct {
	Kind   Kind
	Fields *orderedmap.OrderedMap[string, *Node]
	Items  []*Node
	Value  any
	Line   int
	Column int
}

func NewTable() *Node {
	return &Node{Kind: Table, Fields: orderedmap.New[string, *Node]()}
}

func NewString(s string) *Node {
	return &Node{Kind: String, Value: s}
}

func NewInteger(i int64) *Node {
	return &Node{Kind: Integer, Value: i}
}

func NewFloat(f float64) *Node {
	return &Node{Kind: Float, Value: f}
}

func NewBool(b bool) *Node {
	return &Node{Kind: Bool, Value: b}
}

// Get returns the field key of a table node
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Table {
		return nil, false
	}

	return n.Fields.Get(key)
}

// Keys returns the keys of a table node in document order
func (n *Node) Keys() []string {
	if n == nil || n.Kind != Table {
		return nil
	}

	keys := make([]string, 0, n.Fields.Len())
	for pair := n.Fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Describe renders a scalar for diagnostics, e.g. `string "x"` or `table`
func (n *Node) Describe() string {
	switch n.Kind {
	case String:
		return fmt.Sprintf("%s %q", n.Kind, n.Value)
	case Integer, Float, Bool, Datetime:
		return fmt.Sprintf("%s %v", n.Kind, n.Value)
	default:
		return n.Kind.String()
	}
}

func (n *Node) at(line, column int) *Node {
	n.Line, n.Column = line, column
	return n
}

// Format identifies the syntax of a document
type Format int

const (
	TOML Format = iota
	HCL
)

func (f Format) String() string {
	switch f {
	case HCL:
		return "HCL"
	case TOML:
		fallthrough
	default:
		return "TOML"
	}
}

// ParseFormat maps a format name such as "toml" or "hcl" to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return TOML, nil
	case "hcl":
		return HCL, nil
	default:
		return TOML, errs.ErrUnsupportedFormat.WithArgs(name)
	}
}

// FormatForPath picks the format from a file extension; anything but .hcl is TOML
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return HCL
	}

	return TOML
}

// Parse converts text into a document tree whose root is a table. Malformed
// text yields an *errs.ParseError.
func Parse(text string, format Format) (*Node, error) {
	switch format {
	case HCL:
		return parseHCL(text)
	default:
		return parseTOML(text)
	}
}
