package document

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/napalu/grassplain/errs"
)

func parseTOML(text string) (*Node, error) {
	var raw map[string]any
	md, err := toml.Decode(text, &raw)
	if err != nil {
		return nil, tomlError(text, err)
	}

	root := NewTable()
	for _, key := range md.Keys() {
		insertKey(root, raw, key)
	}
	// keys the metadata did not report are appended in sorted order
	fillTable(root, raw)

	return root, nil
}

func tomlError(text string, err error) error {
	var pe toml.ParseError
	if !errors.As(err, &pe) {
		return &errs.ParseError{Format: TOML.String(), Err: err}
	}

	line := pe.Position.Line
	column := 0
	if start := pe.Position.Start; start >= 0 && start <= len(text) {
		column = start - strings.LastIndex(text[:start], "\n")
	}

	return &errs.ParseError{
		Format: TOML.String(),
		Line:   line,
		Column: column,
		Err:    errors.New(pe.Message),
	}
}

// insertKey creates the nodes for one metadata key, walking the raw decoded
// value alongside. Keys below arrays of tables are covered by the array node.
func insertKey(root *Node, raw map[string]any, key toml.Key) {
	node := root
	current := raw
	for i, segment := range key {
		value, ok := current[segment]
		if !ok {
			return
		}

		last := i == len(key)-1
		child, exists := node.Fields.Get(segment)
		if !exists {
			if table, isTable := value.(map[string]any); isTable {
				child = NewTable()
				node.Fields.Set(segment, child)
				if last {
					return
				}
				node, current = child, table
				continue
			}
			if !last {
				return
			}
			node.Fields.Set(segment, convertRaw(value))
			return
		}

		if last || child.Kind != Table {
			return
		}
		table, isTable := value.(map[string]any)
		if !isTable {
			return
		}
		node, current = child, table
	}
}

func fillTable(node *Node, raw map[string]any) {
	for _, key := range sortedRawKeys(raw) {
		child, exists := node.Fields.Get(key)
		if !exists {
			node.Fields.Set(key, convertRaw(raw[key]))
			continue
		}
		if table, ok := raw[key].(map[string]any); ok && child.Kind == Table {
			fillTable(child, table)
		}
	}
}

func convertRaw(value any) *Node {
	switch v := value.(type) {
	case map[string]any:
		table := NewTable()
		fillTable(table, v)
		return table
	case []map[string]any:
		arr := &Node{Kind: Array, Items: make([]*Node, 0, len(v))}
		for _, item := range v {
			arr.Items = append(arr.Items, convertRaw(item))
		}
		return arr
	case []any:
		arr := &Node{Kind: Array, Items: make([]*Node, 0, len(v))}
		for _, item := range v {
			arr.Items = append(arr.Items, convertRaw(item))
		}
		return arr
	case string:
		return NewString(v)
	case int64:
		return NewInteger(v)
	case float64:
		return NewFloat(v)
	case bool:
		return NewBool(v)
	case fmt.Stringer:
		return &Node{Kind: Datetime, Value: v.String()}
	default:
		return &Node{Kind: Datetime, Value: fmt.Sprint(v)}
	}
}

func sortedRawKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
