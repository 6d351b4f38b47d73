package document

import (
	"errors"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/napalu/grassplain/errs"
)

const hclFilename = "grassplain.hcl"

// labelled block types and the table they are collected in; nested
// subcommand blocks are collected under subcommandsKey
var blockTables = map[string]string{
	"argument":   "arguments",
	"option":     "options",
	"flag":       "flags",
	"subcommand": "subcommand",
}

const subcommandsKey = "subcommands"

func parseHCL(text string) (*Node, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(text), hclFilename)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &errs.ParseError{Format: HCL.String(), Err: errs.ErrUnexpectedBlock.WithArgs(hclFilename)}
	}

	root := NewTable()
	if err := convertBody(root, body, 0); err != nil {
		return nil, err
	}

	return root, nil
}

// bodyItem is an attribute or a block, ordered by source position
type bodyItem struct {
	offset int
	attr   *hclsyntax.Attribute
	block  *hclsyntax.Block
}

func convertBody(table *Node, body *hclsyntax.Body, depth int) error {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{offset: attr.SrcRange.Start.Byte, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{offset: block.TypeRange.Start.Byte, block: block})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].offset < items[j].offset
	})

	for _, item := range items {
		if item.attr != nil {
			value, err := convertExpr(item.attr.Expr)
			if err != nil {
				return err
			}
			table.Fields.Set(item.attr.Name, value)
			continue
		}
		if err := convertBlock(table, item.block, depth); err != nil {
			return err
		}
	}

	return nil
}

func convertBlock(table *Node, block *hclsyntax.Block, depth int) error {
	start := block.TypeRange.Start
	switch len(block.Labels) {
	case 0:
		if _, exists := table.Fields.Get(block.Type); exists {
			return rangeError(block.TypeRange, errs.ErrDuplicateLabel.WithArgs(block.Type, block.Type))
		}
		child := NewTable().at(start.Line, start.Column)
		table.Fields.Set(block.Type, child)
		return convertBody(child, block.Body, depth+1)
	case 1:
		key := tableKey(block.Type, depth)
		group, exists := table.Fields.Get(key)
		if !exists {
			group = NewTable().at(start.Line, start.Column)
			table.Fields.Set(key, group)
		} else if group.Kind != Table {
			return rangeError(block.TypeRange, errs.ErrUnexpectedBlock.WithArgs(block.Type))
		}

		label := block.Labels[0]
		if _, exists := group.Fields.Get(label); exists {
			return rangeError(block.LabelRanges[0], errs.ErrDuplicateLabel.WithArgs(block.Type, label))
		}
		child := NewTable().at(start.Line, start.Column)
		group.Fields.Set(label, child)
		return convertBody(child, block.Body, depth+1)
	default:
		return rangeError(block.TypeRange, errs.ErrBlockLabels.WithArgs(block.Type, 1, len(block.Labels)))
	}
}

// tableKey returns the table a labelled block is collected in. Only
// subcommand blocks at the top level use the singular key.
func tableKey(blockType string, depth int) string {
	if blockType == "subcommand" && depth > 0 {
		return subcommandsKey
	}
	if key, ok := blockTables[blockType]; ok {
		return key
	}

	return blockType
}

func convertExpr(expr hclsyntax.Expression) (*Node, error) {
	start := expr.Range().Start
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		table := NewTable().at(start.Line, start.Column)
		for _, item := range e.Items {
			keyVal, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return nil, diagnosticsError(diags)
			}
			var key string
			if err := gocty.FromCtyValue(keyVal, &key); err != nil {
				return nil, rangeError(item.KeyExpr.Range(), err)
			}
			value, err := convertExpr(item.ValueExpr)
			if err != nil {
				return nil, err
			}
			table.Fields.Set(key, value)
		}
		return table, nil
	case *hclsyntax.TupleConsExpr:
		arr := (&Node{Kind: Array, Items: make([]*Node, 0, len(e.Exprs))}).at(start.Line, start.Column)
		for _, itemExpr := range e.Exprs {
			item, err := convertExpr(itemExpr)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, item)
		}
		return arr, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags)
	}

	node, err := convertValue(val)
	if err != nil {
		return nil, rangeError(expr.Range(), err)
	}

	return node.at(start.Line, start.Column), nil
}

func convertValue(val cty.Value) (*Node, error) {
	if val.IsNull() {
		return &Node{Kind: Null}, nil
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, err
		}
		return NewString(s), nil
	case ty.Equals(cty.Number):
		var i int64
		if err := gocty.FromCtyValue(val, &i); err == nil {
			return NewInteger(i), nil
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return NewFloat(f), nil
	case ty.Equals(cty.Bool):
		var b bool
		if err := gocty.FromCtyValue(val, &b); err != nil {
			return nil, err
		}
		return NewBool(b), nil
	case ty.IsObjectType() || ty.IsMapType():
		table := NewTable()
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			child, err := convertValue(v)
			if err != nil {
				return nil, err
			}
			table.Fields.Set(k.AsString(), child)
		}
		return table, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		arr := &Node{Kind: Array}
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			child, err := convertValue(v)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, child)
		}
		return arr, nil
	default:
		return nil, errors.New(ty.FriendlyName())
	}
}

func diagnosticsError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}

		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		perr := &errs.ParseError{Format: HCL.String(), Err: errors.New(msg)}
		if diag.Subject != nil {
			perr.Line = diag.Subject.Start.Line
			perr.Column = diag.Subject.Start.Column
		}
		return perr
	}

	return &errs.ParseError{Format: HCL.String(), Err: diags}
}

func rangeError(rng hcl.Range, err error) error {
	return &errs.ParseError{
		Format: HCL.String(),
		Line:   rng.Start.Line,
		Column: rng.Start.Column,
		Err:    err,
	}
}
