package schema

import (
	"errors"
	"strings"

	"github.com/ef-ds/deque"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/grassplain/internal/util"
)

// SkipChildren can be returned by a WalkFunc to leave out the descendants of
// the current node
var SkipChildren = errors.New("skip children")

// Node is a scope visited by Walk. The root node stands for the global scope
// and has an empty Path and a nil Command.
type Node struct {
	Path    []string
	Scope   *Scope
	Command *Subcommand
	Parent  *Node
}

// WalkFunc is called for each node; returning an error other than SkipChildren stops the walk
type WalkFunc func(n *Node) error

// Name returns the last path element, or "" for the root
func (n *Node) Name() string {
	if len(n.Path) == 0 {
		return ""
	}

	return n.Path[len(n.Path)-1]
}

// IsRoot reports whether n stands for the global scope
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Depth is the number of subcommand names leading to n
func (n *Node) Depth() int {
	return len(n.Path)
}

// PathString joins the path with single spaces, the way it is typed on the command line
func (n *Node) PathString() string {
	return strings.Join(n.Path, " ")
}

// Description returns the subcommand description, or "" for the root
func (n *Node) Description() string {
	if n.Command == nil {
		return ""
	}

	return n.Command.Description
}

// Children returns the child subcommands of n
func (n *Node) Children(cfg *ConfigurationFile) *orderedmap.OrderedMap[string, *Subcommand] {
	if n.Command == nil {
		return cfg.Subcommands
	}

	return n.Command.Subcommands
}

// Chain returns the nodes from the root down to n
func (n *Node) Chain() []*Node {
	chain := make([]*Node, 0, n.Depth()+1)
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	util.Reverse(chain)

	return chain
}

// Child returns the node for the child subcommand name of n
func (n *Node) Child(cfg *ConfigurationFile, name string) (*Node, bool) {
	sub, ok := n.Children(cfg).Get(name)
	if !ok {
		return nil, false
	}

	return n.child(name, sub), true
}

func (n *Node) child(name string, sub *Subcommand) *Node {
	path := make([]string, len(n.Path), len(n.Path)+1)
	copy(path, n.Path)

	return &Node{
		Path:    append(path, name),
		Scope:   &sub.Scope,
		Command: sub,
		Parent:  n,
	}
}

// Root returns the node standing for the global scope of cfg
func (cfg *ConfigurationFile) Root() *Node {
	return &Node{Path: []string{}, Scope: &cfg.Global}
}

// Walk visits every scope of cfg depth-first in declaration order: the global
// scope first, then each root subcommand followed by its descendants. The
// traversal is iterative, so deeply nested documents do not grow the call stack.
func Walk(cfg *ConfigurationFile, fn WalkFunc) error {
	stack := deque.New()
	stack.PushBack(cfg.Root())

	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		node := v.(*Node)

		err := fn(node)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}

		// pushed newest first so the oldest child is popped next
		children := node.Children(cfg)
		for pair := children.Newest(); pair != nil; pair = pair.Prev() {
			stack.PushBack(node.child(pair.Key, pair.Value))
		}
	}

	return nil
}

// Nodes returns every node in Walk order
func Nodes(cfg *ConfigurationFile) []*Node {
	var nodes []*Node
	_ = Walk(cfg, func(n *Node) error {
		nodes = append(nodes, n)
		return nil
	})

	return nodes
}

// Find returns the node reached by following path from the root
func Find(cfg *ConfigurationFile, path []string) (*Node, bool) {
	node := cfg.Root()
	for _, name := range path {
		next, ok := node.Child(cfg, name)
		if !ok {
			return nil, false
		}
		node = next
	}

	return node, true
}
