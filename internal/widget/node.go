package widget

import (
	"fmt"
	"strings"
)

// HookAttr is the attribute external test code matches hooks against.
const HookAttr = "data-test"

const (
	HookApp             = "component-app"
	HookCounterDisplay  = "counter-display"
	HookDecrementButton = "decrement-button"
	HookIncrementButton = "increment-button"
	HookDecrementError  = "decrement-error"
)

// Node is one element of the rendered widget.
type Node struct {
	Tag      string
	Hook     string
	Text     string
	Children []*Node
	OnClick  func()
}

func newNode(tag, hook, text string, children ...*Node) *Node {
	return &Node{Tag: tag, Hook: hook, Text: text, Children: children}
}

// Find returns every node in the subtree carrying hook, in document order.
func (n *Node) Find(hook string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	if n.Hook == hook {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.Find(hook)...)
	}
	return out
}

// First is Find limited to the first match, or nil.
func (n *Node) First(hook string) *Node {
	if found := n.Find(hook); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Click runs the bound handler and reports whether there was one.
func (n *Node) Click() bool {
	if n == nil || n.OnClick == nil {
		return false
	}
	n.OnClick()
	return true
}

// Outline prints the tree one element per line, indented by depth.
func (n *Node) Outline() string {
	var b strings.Builder
	n.outline(&b, 0)
	return b.String()
}

func (n *Node) outline(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s<%s %s=%q>", strings.Repeat("  ", depth), n.Tag, HookAttr, n.Hook)
	if n.Text != "" {
		fmt.Fprintf(b, " %s", n.Text)
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.outline(b, depth+1)
	}
}
