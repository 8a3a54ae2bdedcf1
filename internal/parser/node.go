package parser

import "strings"

// Node is a parse tree node. Children keep attachment order.
type Node struct {
	Label    string
	Terminal bool
	children []*Node
}

// NewNode returns an interior node
func NewNode(label string) *Node {
	return &Node{Label: label}
}

// Leaf returns a terminal node
func Leaf(label string) *Node {
	return &Node{Label: label, Terminal: true}
}

func (n *Node) add(child *Node) {
	n.children = append(n.children, child)
}

// Children returns the child nodes in attachment order
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Child returns the first child labelled label, or nil
func (n *Node) Child(label string) *Node {
	for _, c := range n.children {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// Size returns the number of nodes in the subtree rooted at n
func (n *Node) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// Equal reports whether both trees have the same labels, kinds and shape
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Label != other.Label || n.Terminal != other.Terminal || len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Render draws the tree depth-first, one line per node
func (n *Node) Render() []string {
	var lines []string
	n.render("", true, &lines)
	return lines
}

func (n *Node) render(prefix string, last bool, lines *[]string) {
	branch, indent := "├── ", "│   "
	if last {
		branch, indent = "└── ", "    "
	}

	line := prefix + branch + n.Label
	if n.Terminal {
		line += " (Terminal)"
	}
	*lines = append(*lines, line)

	for i, c := range n.children {
		c.render(prefix+indent, i == len(n.children)-1, lines)
	}
}

// String returns the rendered tree with a trailing newline per line
func (n *Node) String() string {
	var b strings.Builder
	for _, line := range n.Render() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
