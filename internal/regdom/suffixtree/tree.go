// Package suffixtree holds the decoded public-suffix rule set as an
// immutable tree of labels, walked right-to-left by the resolver.
package suffixtree

import (
	"fmt"
	"io"
)

// WildcardLabel matches any label at its level when no exact sibling does.
const WildcardLabel = "*"

// Node is one label in the suffix hierarchy.
//
// Exception marks a carve-out: the name at this position is explicitly
// excluded from being swallowed into the public suffix by an enclosing
// wildcard or structural rule. In the compact encoding the carve-out
// usually appears as a bare '!' marker child, whose empty label is never
// compared during matching.
type Node struct {
	Label     string
	Exception bool
	Children  []*Node
}

// FindChild returns the child whose label exactly matches label, falling
// back to the wildcard child when no exact sibling matches. Returns nil
// when neither exists.
func (n *Node) FindChild(label string) *Node {
	var wildcard *Node
	for _, c := range n.Children {
		if wildcard == nil && c.Label == WildcardLabel {
			wildcard = c
			continue
		}
		if c.Label == label {
			return c
		}
	}
	return wildcard
}

// Tree owns a decoded rule set. It is immutable once constructed and safe
// for any number of concurrent readers; Close must only be called after
// all reads have completed.
type Tree struct {
	root *Node
}

// New decodes ruleText and returns the owned tree. Each call produces an
// independent tree.
func New(ruleText string) (*Tree, error) {
	root, err := Decode(ruleText)
	if err != nil {
		return nil, fmt.Errorf("decoding rule text: %w", err)
	}
	return &Tree{root: root}, nil
}

// Root returns the synthetic root node for read access.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Close releases the tree, detaching every descendant post-order. It is a
// no-op on a nil or already-closed tree.
func (t *Tree) Close() {
	if t == nil || t.root == nil {
		return
	}
	release(t.root)
	t.root = nil
}

func release(n *Node) {
	for _, c := range n.Children {
		release(c)
	}
	n.Children = nil
}

// NodeCount returns the number of nodes in the tree, excluding the
// synthetic root.
func (t *Tree) NodeCount() int {
	if t == nil || t.root == nil {
		return 0
	}
	return countNodes(t.root) - 1
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}

// TopLabels returns the labels of the root's children, i.e. every
// top-level entry in the rule set.
func (t *Tree) TopLabels() []string {
	if t == nil || t.root == nil {
		return nil
	}
	labels := make([]string, 0, len(t.root.Children))
	for _, c := range t.root.Children {
		labels = append(labels, c.Label)
	}
	return labels
}

// Suffixes flattens the tree back into full dotted suffix rules, one per
// node, in tree order. Wildcard nodes render as "*.<parent>" and carve-out
// markers as "!<parent>".
func (t *Tree) Suffixes() []string {
	if t == nil || t.root == nil {
		return nil
	}
	var out []string
	for _, c := range t.root.Children {
		out = appendSuffixes(c, "", out)
	}
	return out
}

func appendSuffixes(n *Node, parent string, out []string) []string {
	name := n.Label
	if parent != "" {
		if name == "" {
			// bare marker child, rule applies to the parent's name
			name = parent
		} else {
			name = name + "." + parent
		}
	}
	rule := name
	if n.Exception {
		rule = "!" + name
	}
	out = append(out, rule)
	for _, c := range n.Children {
		out = appendSuffixes(c, name, out)
	}
	return out
}

// Dump writes a diagnostic pre-order rendering of the tree to w. Leaves
// carrying the exception flag are marked with '!'. Debug aid only; the
// resolver never uses this.
func (t *Tree) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}
	for _, c := range t.root.Children {
		dumpNode(w, c, "")
	}
}

func dumpNode(w io.Writer, n *Node, indent string) {
	switch {
	case len(n.Children) > 0:
		fmt.Fprintf(w, "%s%s:\n", indent, n.Label)
		for _, c := range n.Children {
			dumpNode(w, c, indent+"  ")
		}
	case n.Exception:
		fmt.Fprintf(w, "%s!%s\n", indent, n.Label)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, n.Label)
	}
}
