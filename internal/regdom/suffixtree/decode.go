package suffixtree

import (
	"fmt"
	"strconv"
)

// decoder is a cursor over the compact rule text. Parsing is a single
// left-to-right recursive-descent scan with no backtracking.
type decoder struct {
	text string
	pos  int
}

// Decode parses the compact public-suffix encoding into a tree and returns
// its synthetic root. The root's children are the top-level rule entries;
// the root itself carries no label and is never matched against.
//
// The grammar is:
//
//	tree       := node ( ',' node )*
//	node       := '!'? label child-list?
//	label      := any run of characters excluding ',' '(' ')'
//	child-list := '(' count ':' tree ')'
//
// The input is a trusted, build-time constant. Decode still reports
// structural faults (truncated input, bad child counts, unbalanced
// delimiters) so that a broken rule snapshot fails loudly at load time,
// but it performs no validation beyond that.
func Decode(text string) (*Node, error) {
	root := &Node{}
	if text == "" {
		return root, nil
	}
	d := decoder{text: text}
	for {
		child, err := d.node()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
		if d.pos >= len(d.text) {
			return root, nil
		}
		if d.text[d.pos] != ',' {
			return nil, fmt.Errorf("unexpected %q at offset %d", d.text[d.pos], d.pos)
		}
		d.pos++
	}
}

// node parses a single node and leaves the cursor on the delimiter that
// follows it (or at end of input). A leading '!' marks the node as an
// exception carve-out and is not part of the stored label.
func (d *decoder) node() (*Node, error) {
	n := &Node{}
	if d.pos < len(d.text) && d.text[d.pos] == '!' {
		n.Exception = true
		d.pos++
	}
	start := d.pos
	for d.pos < len(d.text) {
		switch d.text[d.pos] {
		case ',', ')':
			n.Label = d.text[start:d.pos]
			return n, nil
		case '(':
			n.Label = d.text[start:d.pos]
			if err := d.childList(n); err != nil {
				return nil, err
			}
			return n, nil
		}
		d.pos++
	}
	n.Label = d.text[start:]
	return n, nil
}

// childList parses '(' count ':' tree ')' and attaches exactly count child
// subtrees to n. The cursor ends just past the closing ')'.
func (d *decoder) childList(n *Node) error {
	d.pos++ // consume '('
	start := d.pos
	for d.pos < len(d.text) && d.text[d.pos] != ':' {
		d.pos++
	}
	if d.pos >= len(d.text) {
		return fmt.Errorf("unterminated child count for %q at offset %d", n.Label, start)
	}
	count, err := strconv.Atoi(d.text[start:d.pos])
	if err != nil || count < 0 {
		return fmt.Errorf("bad child count %q for %q at offset %d", d.text[start:d.pos], n.Label, start)
	}
	d.pos++ // consume ':'
	n.Children = make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		child, err := d.node()
		if err != nil {
			return err
		}
		n.Children = append(n.Children, child)
		if i == count-1 {
			break
		}
		if d.pos >= len(d.text) || d.text[d.pos] != ',' {
			return fmt.Errorf("expected %d children for %q, input ends after %d", count, n.Label, i+1)
		}
		d.pos++
	}
	if d.pos >= len(d.text) || d.text[d.pos] != ')' {
		return fmt.Errorf("unbalanced child list for %q at offset %d", n.Label, d.pos)
	}
	d.pos++ // consume ')'
	return nil
}
