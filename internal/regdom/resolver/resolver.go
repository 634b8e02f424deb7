// Package resolver computes the registered domain (effective TLD plus one
// label) of a hostname against a decoded suffix tree.
//
// Resolution is a pure read: it never mutates the tree, holds no locks,
// and is safe to call from any number of goroutines sharing one tree.
package resolver

import (
	"strings"

	"github.com/haukened/regdom/internal/regdom/suffixtree"
)

// RegisteredDomain returns the registered-domain suffix of hostname, using
// the lenient policy: a hostname whose top label is absent from the rule
// set still yields a best-effort guess, treating the unrecognized label as
// a one-level public suffix. The second return value is false when no
// registered domain exists.
//
// The hostname must already be lowercase ASCII; no normalization beyond
// stripping a single trailing dot is performed.
func RegisteredDomain(hostname string, root *suffixtree.Node) (string, bool) {
	return RegisteredDomainDrop(hostname, root, false)
}

// RegisteredDomainDrop is RegisteredDomain with an explicit policy flag.
// When dropUnknown is true, only rule-set-backed matches are returned and
// hostnames under unrecognized top labels yield no match.
func RegisteredDomainDrop(hostname string, root *suffixtree.Node, dropUnknown bool) (string, bool) {
	if hostname == "" || hostname[0] == '.' || root == nil {
		return "", false
	}

	end := len(hostname)
	if hostname[end-1] == '.' {
		end--
	}

	// Walk labels right to left, descending the tree while each label
	// keeps matching a child (exact match wins over the wildcard).
	node := root
	segEnd := end
	segStart := segEnd
	for {
		for segStart > 0 && hostname[segStart-1] != '.' {
			segStart--
		}

		// [segStart, segEnd) is one label.
		child := node.FindChild(hostname[segStart:segEnd])
		if child == nil || isExceptionParent(child) {
			// Match found: the current label starts the candidate.
			break
		}

		if segStart == 0 {
			// The name is entirely suffix labels; nothing registrable.
			return "", false
		}

		node = child
		segEnd = segStart - 1
		segStart = segEnd
	}

	// The candidate must contain at least one label left of the matched
	// suffix, i.e. at least one dot.
	if !strings.Contains(hostname[segStart:end], ".") {
		if segStart == 0 || dropUnknown {
			return "", false
		}
		// Unrecognized top label: treat it as a one-level public suffix
		// and widen the candidate by one label.
		if i := strings.LastIndexByte(hostname[:segStart-1], '.'); i >= 0 {
			segStart = i + 1
		} else {
			segStart = 0
		}
	}

	return hostname[segStart:end], true
}

// isExceptionParent reports whether a matched node's only child is an
// exception carve-out, the structural marker that stops the walk before
// the suffix extends any further.
func isExceptionParent(n *suffixtree.Node) bool {
	return len(n.Children) == 1 && n.Children[0].Exception
}
