// Package regdom computes the registered domain (the effective TLD plus
// one label) of a fully-qualified hostname against a public-suffix rule
// set, for callers that group hostnames by administrative owner rather
// than by raw string suffix.
//
// A Tree is built once from the embedded rule snapshot (or from
// caller-supplied compact rule text) and then shared read-only across any
// number of concurrent lookups. Close the tree only after all lookups
// using it have completed.
//
// Hostnames are expected to be lowercase ASCII; only a single trailing
// dot is normalized away. Lookups never return errors: every outcome is
// either a suffix of the input or no match, and no match is a legitimate
// answer (bare TLDs, IP literals, single-label hosts).
package regdom

import (
	"io"

	"github.com/haukened/regdom/internal/regdom/resolver"
	"github.com/haukened/regdom/internal/regdom/ruleset"
	"github.com/haukened/regdom/internal/regdom/suffixtree"
)

// Tree is an owned, immutable suffix tree handle.
type Tree struct {
	tree *suffixtree.Tree
}

// LoadTree decodes the embedded rule snapshot into a new tree. Each call
// produces an independent tree; load once and share it.
func LoadTree() (*Tree, error) {
	return LoadTreeFrom(ruleset.Compact())
}

// LoadTreeFrom decodes caller-supplied compact rule text into a new tree.
func LoadTreeFrom(rules string) (*Tree, error) {
	t, err := suffixtree.New(rules)
	if err != nil {
		return nil, err
	}
	return &Tree{tree: t}, nil
}

// Version returns the version identifier of the embedded rule snapshot.
func Version() string {
	return ruleset.Version
}

// Close releases the tree. Idempotent and nil-safe, but must not race
// with in-flight lookups.
func (t *Tree) Close() {
	if t != nil {
		t.tree.Close()
	}
}

// RegisteredDomain returns the registered-domain suffix of hostname using
// the lenient policy: unrecognized top labels are treated as one-level
// public suffixes and still yield a best-effort answer. The second return
// value is false when no registered domain exists.
func (t *Tree) RegisteredDomain(hostname string) (string, bool) {
	return resolver.RegisteredDomain(hostname, t.tree.Root())
}

// RegisteredDomainDrop is RegisteredDomain with an explicit policy flag:
// when dropUnknown is true, only rule-set-backed matches are returned.
func (t *Tree) RegisteredDomainDrop(hostname string, dropUnknown bool) (string, bool) {
	return resolver.RegisteredDomainDrop(hostname, t.tree.Root(), dropUnknown)
}

// Dump writes a diagnostic rendering of the tree to w.
func (t *Tree) Dump(w io.Writer) {
	t.tree.Dump(w)
}
