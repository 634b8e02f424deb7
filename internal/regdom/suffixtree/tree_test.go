package suffixtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRules = "com,uk(2:co,gov),ck(2:*,www(1:!))"

func TestNew_And_Root(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.Root()
	require.NotNil(t, root)
	assert.Empty(t, root.Label, "synthetic root carries no label")
	assert.Len(t, root.Children, 3)
}

func TestNew_BadRules(t *testing.T) {
	tree, err := New("uk(2:co")
	require.Error(t, err)
	assert.Nil(t, tree)
	assert.Contains(t, err.Error(), "decoding rule text")
}

func TestNew_IndependentTrees(t *testing.T) {
	a, err := New(testRules)
	require.NoError(t, err)
	b, err := New(testRules)
	require.NoError(t, err)

	a.Close()
	// closing one tree must not touch the other
	assert.Nil(t, a.Root())
	require.NotNil(t, b.Root())
	assert.Len(t, b.Root().Children, 3)
	b.Close()
}

func TestClose_Idempotent(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)

	tree.Close()
	assert.Nil(t, tree.Root())
	tree.Close() // second close is a no-op

	var nilTree *Tree
	nilTree.Close() // nil-safe
	assert.Nil(t, nilTree.Root())
}

func TestNodeCount(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	defer tree.Close()

	// com, uk, co, gov, ck, *, www, marker
	assert.Equal(t, 8, tree.NodeCount())
}

func TestTopLabels(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	defer tree.Close()

	assert.Equal(t, []string{"com", "uk", "ck"}, tree.TopLabels())
}

func TestFindChild(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.Root()

	uk := root.FindChild("uk")
	require.NotNil(t, uk)
	assert.Equal(t, "uk", uk.Label)

	assert.Nil(t, root.FindChild("zz"), "no exact match, no wildcard")

	ck := root.FindChild("ck")
	require.NotNil(t, ck)

	// exact match wins over the wildcard sibling
	www := ck.FindChild("www")
	require.NotNil(t, www)
	assert.Equal(t, "www", www.Label)

	// anything else falls back to the wildcard
	other := ck.FindChild("anything")
	require.NotNil(t, other)
	assert.Equal(t, WildcardLabel, other.Label)
}

func TestDump(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	defer tree.Close()

	var sb strings.Builder
	tree.Dump(&sb)
	out := sb.String()

	assert.Contains(t, out, "com\n")
	assert.Contains(t, out, "uk:\n")
	assert.Contains(t, out, "  co\n")
	assert.Contains(t, out, "  www:\n")
	assert.Contains(t, out, "    !\n", "exception marker leaf is flagged")
}

func TestDump_ClosedTree(t *testing.T) {
	tree, err := New(testRules)
	require.NoError(t, err)
	tree.Close()

	var sb strings.Builder
	tree.Dump(&sb)
	assert.Empty(t, sb.String())
}
