package suffixtree

import (
	"testing"

	"github.com/haukened/regdom/internal/regdom/ruleset"
)

func BenchmarkDecode_EmbeddedRules(b *testing.B) {
	rules := ruleset.Compact()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		root, err := Decode(rules)
		if err != nil {
			b.Fatalf("decode failed: %v", err)
		}
		if len(root.Children) == 0 {
			b.Fatal("empty tree")
		}
	}
}

func BenchmarkFindChild(b *testing.B) {
	tree, err := New(ruleset.Compact())
	if err != nil {
		b.Fatalf("failed to build tree: %v", err)
	}
	defer tree.Close()
	root := tree.Root()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if root.FindChild("uk") == nil {
			b.Fatal("uk not found")
		}
	}
}
