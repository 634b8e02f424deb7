package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMightContain_PresentLabels(t *testing.T) {
	labels := []string{"com", "net", "org", "uk", "jp", "io"}
	f := New(labels, 0.01)

	for _, l := range labels {
		assert.True(t, f.MightContain(l), "label %q must test positive", l)
	}
}

func TestMightContain_AbsentLabel(t *testing.T) {
	f := New([]string{"com", "net", "org", "uk"}, 0.001)
	assert.False(t, f.MightContain("definitely-not-a-tld"))
}

func TestWildcardDisablesFastPath(t *testing.T) {
	f := New([]string{"com", "*"}, 0.01)
	assert.True(t, f.MightContain("com"))
	assert.True(t, f.MightContain("anything-at-all"), "top-level wildcard makes every answer a maybe")
}

func TestInvalidRateFallsBack(t *testing.T) {
	f := New([]string{"com"}, -3)
	assert.True(t, f.MightContain("com"))

	f = New([]string{"com"}, 2)
	assert.True(t, f.MightContain("com"))
}

func TestEmptyLabelSet(t *testing.T) {
	f := New(nil, 0.01)
	assert.False(t, f.MightContain("com"))
}
