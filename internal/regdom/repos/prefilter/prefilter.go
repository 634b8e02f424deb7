// Package prefilter provides a Bloom-filter fast path over the rule set's
// top-level labels. A definite-negative answer lets the lookup service
// skip the tree walk entirely for hostnames under unrecognized TLDs.
package prefilter

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/haukened/regdom/internal/regdom/services/lookup"
)

// Filter tests top-level label membership. Reads are safe concurrently;
// the filter is populated once at construction and never written again.
type Filter struct {
	bf *bitsbloom.BloomFilter

	// wildcard disables the fast path: a top-level wildcard rule can match
	// any label, so no negative answer is ever definitive.
	wildcard bool
}

// New builds a filter over the given top-level labels with the target
// false-positive rate. Invalid rates fall back to 1%.
func New(labels []string, fpRate float64) *Filter {
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = 0.01
	}
	n := len(labels)
	if n == 0 {
		n = 1
	}
	f := &Filter{bf: bitsbloom.NewWithEstimates(uint(n), fpRate)}
	for _, l := range labels {
		if l == "*" {
			f.wildcard = true
			continue
		}
		f.bf.AddString(l)
	}
	return f
}

// MightContain reports whether label might be a top-level entry in the
// rule set. False is definitive; true must be confirmed by the tree walk.
func (f *Filter) MightContain(label string) bool {
	if f.wildcard {
		return true
	}
	return f.bf.TestString(label)
}

var _ lookup.Prefilter = (*Filter)(nil)
