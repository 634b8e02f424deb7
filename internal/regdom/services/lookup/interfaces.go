package lookup

// Result is a cached lookup outcome. Found is false for legitimate
// no-match answers, which are cached the same as hits.
type Result struct {
	Domain string
	Found  bool
}

// ResultCache caches lookup results by canonical hostname with basic
// metrics.
type ResultCache interface {
	Get(name string) (Result, bool)
	Put(name string, r Result)
	Len() int
	Purge()
	Stats() (hits, misses, evictions uint64)
}

// Prefilter answers whether a top-level label might be present in the
// rule set. A false answer is definitive (the label is absent); a true
// answer may be a false positive and must be confirmed by the tree walk.
type Prefilter interface {
	MightContain(label string) bool
}
