// Package lookup composes the suffix tree, result cache, and top-label
// prefilter into the registered-domain resolution pipeline used by the
// CLI: canonicalize, check cache, consult prefilter, walk the tree,
// record the result.
package lookup

import (
	"strings"

	"github.com/haukened/regdom/internal/regdom/common/log"
	"github.com/haukened/regdom/internal/regdom/common/utils"
	"github.com/haukened/regdom/internal/regdom/resolver"
	"github.com/haukened/regdom/internal/regdom/suffixtree"
)

// Options configures a Service. Cache and Prefilter are optional; a nil
// Logger is replaced with a noop one.
type Options struct {
	Tree        *suffixtree.Tree
	Cache       ResultCache
	Prefilter   Prefilter
	Logger      log.Logger
	DropUnknown bool
}

// Service resolves hostnames to registered domains. Safe for concurrent
// use: the tree is immutable and the cache and prefilter synchronize
// internally.
type Service struct {
	tree        *suffixtree.Tree
	cache       ResultCache
	prefilter   Prefilter
	logger      log.Logger
	dropUnknown bool
}

// Stats exposes cache counters for the service.
type Stats struct {
	CacheHits      uint64
	CacheMisses    uint64
	CacheEvictions uint64
	CacheLen       int
}

// New constructs a Service from the given options.
func New(opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Service{
		tree:        opts.Tree,
		cache:       opts.Cache,
		prefilter:   opts.Prefilter,
		logger:      opts.Logger,
		dropUnknown: opts.DropUnknown,
	}
}

// Resolve returns the registered domain of hostname, or ("", false) when
// none exists. The hostname is canonicalized (trimmed, lowercased,
// trailing dots stripped) before resolution, so callers may pass raw
// input.
func (s *Service) Resolve(hostname string) (string, bool) {
	cn := utils.CanonicalHostname(hostname)
	if cn == "" || cn[0] == '.' {
		return "", false
	}

	if s.cache != nil {
		if r, ok := s.cache.Get(cn); ok {
			return r.Domain, r.Found
		}
	}

	domain, found := s.lookup(cn)

	if s.cache != nil {
		s.cache.Put(cn, Result{Domain: domain, Found: found})
	}

	s.logger.Debug(map[string]any{
		"hostname": cn,
		"domain":   domain,
		"found":    found,
	}, "resolved registered domain")

	return domain, found
}

// lookup runs the prefilter fast path, falling back to the full tree walk.
func (s *Service) lookup(cn string) (string, bool) {
	if s.prefilter != nil && !s.prefilter.MightContain(topLabel(cn)) {
		// The top label is definitely absent from the rule set. Strict
		// mode rejects outright; lenient mode applies the same one-level
		// extension heuristic the walk would reach.
		if s.dropUnknown {
			return "", false
		}
		return heuristicGuess(cn)
	}
	return resolver.RegisteredDomainDrop(cn, s.tree.Root(), s.dropUnknown)
}

// Stats returns current cache counters; zero values when caching is off.
func (s *Service) Stats() Stats {
	if s.cache == nil {
		return Stats{}
	}
	hits, misses, evictions := s.cache.Stats()
	return Stats{
		CacheHits:      hits,
		CacheMisses:    misses,
		CacheEvictions: evictions,
		CacheLen:       s.cache.Len(),
	}
}

// topLabel returns the rightmost label of a canonical hostname.
func topLabel(cn string) string {
	if i := strings.LastIndexByte(cn, '.'); i >= 0 {
		return cn[i+1:]
	}
	return cn
}

// heuristicGuess treats the unrecognized top label as a one-level public
// suffix and returns the last two labels, matching the resolver's lenient
// fallback for unlisted suffixes. Single-label hostnames have nothing to
// extend and yield no match.
func heuristicGuess(cn string) (string, bool) {
	i := strings.LastIndexByte(cn, '.')
	if i < 0 {
		return "", false
	}
	j := strings.LastIndexByte(cn[:i], '.')
	return cn[j+1:], true
}
