package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/haukened/regdom/internal/regdom/common/log"
	"github.com/haukened/regdom/internal/regdom/config"
	"github.com/haukened/regdom/internal/regdom/repos/prefilter"
	"github.com/haukened/regdom/internal/regdom/repos/resultcache"
	"github.com/haukened/regdom/internal/regdom/repos/rulestore"
	"github.com/haukened/regdom/internal/regdom/ruleset"
	"github.com/haukened/regdom/internal/regdom/services/lookup"
	"github.com/haukened/regdom/internal/regdom/suffixtree"
)

const (
	version = "0.1.0-dev"
	appName = "regdom"
)

// Application holds the wired components of the lookup tool.
type Application struct {
	config  *config.AppConfig
	tree    *suffixtree.Tree
	service *lookup.Service
	store   *rulestore.Store // nil unless a rules DB is configured
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"app":       appName,
		"version":   version,
		"env":       cfg.Env,
		"log_level": cfg.LogLevel,
	}, "Starting regdom")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}
	defer app.Shutdown()

	if err := app.Run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(map[string]any{"error": err}, "Lookup failed")
	}
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	app := &Application{config: cfg}

	// Prefer a stored rule snapshot over the embedded copy when a rules
	// database is configured.
	rules := ruleset.Compact()
	source := "embedded"
	snapshot := ruleset.Version
	if cfg.RulesDB != "" {
		store, err := rulestore.New(cfg.RulesDB)
		if err != nil {
			return nil, fmt.Errorf("failed to open rule store: %w", err)
		}
		app.store = store
		if stored, ok, err := store.Get(); err != nil {
			return nil, fmt.Errorf("failed to read rule store: %w", err)
		} else if ok {
			rules = stored
			source = cfg.RulesDB
			snapshot = fmt.Sprintf("%d", store.Stats().Version)
		}
	}

	tree, err := suffixtree.New(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build suffix tree: %w", err)
	}
	app.tree = tree

	log.Info(map[string]any{
		"source":   source,
		"snapshot": snapshot,
		"nodes":    tree.NodeCount(),
		"tlds":     len(tree.TopLabels()),
	}, "Suffix tree loaded")

	var cache lookup.ResultCache
	if cfg.DisableCache {
		log.Info(map[string]any{"disabled": true}, "Result caching disabled")
	} else {
		cacheSize := cfg.CacheSize
		if cacheSize > uint(^uint(0)>>1) {
			return nil, fmt.Errorf("cache size too large: %d", cacheSize)
		}
		cache, err = resultcache.New(int(cacheSize))
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
		log.Info(map[string]any{
			"type": "LRU",
			"size": cfg.CacheSize,
		}, "Result cache configured")
	}

	filter := prefilter.New(tree.TopLabels(), cfg.BloomFPRate)

	app.service = lookup.New(lookup.Options{
		Tree:        tree,
		Cache:       cache,
		Prefilter:   filter,
		Logger:      log.GetLogger(),
		DropUnknown: cfg.DropUnknown,
	})

	return app, nil
}

// Run resolves hostnames given as arguments, or streamed one per line on
// stdin when no arguments are present. "dump" prints the tree instead.
func (app *Application) Run(args []string, in io.Reader, out io.Writer) error {
	if len(args) == 1 && args[0] == "dump" {
		app.tree.Dump(out)
		return nil
	}
	if len(args) > 0 {
		for _, host := range args {
			printResult(out, host, app.service)
		}
		return nil
	}
	return resolveStream(app.service, in, out)
}

// Shutdown releases the tree and, when present, the rule store.
func (app *Application) Shutdown() {
	if app.store != nil {
		if err := app.store.Close(); err != nil {
			log.Warn(map[string]any{"error": err}, "Error closing rule store")
		}
	}
	app.tree.Close()
}

// resolveStream reads hostnames one per line from in and writes results
// to out.
func resolveStream(svc *lookup.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		host := scanner.Text()
		if host == "" {
			continue
		}
		printResult(out, host, svc)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func printResult(out io.Writer, host string, svc *lookup.Service) {
	if domain, ok := svc.Resolve(host); ok {
		fmt.Fprintf(out, "%s\t%s\n", host, domain)
	} else {
		fmt.Fprintf(out, "%s\tno match\n", host)
	}
}
