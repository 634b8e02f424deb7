package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/regdom/internal/regdom/config"
	"github.com/haukened/regdom/internal/regdom/services/lookup"
	"github.com/haukened/regdom/internal/regdom/suffixtree"
)

func newTestService(t *testing.T) *lookup.Service {
	t.Helper()
	tree, err := suffixtree.New("com,uk(2:co,gov)")
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return lookup.New(lookup.Options{Tree: tree})
}

func TestResolveStream(t *testing.T) {
	svc := newTestService(t)

	in := strings.NewReader("www.example.com\n\nco.uk\nbbc.co.uk\n")
	var out bytes.Buffer

	require.NoError(t, resolveStream(svc, in, &out))

	want := "www.example.com\texample.com\n" +
		"co.uk\tno match\n" +
		"bbc.co.uk\tbbc.co.uk\n"
	assert.Equal(t, want, out.String())
}

func TestApplicationRun_Args(t *testing.T) {
	app := &Application{service: newTestService(t)}

	var out bytes.Buffer
	require.NoError(t, app.Run([]string{"www.example.com", "uk"}, nil, &out))

	assert.Equal(t, "www.example.com\texample.com\nuk\tno match\n", out.String())
}

func TestApplicationRun_Dump(t *testing.T) {
	tree, err := suffixtree.New("com,uk(1:co)")
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	app := &Application{tree: tree, service: lookup.New(lookup.Options{Tree: tree})}

	var out bytes.Buffer
	require.NoError(t, app.Run([]string{"dump"}, nil, &out))
	assert.Contains(t, out.String(), "uk:")
	assert.Contains(t, out.String(), "  co")
}

func TestBuildApplication(t *testing.T) {
	cfg := &config.AppConfig{
		BloomFPRate: 0.01,
		CacheSize:   16,
		Env:         "prod",
		LogLevel:    "info",
	}

	app, err := buildApplication(cfg)
	require.NoError(t, err)
	defer app.Shutdown()

	var out bytes.Buffer
	require.NoError(t, app.Run([]string{"www.example.com"}, nil, &out))
	assert.Equal(t, "www.example.com\texample.com\n", out.String())
}

func TestBuildApplication_RuleStore(t *testing.T) {
	dbPath := t.TempDir() + "/rules.db"

	cfg := &config.AppConfig{
		BloomFPRate: 0.01,
		CacheSize:   16,
		Env:         "prod",
		LogLevel:    "info",
		RulesDB:     dbPath,
	}

	// an empty store falls back to the embedded snapshot
	app, err := buildApplication(cfg)
	require.NoError(t, err)
	require.NotNil(t, app.store)

	require.NoError(t, app.store.Put("zzk(1:co)", 99, 1700000000))
	app.Shutdown()

	// a stored snapshot takes precedence on the next start
	app, err = buildApplication(cfg)
	require.NoError(t, err)
	defer app.Shutdown()

	var out bytes.Buffer
	require.NoError(t, app.Run([]string{"host.co.zzk"}, nil, &out))
	assert.Equal(t, "host.co.zzk\thost.co.zzk\n", out.String())
}

func TestBuildApplication_DisabledCache(t *testing.T) {
	cfg := &config.AppConfig{
		BloomFPRate:  0.01,
		CacheSize:    16,
		DisableCache: true,
		Env:          "prod",
		LogLevel:     "info",
	}

	app, err := buildApplication(cfg)
	require.NoError(t, err)
	defer app.Shutdown()

	assert.Zero(t, app.service.Stats())
}
