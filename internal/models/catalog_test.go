package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFixture = `tests:
  - id: nback-2
    title: "Dual 2-Back"
    type: nback
    n_back_level: 2
    trial_count: 20
    target_rate: 0.25
  - id: reaction-simple
    title: "Simple Reaction Time"
    type: reaction
    rounds: 10
    min_delay_ms: 1000
    max_delay_ms: 4000
`

func writeCatalogFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tests.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalogFixture(t, catalogFixture))
	require.NoError(t, err)
	require.Len(t, catalog.Tests, 2)

	nback, ok := catalog.ByID("nback-2")
	require.True(t, ok)
	assert.Equal(t, "nback", nback.Type)
	assert.Equal(t, 2, nback.NBackLevel)
	assert.Equal(t, 20, nback.TrialCount)
	assert.InDelta(t, 0.25, nback.TargetRate, 1e-9)

	reaction, ok := catalog.ByID("reaction-simple")
	require.True(t, ok)
	assert.Equal(t, "reaction", reaction.Type)
	assert.Equal(t, 10, reaction.Rounds)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCatalogMalformedYAML(t *testing.T) {
	_, err := LoadCatalog(writeCatalogFixture(t, "tests: [unbalanced"))
	assert.Error(t, err)
}

func TestCatalogByIDUnknown(t *testing.T) {
	catalog, err := LoadCatalog(writeCatalogFixture(t, catalogFixture))
	require.NoError(t, err)

	_, ok := catalog.ByID("does-not-exist")
	assert.False(t, ok)
}
