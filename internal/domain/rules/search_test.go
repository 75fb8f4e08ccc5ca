package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearch(t *testing.T) *CatalogSearch {
	t.Helper()
	cs, err := NewCatalogSearch(DefaultRuleset())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func TestCatalogSearch_Search(t *testing.T) {
	cs := newTestSearch(t)

	t.Run("finds category by display name", func(t *testing.T) {
		results, err := cs.Search("entertainment", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "entertainment", results[0].Category.ID)
	})

	t.Run("finds category by rule keyword", func(t *testing.T) {
		results, err := cs.Search("swiggy", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "food", results[0].Category.ID)
	})

	t.Run("typo tolerance", func(t *testing.T) {
		results, err := cs.Search("netflx", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "entertainment", results[0].Category.ID)
	})

	t.Run("no results for nonsense", func(t *testing.T) {
		results, err := cs.Search("xqzzqx", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestCatalogSearch_Prefix(t *testing.T) {
	cs := newTestSearch(t)

	results, err := cs.SearchWithPrefix("trans", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Category.ID)
	}
	assert.Contains(t, ids, "transport")
}
