package out

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	t.Parallel()
	tips, err := NewEmbeddedCatalog().All(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tips)
	for _, tip := range tips {
		require.NotEmpty(t, tip.Title)
		require.NotEmpty(t, tip.Category)
		require.NotEmpty(t, tip.Body)
	}
}

func TestYAMLCatalogDefaultsCategory(t *testing.T) {
	t.Parallel()
	raw := []byte("- title: Drink water\n  body: stay hydrated\n")
	tips, err := NewYAMLCatalog(raw).All(context.Background())
	require.NoError(t, err)
	require.Len(t, tips, 1)
	require.Equal(t, "general", tips[0].Category)
}

func TestYAMLCatalogRejectsInvalid(t *testing.T) {
	t.Parallel()
	_, err := NewYAMLCatalog([]byte("- title: \"\"\n  body: x\n")).All(context.Background())
	require.Error(t, err)

	_, err = NewYAMLCatalog([]byte("title: [")).All(context.Background())
	require.Error(t, err)
}

func TestCatalogReturnsCopies(t *testing.T) {
	t.Parallel()
	catalog := NewEmbeddedCatalog()
	first, err := catalog.All(context.Background())
	require.NoError(t, err)
	first[0].Title = "changed"
	second, err := catalog.All(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, "changed", second[0].Title)
}
