package basename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltOnce(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDefault_CatalogOrdered(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	terms := c.Catalog()
	require.NotEmpty(t, terms)
	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, len(terms[i-1].Tokens), len(terms[i].Tokens))
		assert.Equal(t, i, terms[i].Priority)
	}
}

func TestClean_PackageLevel(t *testing.T) {
	out, err := Clean("Acme Corp.", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Acme", out)
}

func TestClean_ConcurrentUse(t *testing.T) {
	c := defaultCleanerT(t)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				assert.Equal(t, "Acme", c.Clean("Acme Ltd.", DefaultOptions()))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
