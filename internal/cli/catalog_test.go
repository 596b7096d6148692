package cli

import (
	"testing"

	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEntriesArePrimitive(t *testing.T) {
	for d := 2; d < len(catalogEntries); d++ {
		p := gf2.FromBits(catalogEntries[d])
		require.Equal(t, d, p.Degree(), "entry for degree %d has degree %d", d, p.Degree())
		assert.True(t, gf2.IsPrimitive(p), "catalog entry %s for degree %d is not primitive", p, d)

		order, ok := gf2.GeneratorOrder(p)
		require.True(t, ok)
		assert.Equal(t, groupOrder(d), order)
	}
}

func TestCatalogCoversDegreesTwoThroughFifteen(t *testing.T) {
	require.Len(t, catalogEntries, 16)

	// Degrees 0 and 1 are placeholders; every real slot is populated.
	assert.Zero(t, catalogEntries[0])
	assert.Zero(t, catalogEntries[1])
	for d := 2; d < len(catalogEntries); d++ {
		assert.NotZero(t, catalogEntries[d], "degree %d missing", d)
	}
}
