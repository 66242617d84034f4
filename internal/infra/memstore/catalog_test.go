//go:build unit

package memstore_test

import (
	"testing"

	"hotel-booking/internal/infra/memstore"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCatalogAdd(t *testing.T) {
	catalog := memstore.NewRoomCatalog()

	first, err := builder.NewRoomBuilder().WithNumber("101").BuildDomain()
	require.NoError(t, err)
	assert.True(t, catalog.Add(first))

	t.Run("duplicate number is a no-op", func(t *testing.T) {
		dup, err := builder.NewRoomBuilder().WithNumber("101").WithPrice(999).BuildDomain()
		require.NoError(t, err)

		assert.False(t, catalog.Add(dup))
		// the original entry survives
		assert.Equal(t, first, catalog.Find("101"))
	})
}

func TestRoomCatalogFind(t *testing.T) {
	catalog := memstore.NewRoomCatalog()
	rm, err := builder.NewRoomBuilder().WithNumber("305").BuildDomain()
	require.NoError(t, err)
	catalog.Add(rm)

	assert.Equal(t, rm, catalog.Find("305"))
	assert.Nil(t, catalog.Find("999"))
}

func TestRoomCatalogAll(t *testing.T) {
	catalog := memstore.NewRoomCatalog()
	for _, number := range []string{"20", "3", "101"} {
		rm, err := builder.NewRoomBuilder().WithNumber(number).BuildDomain()
		require.NoError(t, err)
		require.True(t, catalog.Add(rm))
	}

	all := catalog.All()
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].Number().Value())
	assert.Equal(t, "20", all[1].Number().Value())
	assert.Equal(t, "101", all[2].Number().Value())
}

func TestCustomerDirectory(t *testing.T) {
	directory := memstore.NewCustomerDirectory()

	alice, err := builder.NewCustomerBuilder().WithEmail("alice@example.com").BuildDomain()
	require.NoError(t, err)
	bob, err := builder.NewCustomerBuilder().WithEmail("bob@example.com").BuildDomain()
	require.NoError(t, err)

	assert.True(t, directory.Add(bob))
	assert.True(t, directory.Add(alice))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		again, err := builder.NewCustomerBuilder().WithEmail("alice@example.com").WithFirstName("Imposter").BuildDomain()
		require.NoError(t, err)

		assert.False(t, directory.Add(again))
		assert.Equal(t, "Grace", directory.Find("alice@example.com").FirstName())
	})

	t.Run("find unknown email returns nil", func(t *testing.T) {
		assert.Nil(t, directory.Find("nobody@example.com"))
	})

	t.Run("all is sorted by email", func(t *testing.T) {
		all := directory.All()
		require.Len(t, all, 2)
		assert.Equal(t, "alice@example.com", all[0].Email().Value())
		assert.Equal(t, "bob@example.com", all[1].Email().Value())
	})
}
