package ports

import (
	"context"
	"testing"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract. The store must start empty.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userFirstName", "Asha"))

		val, err := store.Get(ctx, "userFirstName")
		require.NoError(t, err)
		assert.Equal(t, "Asha", val)

		// Overwrite
		require.NoError(t, store.Set(ctx, "userFirstName", "Ravi"))
		val, err = store.Get(ctx, "userFirstName")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", val)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Empty Value Is Stored", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userMobile", ""))
		val, err := store.Get(ctx, "userMobile")
		require.NoError(t, err)
		assert.Equal(t, "", val)
	})

	t.Run("JSON Value Round Trip", func(t *testing.T) {
		record := `{"name":"Goa","price":2000,"image":"goa.jpg"}`
		require.NoError(t, store.Set(ctx, "selectedDestination", record))
		val, err := store.Get(ctx, "selectedDestination")
		require.NoError(t, err)
		assert.JSONEq(t, record, val)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "numTravelers", "2"))
		require.NoError(t, store.Delete(ctx, "numTravelers"))

		_, err := store.Get(ctx, "numTravelers")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, "Get after Delete should return ErrKeyNotFound")

		// Deleting again is a no-op
		assert.NoError(t, store.Delete(ctx, "numTravelers"))
	})

	t.Run("Keys", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "tripDuration", "5"))
		require.NoError(t, store.Set(ctx, "userGender", "female"))

		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, "tripDuration")
		assert.Contains(t, keys, "userGender")
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userEmail", "asha@example.com"))
		require.NoError(t, store.Clear(ctx))

		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)

		_, err = store.Get(ctx, "userEmail")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})
}
