package preference

import (
	"context"
	"testing"

	"gluca-api/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreEmptyBackendUsesDefaults(t *testing.T) {
	store := NewStore(context.Background(), NewMemoryBackend())

	snapshot := store.Snapshot()
	assert.Empty(t, snapshot.Diet)
	assert.Empty(t, snapshot.Intolerances)
	assert.Empty(t, snapshot.ExcludeIngredients)
}

func TestNewStoreCorruptDocumentUsesDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(context.Background(), "{not json"))

	store := NewStore(context.Background(), backend)

	assert.Equal(t, common.DefaultPreferences(), store.Snapshot())
}

func TestNewStoreHydratesFromBackend(t *testing.T) {
	backend := NewMemoryBackend()
	doc, err := common.ToJSON(common.DietaryPreferences{
		Diet:               "vegetarian",
		Intolerances:       []string{"gluten"},
		ExcludeIngredients: []string{"mushroom"},
	})
	require.NoError(t, err)
	require.NoError(t, backend.Set(context.Background(), doc))

	store := NewStore(context.Background(), backend)

	snapshot := store.Snapshot()
	assert.Equal(t, "vegetarian", snapshot.Diet)
	assert.Equal(t, []string{"gluten"}, snapshot.Intolerances)
	assert.Equal(t, []string{"mushroom"}, snapshot.ExcludeIngredients)
}

func TestReplacePersistsAndUpdatesSnapshot(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewStore(context.Background(), backend)

	err := store.Replace(context.Background(), common.DietaryPreferences{
		Diet:               "ketogenic",
		Intolerances:       []string{"Dairy", "dairy", "Peanut"},
		ExcludeIngredients: []string{" Cilantro ", "cilantro", ""},
	})
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, "ketogenic", snapshot.Diet)
	assert.Equal(t, []string{"Dairy", "Peanut"}, snapshot.Intolerances)
	assert.Equal(t, []string{"cilantro"}, snapshot.ExcludeIngredients)

	doc, ok, err := backend.Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	var persisted common.DietaryPreferences
	require.NoError(t, common.ParseJSON(doc, &persisted))
	assert.Equal(t, snapshot, persisted)
}

func TestSubscribeNotifiesAndUnsubscribes(t *testing.T) {
	store := NewStore(context.Background(), NewMemoryBackend())

	var got []common.DietaryPreferences
	unsubscribe := store.Subscribe(func(p common.DietaryPreferences) {
		got = append(got, p)
	})

	require.NoError(t, store.Replace(context.Background(), common.DietaryPreferences{Diet: "vegan"}))
	require.Len(t, got, 1)
	assert.Equal(t, "vegan", got[0].Diet)

	unsubscribe()

	require.NoError(t, store.Replace(context.Background(), common.DietaryPreferences{Diet: "paleo"}))
	assert.Len(t, got, 1)
}
