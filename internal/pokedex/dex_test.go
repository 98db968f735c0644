package pokedex

import (
	"context"
	"testing"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDexLoadAndSearch(t *testing.T) {
	api := &fakeAPI{
		pages: map[int][]pokeapi.NamedResource{
			0: {{Name: "bulbasaur"}, {Name: "ivysaur"}, {Name: "venusaur"}, {Name: "charmander"}},
		},
	}
	dex := New(api, Options{Listing: ListingOptions{PageSize: 100, Limit: 100, ImageURLTemplate: testTemplate}})
	assert.False(t, dex.Loaded())
	assert.Empty(t, dex.Entries())

	require.NoError(t, dex.Load(context.Background()))
	assert.True(t, dex.Loaded())
	assert.Len(t, dex.Entries(), 4)

	found := dex.Search(models.FilterByName, "saur")
	assert.Equal(t, []int{1, 2, 3}, ids(found))

	found = dex.Search(models.FilterByID, "4")
	require.Len(t, found, 1)
	assert.Equal(t, "charmander", found[0].Name)
}

func TestDexLoadFailureLeavesListEmpty(t *testing.T) {
	api := &fakeAPI{failPage: map[int]bool{0: true}}
	dex := New(api, Options{Listing: ListingOptions{PageSize: 100, Limit: 100, ImageURLTemplate: testTemplate}})

	err := dex.Load(context.Background())
	require.Error(t, err)
	assert.False(t, dex.Loaded())
	assert.NotNil(t, dex.Entries())
	assert.Empty(t, dex.Entries())
	assert.Empty(t, dex.Search(models.FilterByName, ""))
}

func TestDexContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	dex := New(&fakeAPI{}, Options{})
	ctx := NewContext(context.Background(), dex)
	assert.Same(t, dex, FromContext(ctx))
}
