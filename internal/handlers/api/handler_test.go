package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi/pokeapitest"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, f pokeapitest.Fixtures) http.Handler {
	t.Helper()

	upstream := pokeapitest.NewServer(f)
	t.Cleanup(upstream.Close)

	dex := pokedex.New(pokeapi.NewClient(upstream.URL, time.Second), pokedex.Options{
		Listing: pokedex.ListingOptions{
			PageSize:         100,
			Limit:            100,
			ImageURLTemplate: "https://sprites.example/{id}.png",
		},
	})
	_ = dex.Load(context.Background())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pokedex.NewContext(r.Context(), dex)))
		})
	})
	r.Route("/api/v1/pokemon", NewHandler().Route)
	return r
}

func getJSON(t *testing.T, h http.Handler, target string, v any) int {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
	return w.Code
}

func TestListEndpoint(t *testing.T) {
	h := newTestRouter(t, pokeapitest.Fixtures{Names: []string{"bulbasaur", "ivysaur", "venusaur", "charmander"}})

	var resp pokemonListResponse
	require.Equal(t, http.StatusOK, getJSON(t, h, "/api/v1/pokemon", &resp))
	assert.True(t, resp.Loaded)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, "id", string(resp.Mode))
	assert.Equal(t, 4, resp.Pokemon[3].ID)
	assert.Equal(t, "https://sprites.example/4.png", resp.Pokemon[3].ImageURL)

	resp = pokemonListResponse{}
	getJSON(t, h, "/api/v1/pokemon?by=name&q=SAUR", &resp)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "SAUR", resp.Query)

	resp = pokemonListResponse{}
	getJSON(t, h, "/api/v1/pokemon?by=name&q=mew", &resp)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Pokemon)
}

func TestDetailEndpoint(t *testing.T) {
	h := newTestRouter(t, pokeapitest.Fixtures{
		Pokemon: map[int]*pokeapi.Pokemon{4: pokeapitest.Charmander()},
		Species: map[int]*pokeapi.Species{4: pokeapitest.CharmanderSpecies()},
	})

	var resp pokemonDetailResponse
	require.Equal(t, http.StatusOK, getJSON(t, h, "/api/v1/pokemon/4", &resp))
	assert.False(t, resp.Loading)
	require.NotNil(t, resp.Pokemon)
	assert.Equal(t, "#004", resp.Pokemon.Number)
	assert.Equal(t, "bg-fire", resp.Theme.Background)
	assert.Equal(t, "text-fire", resp.Theme.Text)
	assert.Equal(t, 5, resp.Next)
	assert.Equal(t, 3, resp.Previous)
	assert.NotContains(t, resp.Description, "\n")
	assert.NotContains(t, resp.Description, "\f")

	require.Len(t, resp.Pokemon.Stats, 6)
	assert.Equal(t, "HP", resp.Pokemon.Stats[0].Label)
	assert.Equal(t, "039", resp.Pokemon.Stats[0].Formatted)
	assert.Equal(t, "125", resp.Pokemon.Stats[5].Formatted)
	assert.InDelta(t, 50.0, resp.Pokemon.Stats[5].BarPercent, 0.001)
}

func TestDetailEndpointPartial(t *testing.T) {
	species := pokeapitest.CharmanderSpecies()
	species.FlavorTextEntries = species.FlavorTextEntries[:1]

	h := newTestRouter(t, pokeapitest.Fixtures{
		Species: map[int]*pokeapi.Species{4: species},
	})

	var resp pokemonDetailResponse
	require.Equal(t, http.StatusOK, getJSON(t, h, "/api/v1/pokemon/4", &resp))
	assert.True(t, resp.Loading)
	assert.Nil(t, resp.Pokemon)
	assert.Equal(t, pokedex.DefaultTheme, resp.Theme)
	assert.Equal(t, "", resp.Description)
}

func TestDetailEndpointInvalidID(t *testing.T) {
	h := newTestRouter(t, pokeapitest.Fixtures{})

	var resp map[string]any
	assert.Equal(t, http.StatusBadRequest, getJSON(t, h, "/api/v1/pokemon/abc", &resp))
	assert.Equal(t, "invalid pokemon id", resp["error"])
}
