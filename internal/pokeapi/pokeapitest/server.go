// Package pokeapitest serves canned PokeAPI responses for tests.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
)

type Fixtures struct {
	// Names is the full catalog; pages are sliced out of it by limit/offset.
	Names   []string
	Pokemon map[int]*pokeapi.Pokemon
	Species map[int]*pokeapi.Species
	// FailListing makes every listing request answer 500.
	FailListing bool
}

type Server struct {
	*httptest.Server
	Requests atomic.Int64
}

func NewServer(f Fixtures) *Server {
	s := &Server{}
	mux := http.NewServeMux()

	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)
		if f.FailListing {
			http.Error(w, "listing unavailable", http.StatusInternalServerError)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		list := pokeapi.NamedResourceList{Count: len(f.Names), Results: []pokeapi.NamedResource{}}
		for i := offset; i < offset+limit && i < len(f.Names); i++ {
			list.Results = append(list.Results, pokeapi.NamedResource{Name: f.Names[i]})
		}
		writeJSON(w, list)
	})

	mux.HandleFunc("/pokemon/", func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/pokemon/"))
		p, ok := f.Pokemon[id]
		if err != nil || !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, p)
	})

	mux.HandleFunc("/pokemon-species/", func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/pokemon-species/"))
		sp, ok := f.Species[id]
		if err != nil || !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, sp)
	})

	s.Server = httptest.NewServer(mux)
	return s
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Charmander is a complete fire-type record.
func Charmander() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:     4,
		Name:   "charmander",
		Height: 6,
		Weight: 85,
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "fire"}},
		},
		Abilities: []pokeapi.AbilitySlot{
			{Slot: 1, Ability: pokeapi.NamedResource{Name: "blaze"}},
			{Slot: 3, IsHidden: true, Ability: pokeapi.NamedResource{Name: "solar-power"}},
		},
		Sprites: pokeapi.Sprites{FrontDefault: "https://img/4.png"},
		Stats: []pokeapi.BaseStat{
			{BaseStat: 39, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 52, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 43, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 60, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 50, Stat: pokeapi.NamedResource{Name: "special-defense"}},
			{BaseStat: 125, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
	}
}

func CharmanderSpecies() *pokeapi.Species {
	return &pokeapi.Species{
		ID:   4,
		Name: "charmander",
		FlavorTextEntries: []pokeapi.FlavorText{
			{FlavorText: "ヒトカゲ", Language: pokeapi.NamedResource{Name: "ja"}},
			{FlavorText: "Obviously prefers\nhot places.\fWhen it rains, steam\nis said to spout\nfrom the tip of its\ftail.", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}
}
