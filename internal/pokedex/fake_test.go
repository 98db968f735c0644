package pokedex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
)

var errUnavailable = errors.New("unavailable")

type fakeAPI struct {
	mu       sync.Mutex
	pages    map[int][]pokeapi.NamedResource
	pokemon  map[int]*pokeapi.Pokemon
	species  map[int]*pokeapi.Species
	failPage map[int]bool
	calls    []string

	// block, when set, is waited on by Pokemon and Species for the given id.
	block map[int]chan struct{}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) wait(ctx context.Context, id int) error {
	ch, ok := f.block[id]
	if !ok {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeAPI) ListPokemon(_ context.Context, limit, offset int) (*pokeapi.NamedResourceList, error) {
	f.record(fmt.Sprintf("list %d %d", limit, offset))
	if f.failPage[offset] {
		return nil, errUnavailable
	}
	return &pokeapi.NamedResourceList{Results: f.pages[offset]}, nil
}

func (f *fakeAPI) Pokemon(ctx context.Context, id int) (*pokeapi.Pokemon, error) {
	f.record(fmt.Sprintf("pokemon %d", id))
	if err := f.wait(ctx, id); err != nil {
		return nil, err
	}
	p, ok := f.pokemon[id]
	if !ok {
		return nil, &pokeapi.StatusError{Path: fmt.Sprintf("/pokemon/%d", id), StatusCode: 404}
	}
	return p, nil
}

func (f *fakeAPI) Species(ctx context.Context, id int) (*pokeapi.Species, error) {
	f.record(fmt.Sprintf("species %d", id))
	if err := f.wait(ctx, id); err != nil {
		return nil, err
	}
	s, ok := f.species[id]
	if !ok {
		return nil, &pokeapi.StatusError{Path: fmt.Sprintf("/pokemon-species/%d", id), StatusCode: 404}
	}
	return s, nil
}

func names(prefix string, n int) []pokeapi.NamedResource {
	out := make([]pokeapi.NamedResource, n)
	for i := range out {
		out[i] = pokeapi.NamedResource{Name: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return out
}

func charmander() *pokeapi.Pokemon {
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
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
	}
}
