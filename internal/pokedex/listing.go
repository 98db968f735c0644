package pokedex

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the PokeAPI client the pokedex needs.
type API interface {
	ListPokemon(ctx context.Context, limit, offset int) (*pokeapi.NamedResourceList, error)
	Pokemon(ctx context.Context, id int) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, id int) (*pokeapi.Species, error)
}

type ListingOptions struct {
	PageSize         int
	Limit            int
	ImageURLTemplate string
}

// PageOffsets returns the offset of every page needed to cover [0, limit).
func PageOffsets(pageSize, limit int) []int {
	if pageSize <= 0 {
		return nil
	}

	var offsets []int
	for offset := 0; offset < limit; offset += pageSize {
		offsets = append(offsets, offset)
	}
	return offsets
}

// PageLimit is the page size to request at offset so that the listing stops
// at limit.
func PageLimit(pageSize, limit, offset int) int {
	return min(pageSize, limit-offset)
}

// ImageURL substitutes id into the {id} placeholder of template.
func ImageURL(template string, id int) string {
	return strings.ReplaceAll(template, "{id}", strconv.Itoa(id))
}

// FetchListing requests every page concurrently and merges them in request
// order. A single failed page fails the whole listing.
func FetchListing(ctx context.Context, api API, opts ListingOptions) ([]models.ListEntry, error) {
	offsets := PageOffsets(opts.PageSize, opts.Limit)
	pages := make([][]pokeapi.NamedResource, len(offsets))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, offset := range offsets {
		eg.Go(func() error {
			page, err := api.ListPokemon(egCtx, PageLimit(opts.PageSize, opts.Limit, offset), offset)
			if err != nil {
				return fmt.Errorf("fetching page at offset %d: %w", offset, err)
			}
			pages[i] = page.Results
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	entries := []models.ListEntry{}
	for _, page := range pages {
		for _, result := range page {
			id := len(entries) + 1
			entries = append(entries, models.ListEntry{
				ID:       id,
				Name:     result.Name,
				ImageURL: ImageURL(opts.ImageURLTemplate, id),
			})
		}
	}

	return entries, nil
}
