package pokedex

import (
	"context"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/apex/log"
	"golang.org/x/sync/errgroup"
)

// statLabels is the display order of the base stats as returned by the API.
var statLabels = []string{"HP", "ATK", "DEF", "SATK", "SDEF", "SPD"}

var flavorTextReplacer = strings.NewReplacer("\n", " ", "\f", " ")

// NormalizeFlavorText replaces each embedded line or page break with a single
// space.
func NormalizeFlavorText(s string) string {
	return flavorTextReplacer.Replace(s)
}

// Description picks the first flavor text in the given language. It returns
// an empty string when there is none.
func Description(species *pokeapi.Species, language string) string {
	if species == nil {
		return ""
	}

	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == language {
			return NormalizeFlavorText(entry.FlavorText)
		}
	}
	return ""
}

// ToDetailEntry flattens the API record into the view model.
func ToDetailEntry(p *pokeapi.Pokemon) *models.DetailEntry {
	entry := &models.DetailEntry{
		ID:         p.ID,
		Name:       p.Name,
		Height:     p.Height,
		Weight:     p.Weight,
		Categories: make([]string, 0, len(p.Types)),
		Abilities:  make([]string, 0, len(p.Abilities)),
		Stats:      make([]models.Stat, 0, len(p.Stats)),
		SpriteURL:  p.Sprites.FrontDefault,
	}

	for _, t := range p.Types {
		entry.Categories = append(entry.Categories, t.Type.Name)
	}

	for _, a := range p.Abilities {
		entry.Abilities = append(entry.Abilities, a.Ability.Name)
	}

	for i, s := range p.Stats {
		label := s.Stat.Name
		if i < len(statLabels) {
			label = statLabels[i]
		}
		entry.Stats = append(entry.Stats, models.Stat{
			Label: label,
			Name:  s.Stat.Name,
			Value: s.BaseStat,
		})
	}

	return entry
}

// FetchDetail requests the details and the species of id concurrently. The
// two requests fail independently: a failure is logged and leaves its part of
// the view at the default.
func FetchDetail(ctx context.Context, api API, id int, language string) *models.DetailView {
	logger := log.FromContext(ctx).WithField("id", id)

	view := &models.DetailView{
		ID:    id,
		Theme: DefaultTheme,
	}

	eg, _ := errgroup.WithContext(ctx)

	var (
		entry       *models.DetailEntry
		description string
	)

	eg.Go(func() error {
		p, err := api.Pokemon(ctx, id)
		if err != nil {
			logger.WithError(err).Error("failed to fetch pokemon details")
			return nil
		}
		entry = ToDetailEntry(p)
		return nil
	})

	eg.Go(func() error {
		species, err := api.Species(ctx, id)
		if err != nil {
			logger.WithError(err).Error("failed to fetch pokemon species")
			return nil
		}
		description = Description(species, language)
		return nil
	})

	_ = eg.Wait()

	if entry != nil {
		view.Entry = entry
		view.Theme = ThemeForCategories(entry.Categories)
	}
	view.Description = description

	return view
}
