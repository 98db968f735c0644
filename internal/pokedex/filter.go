package pokedex

import (
	"strconv"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

// ParseFilterMode maps user input onto a FilterMode. Anything that isn't
// "name" searches by id, which is also the default mode.
func ParseFilterMode(s string) models.FilterMode {
	if strings.EqualFold(strings.TrimSpace(s), string(models.FilterByName)) {
		return models.FilterByName
	}
	return models.FilterByID
}

func Matches(entry models.ListEntry, mode models.FilterMode, term string) bool {
	if mode == models.FilterByName {
		return strings.Contains(strings.ToLower(entry.Name), strings.ToLower(term))
	}
	return strings.Contains(strconv.Itoa(entry.ID), term)
}

// Filter returns the entries matching term, in their original order.
func Filter(entries []models.ListEntry, mode models.FilterMode, term string) []models.ListEntry {
	filtered := []models.ListEntry{}
	for _, entry := range entries {
		if Matches(entry, mode, term) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
