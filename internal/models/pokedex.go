package models

// FilterMode selects which attribute of a ListEntry a search term is matched
// against.
type FilterMode string

const (
	FilterByID   FilterMode = "id"
	FilterByName FilterMode = "name"
)

// ListEntry is a catalog row. ID is the 1-based position within the merged
// listing, not an identifier returned by the API.
type ListEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type Stat struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DetailEntry struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Height     int      `json:"height"`
	Weight     int      `json:"weight"`
	Categories []string `json:"categories"`
	Abilities  []string `json:"abilities"`
	Stats      []Stat   `json:"stats"`
	SpriteURL  string   `json:"sprite_url"`
}

// Theme is the background/text pair derived from a pokemon's first type.
type Theme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Color      string `json:"color"`
}

// DetailView is the merged result of the details and species requests. Entry
// is nil when the details request failed, Description is empty when the
// species request failed or had no entry in the wanted language.
type DetailView struct {
	ID          int          `json:"id"`
	Entry       *DetailEntry `json:"pokemon"`
	Theme       Theme        `json:"theme"`
	Description string       `json:"description"`
}
