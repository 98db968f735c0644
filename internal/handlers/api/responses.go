package api

import "github.com/FlagBrew/local-pokedex/internal/models"

type pokemonListResponse struct {
	Total   int                `json:"total"`
	Mode    models.FilterMode  `json:"mode"`
	Query   string             `json:"query"`
	Loaded  bool               `json:"loaded"`
	Pokemon []models.ListEntry `json:"pokemon"`
}

type statResponse struct {
	Label      string  `json:"label"`
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Formatted  string  `json:"formatted"`
	BarPercent float64 `json:"bar_percent"`
}

type pokemonResponse struct {
	ID         int            `json:"id"`
	Number     string         `json:"number"`
	Name       string         `json:"name"`
	Height     string         `json:"height"`
	Weight     string         `json:"weight"`
	Categories []string       `json:"categories"`
	Abilities  []string       `json:"abilities"`
	SpriteURL  string         `json:"sprite_url"`
	Stats      []statResponse `json:"stats"`
}

type pokemonDetailResponse struct {
	ID          int              `json:"id"`
	Loading     bool             `json:"loading"`
	Pokemon     *pokemonResponse `json:"pokemon"`
	Theme       models.Theme     `json:"theme"`
	Description string           `json:"description"`
	Next        int              `json:"next"`
	Previous    int              `json:"previous"`
}
