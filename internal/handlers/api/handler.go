package api

import (
	"net/http"
	"strconv"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.detail)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	dex := pokedex.FromContext(r.Context())
	if dex == nil {
		log.FromContext(r.Context()).Error("pokedex is nil")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "pokedex is nil"})
		return
	}

	mode := pokedex.ParseFilterMode(r.URL.Query().Get("by"))
	term := r.URL.Query().Get("q")
	found := dex.Search(mode, term)

	chix.JSON(w, r, http.StatusOK, pokemonListResponse{
		Total:   len(found),
		Mode:    mode,
		Query:   term,
		Loaded:  dex.Loaded(),
		Pokemon: found,
	})
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "invalid pokemon id"})
		return
	}

	dex := pokedex.FromContext(r.Context())
	if dex == nil {
		log.FromContext(r.Context()).Error("pokedex is nil")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "pokedex is nil"})
		return
	}

	view := dex.Detail(r.Context(), id)

	chix.JSON(w, r, http.StatusOK, toDetailResponse(view))
}

func toDetailResponse(view *models.DetailView) pokemonDetailResponse {
	resp := pokemonDetailResponse{
		ID:          view.ID,
		Loading:     view.Entry == nil,
		Theme:       view.Theme,
		Description: view.Description,
		Next:        pokedex.Next(view.ID),
		Previous:    pokedex.Previous(view.ID),
	}

	if view.Entry == nil {
		return resp
	}

	entry := view.Entry
	resp.Pokemon = &pokemonResponse{
		ID:         entry.ID,
		Number:     "#" + pokedex.FormatID(entry.ID),
		Name:       entry.Name,
		Height:     pokedex.FormatHeight(entry.Height),
		Weight:     pokedex.FormatWeight(entry.Weight),
		Categories: entry.Categories,
		Abilities:  entry.Abilities,
		SpriteURL:  entry.SpriteURL,
		Stats:      []statResponse{},
	}

	for _, stat := range entry.Stats {
		resp.Pokemon.Stats = append(resp.Pokemon.Stats, statResponse{
			Label:      stat.Label,
			Name:       stat.Name,
			Value:      stat.Value,
			Formatted:  pokedex.FormatStatValue(stat.Value),
			BarPercent: pokedex.BarPercent(stat.Value),
		})
	}

	return resp
}
