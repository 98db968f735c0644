package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"formatID":   pokedex.FormatID,
	"formatStat": pokedex.FormatStatValue,
	"barPercent": func(v int) string {
		return strconv.FormatFloat(pokedex.BarPercent(v), 'f', 2, 64)
	},
	"weight": pokedex.FormatWeight,
	"height": pokedex.FormatHeight,
	"upper": func(s string) string {
		return cases.Upper(language.English).String(s)
	},
	"join": strings.Join,
	"css":  func(s string) template.CSS { return template.CSS(s) },
}

var (
	listTemplate   = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/list.html"))
	detailTemplate = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/detail.html"))
)

type listPage struct {
	Query   string
	Mode    models.FilterMode
	Pokemon []models.ListEntry
}

type detailPage struct {
	View     *models.DetailView
	Next     int
	Previous int
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Route(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/pokemon/{id}", h.detail)
	r.Get("/pokemon/{id}/next", h.navigate(pokedex.Next))
	r.Get("/pokemon/{id}/previous", h.navigate(pokedex.Previous))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	dex := pokedex.FromContext(r.Context())
	if dex == nil {
		log.FromContext(r.Context()).Error("pokedex is nil")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page := listPage{
		Query: r.URL.Query().Get("q"),
		Mode:  pokedex.ParseFilterMode(r.URL.Query().Get("by")),
	}
	page.Pokemon = dex.Search(page.Mode, page.Query)

	render(w, r, listTemplate, page)
}

func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	dex := pokedex.FromContext(r.Context())
	if dex == nil {
		log.FromContext(r.Context()).Error("pokedex is nil")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render(w, r, detailTemplate, detailPage{
		View:     dex.Detail(r.Context(), id),
		Next:     pokedex.Next(id),
		Previous: pokedex.Previous(id),
	})
}

func (h *Handler) navigate(step func(int) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		http.Redirect(w, r, "/pokemon/"+strconv.Itoa(step(id)), http.StatusFound)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid pokemon id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.FromContext(r.Context()).WithError(err).Error("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
