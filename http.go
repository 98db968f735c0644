package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/handlers/api"
	"github.com/FlagBrew/local-pokedex/internal/handlers/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/lrstanley/chix"
)

func httpServer(ctx context.Context) *http.Server {
	chix.DefaultAPIPrefix = "/api/"

	r := chi.NewRouter()

	r.Use(
		chix.UseContextIP,
		middleware.RequestID,
		chix.UseStructuredLogger(logger),
		chix.UseDebug(cli.Debug),
		chix.UseRecoverer,
		middleware.Compress(5),
		middleware.Maybe(middleware.StripSlashes, func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/debug/")
		}),
		chix.UseNextURL,
	)

	if cfg.HTTP.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.HTTP.RateLimit, time.Minute))
	}

	if cli.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Route("/api/v1/pokemon", api.NewHandler().Route)
	r.Group(views.NewHandler().Route)

	return &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.ListeningAddr, fmt.Sprintf("%d", cfg.HTTP.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		// Detail pages wait on two upstream requests.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
}
