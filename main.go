package main

import (
	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
)

var (
	cli    = &clix.CLI[models.Flags]{}
	logger log.Interface
	dex    *pokedex.Dex
	app    *gui.Gui
	cfg    *models.Config
)

func main() {
	ctx, cancel := setup()
	defer cancel()

	logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
	if err := chix.RunContext(ctx, httpServer(ctx)); err != nil {
		logger.WithError(err).Error("http server stopped")
	}

	if app != nil {
		app.Stop()
	}
}
