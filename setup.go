package main

import (
	"context"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/FlagBrew/local-pokedex/internal/utils"
	"github.com/apex/log"
)

func setup() (context.Context, context.CancelFunc) {
	cli.Parse()
	logger = cli.Logger

	ctx, cancel := context.WithCancel(context.Background())
	ctx = log.NewContext(ctx, logger)
	cfg = utils.Setup(ctx, cli.Flags.Mode, cli.Flags.ConfigFile)

	if cfg.FancyScreen {
		app = gui.NewBrowser(cfg)
		cli.Logger = utils.NewLogger(log.InfoLevel, cli.Debug, true, app.GetLogOutput())
		logger = cli.Logger
		ctx = log.NewContext(ctx, logger)
		go func() {
			if err := app.Start(); err != nil {
				logger.WithError(err).Error("fancy screen stopped")
			}
			cancel()
		}()
	}

	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, time.Duration(cfg.PokeAPI.TimeoutSeconds)*time.Second)
	dex = pokedex.New(client, pokedex.Options{
		Listing: pokedex.ListingOptions{
			PageSize:         cfg.PokeAPI.PageSize,
			Limit:            cfg.PokeAPI.Limit,
			ImageURLTemplate: cfg.PokeAPI.ImageURLTemplate,
		},
		Language: cfg.PokeAPI.Language,
	})
	ctx = pokedex.NewContext(ctx, dex)

	// A failed listing is logged by Load and leaves the pokedex empty.
	_ = dex.Load(ctx)

	if app != nil {
		app.SetDex(dex)
	}

	return ctx, cancel
}
