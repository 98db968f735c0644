package gui

import (
	"io"
	"os"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Gui struct {
	app    *tview.Application
	pages  *tview.Pages
	config *models.Config

	// Fancy screen state, owned by the tview event loop.
	dex       *pokedex.Dex
	loader    *pokedex.DetailLoader
	logView   *tview.TextView
	list      *tview.List
	detail    *tview.TextView
	term      string
	mode      models.FilterMode
	currentID int
}

func newGui(config *models.Config) *Gui {
	g := &Gui{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		config: &models.Config{},
		mode:   models.FilterByID,
	}

	if config != nil {
		g.config = config
	}

	g.app.EnableMouse(true)

	return g
}

// NewWizard builds the first-run set-up wizard, which fills in config.
func NewWizard(config *models.Config) *Gui {
	g := newGui(config)

	g.pages.AddPage("setup", g.introPage(g.pages), true, true)
	g.pages.AddPage("pokeapi-config", g.pokeapiConfigPage(g.pages), true, false)
	g.pages.AddPage("http-config", g.httpConfigPage(g.pages), true, false)
	g.pages.AddPage("display-config", g.displayMode(g.pages), true, false)

	g.pages.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			g.app.Stop()
			os.Exit(0)
		}
		return event
	})

	g.app.SetRoot(g.pages, true)
	return g
}

// NewBrowser builds the fancy screen: the pokemon list, the detail view and
// the application log.
func NewBrowser(config *models.Config) *Gui {
	g := newGui(config)

	g.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(1000).
		SetChangedFunc(func() {
			g.app.Draw()
		})

	g.pages.AddPage("list", g.listPage(), true, true)
	g.pages.AddPage("detail", g.detailPage(), true, false)
	g.pages.AddPage("logs", g.logPage(), true, false)

	g.pages.SetInputCapture(g.browserKeys)
	g.app.SetRoot(g.pages, true)
	return g
}

// SetDex attaches the pokedex the browser reads from and renders its current
// listing.
func (g *Gui) SetDex(dex *pokedex.Dex) {
	go g.app.QueueUpdateDraw(func() {
		g.dex = dex
		g.loader = dex.NewDetailLoader()
		g.refreshList()
	})
}

// GetLogOutput is where the application log should be written while the
// fancy screen is up.
func (g *Gui) GetLogOutput() io.Writer {
	if g.logView == nil {
		return io.Discard
	}
	return tview.ANSIWriter(g.logView)
}

// Start runs the event loop until Stop. A detail load still in flight is
// cancelled once the loop is gone.
func (g *Gui) Start() error {
	err := g.app.Run()

	// g.loader is only written by the event loop, which has returned by now.
	if g.loader != nil {
		g.loader.Cancel()
	}

	return err
}

func (g *Gui) Stop() {
	g.app.Stop()
}
