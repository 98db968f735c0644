package gui

import (
	"context"
	"fmt"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const statTrack = 40

var filterModes = []models.FilterMode{models.FilterByID, models.FilterByName}

func (g *Gui) listPage() tview.Primitive {
	search := tview.NewInputField().
		SetLabel("Search ").
		SetFieldWidth(30).
		SetChangedFunc(func(text string) {
			g.term = text
			g.refreshList()
		})

	by := tview.NewDropDown().
		SetLabel(" by ").
		SetOptions([]string{"ID", "Name"}, func(_ string, index int) {
			if index < 0 {
				return
			}
			g.mode = filterModes[index]
			g.refreshList()
		}).
		SetCurrentOption(0)

	g.list = tview.NewList().ShowSecondaryText(false)
	g.list.SetBorder(true).SetTitle("Pokédex")

	search.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			search.SetText("")
		case tcell.KeyEnter, tcell.KeyTab:
			g.app.SetFocus(g.list)
		}
	})

	bar := tview.NewFlex().
		AddItem(search, 0, 2, true).
		AddItem(by, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(bar, 1, 0, true).
		AddItem(g.list, 0, 1, false)

	frame := tview.NewFrame(layout)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow]Enter - details [orange]Tab - search/list [green]Ctrl+L - logs", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokédex")

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyTab {
			return event
		}
		switch {
		case search.HasFocus():
			g.app.SetFocus(by)
		case by.HasFocus():
			g.app.SetFocus(g.list)
		default:
			g.app.SetFocus(search)
		}
		return nil
	})

	g.refreshList()
	return frame
}

// refreshList re-runs the search against the listing. It must run on the
// tview event loop.
func (g *Gui) refreshList() {
	if g.list == nil {
		return
	}
	g.list.Clear()

	var found []models.ListEntry
	if g.dex != nil {
		found = g.dex.Search(g.mode, g.term)
	}

	if len(found) == 0 {
		g.list.AddItem("[red::b]Pokemon Not Found", "", 0, nil)
		return
	}

	for _, entry := range found {
		id := entry.ID
		g.list.AddItem(fmt.Sprintf("#%s  %s", pokedex.FormatID(id), entry.Name), "", 0, func() {
			g.showDetail(id)
		})
	}
}

func (g *Gui) detailPage() tview.Primitive {
	g.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true)

	frame := tview.NewFrame(g.detail)
	frame.AddText("[red]ESC - back[-:-:-:-] [yellow]←/→ - previous/next", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokédex - Details")
	return frame
}

func (g *Gui) logPage() tview.Primitive {
	frame := tview.NewFrame(g.logView)
	frame.AddText("[red]ESC - back", false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Local Pokédex - Logs")
	return frame
}

// showDetail switches to the detail page and loads id. Responses of loads
// superseded by a later navigation are dropped.
func (g *Gui) showDetail(id int) {
	g.currentID = id
	g.detail.SetText("Loading...").ScrollToBeginning()
	g.pages.SwitchToPage("detail")

	if g.loader == nil {
		return
	}

	g.loader.Load(context.Background(), id, func(view *models.DetailView) {
		go g.app.QueueUpdateDraw(func() {
			if view.ID != g.currentID {
				return
			}
			g.detail.SetText(RenderDetail(view)).ScrollToBeginning()
		})
	})
}

func (g *Gui) browserKeys(event *tcell.EventKey) *tcell.EventKey {
	page, _ := g.pages.GetFrontPage()

	if event.Key() == tcell.KeyCtrlL {
		g.pages.SwitchToPage("logs")
		return nil
	}

	switch page {
	case "detail":
		switch event.Key() {
		case tcell.KeyEscape:
			if g.loader != nil {
				g.loader.Cancel()
			}
			g.pages.SwitchToPage("list")
			return nil
		case tcell.KeyRight:
			g.showDetail(pokedex.Next(g.currentID))
			return nil
		case tcell.KeyLeft:
			g.showDetail(pokedex.Previous(g.currentID))
			return nil
		}
	case "logs":
		if event.Key() == tcell.KeyEscape {
			g.pages.SwitchToPage("list")
			return nil
		}
	case "list":
		if event.Key() == tcell.KeyEscape && g.list.HasFocus() {
			g.Stop()
			return nil
		}
	}

	return event
}

// RenderDetail formats a detail view with tview color tags. A view without
// details renders as the loading placeholder.
func RenderDetail(view *models.DetailView) string {
	entry := view.Entry
	if entry == nil {
		return "Loading..."
	}

	color := view.Theme.Color
	var b strings.Builder

	fmt.Fprintf(&b, "[%s::b]%s[-:-:-]  #%s\n\n", color, strings.ToUpper(entry.Name), pokedex.FormatID(entry.ID))

	for _, category := range entry.Categories {
		fmt.Fprintf(&b, "[black:%s:b] %s [-:-:-] ", pokedex.ThemeFor(category).Color, strings.ToUpper(category))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "[%s::b]About[-:-:-]\n", color)
	fmt.Fprintf(&b, "Weight: %s   Height: %s\n", pokedex.FormatWeight(entry.Weight), pokedex.FormatHeight(entry.Height))
	fmt.Fprintf(&b, "Moves: %s\n\n", strings.Join(entry.Abilities, ", "))

	if view.Description != "" {
		b.WriteString(tview.Escape(view.Description))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "[%s::b]Base Stats[-:-:-]\n", color)
	for _, stat := range entry.Stats {
		cells := pokedex.BarCells(stat.Value, statTrack)
		track := ""
		if cells < statTrack {
			track = strings.Repeat("░", statTrack-cells)
		}
		fmt.Fprintf(&b, "[%s::b]%5s[-:-:-] %s [%s]%s[-]%s\n",
			color, stat.Label, pokedex.FormatStatValue(stat.Value), color, strings.Repeat("█", cells), track)
	}

	return b.String()
}
