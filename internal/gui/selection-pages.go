package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (g *Gui) displayMode(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	list.AddItem("simple", "Plain and simple, no fancy terminal GUI, just plain-ol logs. Browse the pokedex from your web browser.", '1', func() {
		g.config.FancyScreen = false
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})
	list.AddItem("fancy", "Also lets you browse the pokedex right here in the terminal, with the logs on a separate page.", '2', func() {
		g.config.FancyScreen = true
		p.AddPage("confirm", g.confirmationPage(p), true, false)
		p.SwitchToPage("confirm")
	})

	frame := tview.NewFrame(list)
	frame.SetBorder(true)
	frame.SetTitle("Local Pokédex - Choosing Display Mode")
	frame.AddText("Please select below which display mode you would like to use when running Local Pokédex", true, tview.AlignLeft, tcell.ColorYellow)
	frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - continue", false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}
