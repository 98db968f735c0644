package gui

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/language"
)

func digitsOnly(textToCheck string, lastChar rune) bool {
	return unicode.IsDigit(lastChar)
}

// checkFetchWindow parses the page size and limit fields with the same bounds
// the configuration file is validated against.
func checkFetchWindow(pageSizeText, limitText string) (pageSize, limit int, errors []string) {
	pageSize, err := strconv.Atoi(pageSizeText)
	if pageSizeText != "" && (err != nil || pageSize < 1 || pageSize > models.MaxPageSize) {
		errors = append(errors, fmt.Sprintf("Page Size: must be between 1 and %d", models.MaxPageSize))
	}

	limit, err = strconv.Atoi(limitText)
	if limitText != "" && (err != nil || limit < 1) {
		errors = append(errors, "Limit: must be at least 1")
	}

	return pageSize, limit, errors
}

func (g *Gui) pokeapiConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	fieldNames := []string{"Base URL", "Page Size", "Limit", "Description Language"}
	values := []string{
		g.config.PokeAPI.BaseURL,
		strconv.Itoa(g.config.PokeAPI.PageSize),
		strconv.Itoa(g.config.PokeAPI.Limit),
		g.config.PokeAPI.Language,
	}

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below, the defaults are what the public PokeAPI expects", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
	}
	defaultFrameDraw()

	form.AddInputField(fieldNames[0], values[0], 40, nil, func(text string) {
		values[0] = text
	})
	form.AddTextView("Listing Info", `The listing is fetched once at start-up, one request per page, until the limit is reached.
Pokemon are numbered by their position in the listing, so keep the listing starting at the beginning of the catalog.`, 0, 0, true, true)
	form.AddInputField(fieldNames[1], values[1], 10, digitsOnly, func(text string) {
		values[1] = text
	})
	form.AddInputField(fieldNames[2], values[2], 10, digitsOnly, func(text string) {
		values[2] = text
	})
	form.AddInputField(fieldNames[3], values[3], 10, nil, func(text string) {
		values[3] = text
	})

	form.AddButton("Submit", func() {
		defaultFrameDraw()
		errors := []string{}

		for i, fieldName := range fieldNames {
			if values[i] == "" {
				errors = append(errors, fmt.Sprintf("%s: is required", fieldName))
			}
		}

		if u, err := url.Parse(values[0]); values[0] != "" && (err != nil || u.Scheme == "" || u.Host == "") {
			errors = append(errors, "Base URL: input is not a valid URL")
		}

		pageSize, limit, fetchErrors := checkFetchWindow(values[1], values[2])
		errors = append(errors, fetchErrors...)

		if _, err := language.Parse(values[3]); values[3] != "" && err != nil {
			errors = append(errors, "Description Language: "+err.Error())
		}

		if len(errors) > 0 {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			for _, v := range errors {
				frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
			}
			return
		}

		g.config.PokeAPI.BaseURL = values[0]
		g.config.PokeAPI.PageSize = pageSize
		g.config.PokeAPI.Limit = limit
		g.config.PokeAPI.Language = values[3]

		p.SwitchToPage("http-config")
	})

	frame.SetBorder(true)
	frame.SetTitle("Local Pokédex - Configuring PokeAPI")

	return frame
}

func (g *Gui) httpConfigPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()
	frame := tview.NewFrame(form)

	chosenAddr := "127.0.0.1"
	chosenPort := "8080"

	if g.config.HTTP.ListeningAddr != "" {
		chosenAddr = g.config.HTTP.ListeningAddr
	}

	if g.config.HTTP.Port != 0 {
		chosenPort = fmt.Sprintf("%d", g.config.HTTP.Port)
	}

	defaultFrameDraw := func() {
		frame.Clear()
		frame.AddText("Please fill out the form below, with the information", true, tview.AlignLeft, tcell.ColorYellow)
		frame.AddText("[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs", false, tview.AlignLeft, tcell.ColorYellow)
		if chosenAddr == "0.0.0.0" || chosenAddr == "::" {
			frame.AddText(fmt.Sprintf("Using %s makes the pokedex reachable by every machine on your network", chosenAddr), true, tview.AlignLeft, tcell.ColorRed)
		}
	}

	defaultFrameDraw()
	availableAddresses := []string{"127.0.0.1", "0.0.0.0"}

	ipHelpText := `
When selecting the listening address, 127.0.0.1 only lets this computer open the pokedex, 0.0.0.0 listens on all IP addresses bound to your computer.

You may also bind to a specific IP address and choose it from the dropdown list.
Do keep in mind, that if the IP assignment changes, you will need to update the configuration file.
`

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		ipHelpText = fmt.Sprintf(`Due to an error, the application couldn't list the IPs assigned to your machine, as such only the defaults are offered
Error info: %s
`, err.Error())
	} else {
		for _, address := range addrs {
			ip := strings.Split(address.String(), "/")[0]
			if strings.HasPrefix(ip, "fe80") || slices.Contains(availableAddresses, ip) {
				continue
			}
			availableAddresses = append(availableAddresses, ip)
		}
	}

	index := slices.Index(availableAddresses, chosenAddr)
	if index == -1 {
		index = 0
	}

	form.AddTextView("IP Info", ipHelpText, 0, 0, true, true)
	form.AddDropDown("Listening Address", availableAddresses, index, func(option string, optionIndex int) {
		chosenAddr = availableAddresses[optionIndex]
		defaultFrameDraw()
	})
	form.AddTextView("Port Info", `When choosing the port, keep in mind the following:
1. the port must be between 1 and 65535
2. on certain platforms (such as Linux), ports 1-1023 are "privileged ports", meaning you need to be running the server as root [::b](STRONGLY NOT RECOMMENDED)[-:-:-:-] to bind to them.
The default port (8080) should be good for most users, if it's in use, try incrementing it.`, 0, 0, true, true)
	form.AddInputField("Port", chosenPort, 20, func(textToCheck string, lastChar rune) bool {
		if !unicode.IsDigit(lastChar) {
			return false
		}

		// Make sure the port is between 1 and 65535
		num, _ := strconv.Atoi(textToCheck)

		return num > 0 && num <= 65535
	}, func(text string) {
		chosenPort = text
	})

	form.AddButton("Submit", func() {
		defaultFrameDraw()
		if chosenPort == "" {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText("Port: Please enter a valid port number", true, tview.AlignLeft, tcell.ColorRed)
			return
		}

		l, err := net.Listen("tcp", net.JoinHostPort(chosenAddr, chosenPort))
		if err != nil {
			frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
			frame.AddText(err.Error(), true, tview.AlignLeft, tcell.ColorRed)
			return
		}
		l.Close()

		port, _ := strconv.Atoi(chosenPort)
		g.config.HTTP.ListeningAddr = chosenAddr
		g.config.HTTP.Port = port

		p.SwitchToPage("display-config")
	})

	frame.SetBorder(true)
	frame.SetTitle("Local Pokédex - Configuring HTTP")

	return frame
}
