package main

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"handlecalc/internal/config"
	"handlecalc/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	// The alt screen owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "handlecalc")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.New(tui.Options{
		Unit:      cfg.DisplayUnit(),
		Precision: cfg.Precision,
		OutputDir: cfg.OutputDir,
		Diagram:   cfg.DiagramOptions(),
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
