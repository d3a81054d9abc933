package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vlist/internal/config"
	"vlist/internal/infra/logx"
	"vlist/internal/ui"
)

func main() {
	// Enable debug logging when DEBUG environment variable is set
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logx.SetOutput(f)
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Println("config:", err)
		os.Exit(1)
	}

	var src *ui.LineSource
	if len(os.Args) > 1 {
		src, err = ui.OpenLineSource(os.Args[1])
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		if cfg.Label == config.DefaultLabel {
			cfg.Label = os.Args[1]
		}
	} else {
		src = ui.SyntheticSource(50000)
		if cfg.Label == config.DefaultLabel {
			cfg.Label = "sample data"
		}
	}
	defer src.Close()

	m := ui.NewModel(cfg, src)
	defer m.Close()

	if _, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
