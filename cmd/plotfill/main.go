package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"plotfill/internal/tui"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: plotfill <command> [options]

commands:
  fill      fill SVG shapes with plotter line patterns
  patterns  list available fill patterns
  tui       interactive pattern previewer

run 'plotfill fill -h' for fill options`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "fill":
		if err := runFill(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "plotfill:", err)
			os.Exit(1)
		}
	case "patterns":
		runPatterns()
	case "tui":
		var m tea.Model
		if len(os.Args) > 2 {
			m = tui.NewWithPath(os.Args[2])
		} else {
			m = tui.New()
		}
		if err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Start(); err != nil {
			log.Fatal(err)
		}
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "plotfill: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
