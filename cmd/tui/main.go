package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	columns := flag.Int("columns", 16, "board width in cells")
	rows := flag.Int("rows", 16, "board height in cells")
	density := flag.Float64("mines-density", 0.2, "percent of mines: 0.15 is trivial, 0.2 good [default], 0.25 hard")
	seed := flag.Int64("seed", 0, "mine layout seed, 0 for a fresh layout every board")
	verbose := flag.Bool("verbose", false, "log cell actions to minesweeper-tui.log")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "unexpected arguments: "+strings.Join(flag.Args(), " "))
		flag.Usage()
		os.Exit(2)
	}

	// The terminal belongs to the board; logs go to a file or nowhere.
	if *verbose {
		f, err := os.OpenFile("minesweeper-tui.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "minesweeper:", err)
			os.Exit(1)
		}
		defer f.Close()
		logrus.SetOutput(f)
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetOutput(io.Discard)
	}

	m, err := newModel(*columns, *rows, *density, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(1)
	}
}
