package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"minesweeper/game"
)

func main() {
	columns := flag.Int("columns", 16, "board width in cells")
	rows := flag.Int("rows", 16, "board height in cells")
	density := flag.Float64("mines-density", 0.2, "percent of mines: 0.15 is trivial, 0.2 good [default], 0.25 hard")
	seed := flag.Int64("seed", 0, "mine layout seed, 0 for a fresh layout every board")
	debug := flag.Bool("debug", false, "start with the debug grid overlay on")
	verbose := flag.Bool("verbose", false, "log every cell action")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "unexpected arguments: "+strings.Join(flag.Args(), " "))
		flag.Usage()
		os.Exit(2)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	config := game.DefaultConfig()
	config.Columns = *columns
	config.Rows = *rows
	config.MineDensity = *density
	config.Seed = *seed

	if *debug {
		game.GetDebugState().ShowGrid = true
	}

	g, err := game.NewGame(config)
	if err != nil {
		logrus.WithError(err).Fatal("could not deal a board")
	}

	ebiten.SetWindowSize(config.ScreenWidth(), config.ScreenHeight())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(g); err != nil {
		logrus.WithError(err).Fatal("game loop failed")
	}
}
