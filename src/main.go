package main

import (
	"fmt"
	"log"
	"os"
	"termlife/src/universe"
	"termlife/src/view"

	"github.com/integrii/flaggy"
)

var version = "dev"

func main() {
	if err := newParser().ParseArgs(os.Args[1:]); err != nil {
		log.Println(err)
	}

	u := universe.New(&universe.DefaultUniverseOptions)

	if err := u.LoadFile(universe.InitialStateFile); err != nil {
		log.Println(err)
	}

	u.RegisterViewer(view.NewConsoleOut(os.Stdout, view.AuroraFor(os.Stdout)))
	u.Run()
}

//newParser handles --help and --version, the simulation itself takes no options
//any other argument is ignored
func newParser() *flaggy.Parser {
	p := flaggy.NewParser("termlife")
	p.Description = fmt.Sprintf("\"The Life\" game simulation on a %vx%v terminal grid, seeded from %v",
		universe.Height, universe.Width, universe.InitialStateFile)
	p.Version = version
	p.ShowHelpOnUnexpected = false
	return p
}
