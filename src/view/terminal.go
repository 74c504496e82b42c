package view

import (
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

//AuroraFor enables colours only when f is a terminal
//redirected output gets the plain glyphs
func AuroraFor(f *os.File) aurora.Aurora {
	return aurora.NewAurora(term.IsTerminal(int(f.Fd())))
}
