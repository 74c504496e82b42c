package view

import (
	"bytes"
	"fmt"
	"io"
	"termlife/src/universe"

	"github.com/logrusorgru/aurora"
)

//cursorHome moves the terminal cursor to the top-left corner
//so every frame overwrites the previous one
const cursorHome = "\x1b[1;1H"

//ConsoleOut draws the universe to a plain terminal stream
type ConsoleOut struct {
	w          io.Writer
	au         aurora.Aurora
	liveFiller string
	deadFiller string
	buf        bytes.Buffer
}

func NewConsoleOut(w io.Writer, au aurora.Aurora) *ConsoleOut {
	return &ConsoleOut{
		w:          w,
		au:         au,
		liveFiller: au.Green("█").String(),
		deadFiller: " ",
	}
}

//Refresh redraws the entire field at once, each row prefixed by its index
func (c *ConsoleOut) Refresh(a universe.Area) {
	c.buf.Reset()
	c.buf.WriteString(cursorHome)
	for i, l := range a.Entities {
		fmt.Fprintf(&c.buf, "%2d", i)
		for _, e := range l {
			if e {
				c.buf.WriteString(c.liveFiller)
			} else {
				c.buf.WriteString(c.deadFiller)
			}
		}
		c.buf.WriteByte('\n')
	}
	c.buf.WriteByte('\n')
	_, _ = c.w.Write(c.buf.Bytes())
}

//FrameStat prints the duration of the last step and the frame rate cap
func (c *ConsoleOut) FrameStat(st universe.Status, fpsCap float64) {
	_, _ = fmt.Fprintf(c.w, "%s %v us, %s %v FPS\n",
		c.au.Colorize("Frametime", aurora.CyanFg),
		st.IterationTime.Microseconds(),
		c.au.Colorize("capped at", aurora.CyanFg),
		fpsCap)
}
