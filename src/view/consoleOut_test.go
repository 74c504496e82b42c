package view

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"termlife/src/universe"
	"testing"
	"time"

	"github.com/logrusorgru/aurora"
)

func TestConsoleOut_Refresh(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleOut(&out, aurora.NewAurora(false))
	a := universe.NewArea()
	a.Set(0, 0, true)
	a.Set(universe.Width-1, universe.Height-1, true)
	a.Set(3, 10, true)

	c.Refresh(a)
	s := out.String()
	if !strings.HasPrefix(s, cursorHome) {
		t.Fatalf("frame does not start with the cursor reset: %q", s[:10])
	}
	lines := strings.Split(strings.TrimPrefix(s, cursorHome), "\n")
	//48 rows, an empty line and the trailing split remainder
	if len(lines) != universe.Height+2 || lines[universe.Height] != "" {
		t.Fatalf("got %v lines, want %v rows and a blank line", len(lines), universe.Height)
	}
	blank := strings.Repeat(" ", universe.Width)
	tests := []struct {
		row  int
		want string
	}{
		{0, " 0█" + blank[1:]},
		{1, " 1" + blank},
		{10, "10   █" + blank[4:]},
		{universe.Height - 1, "47" + blank[1:] + "█"},
	}
	for _, tt := range tests {
		if lines[tt.row] != tt.want {
			t.Errorf("row %v = %q, want %q", tt.row, lines[tt.row], tt.want)
		}
	}

	out.Reset()
	c.Refresh(a)
	if out.String() != s {
		t.Errorf("redrawing the same area must produce the same frame")
	}
}

func TestConsoleOut_FrameStat(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleOut(&out, aurora.NewAurora(false))
	c.FrameStat(universe.Status{IterationTime: 1234567 * time.Nanosecond}, 24)
	if want := "Frametime 1234 us, capped at 24 FPS\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestConsoleOut_Colored(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleOut(&out, aurora.NewAurora(true))
	a := universe.NewArea()
	a.Set(0, 0, true)
	c.Refresh(a)
	if !strings.Contains(out.String(), aurora.Green("█").String()) {
		t.Fatalf("live cells must be drawn in green")
	}
}

func TestAuroraFor_PlainWhenNotTerminal(t *testing.T) {
	f, err := ioutil.TempFile("", "termlife")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	c := NewConsoleOut(f, AuroraFor(f))
	a := universe.NewArea()
	a.Set(0, 0, true)
	c.Refresh(a)
	c.FrameStat(universe.Status{IterationTime: 5 * time.Microsecond}, 24)

	b, err := ioutil.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	s := strings.TrimPrefix(string(b), cursorHome)
	if strings.Contains(s, "\x1b") {
		t.Fatalf("redirected output must not carry colour escapes")
	}
	if !strings.HasPrefix(s, " 0█ ") || !strings.HasSuffix(s, "Frametime 5 us, capped at 24 FPS\n") {
		t.Errorf("unexpected plain output %q...", s[:8])
	}
}
