package universe

import (
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

//LiveMarker is the pattern file character of a live cell, any other character is a dead one
const LiveMarker = 'x'

//LoadFile settles the universe with the pattern stored in the file at path
//the open error is returned as is, on any error the area is left untouched
func (u *Universe) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(u.Load(f), "could not read %s", path)
}

//Load settles the universe with the text pattern read from r
//one line per row, one character per column
//rows and columns beyond the area are ignored, cells not mentioned keep their state
func (u *Universe) Load(r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return errors.New("stream did not contain valid UTF-8")
	}
	content := strings.TrimSuffix(string(b), "\n")
	for y, line := range strings.Split(content, "\n") {
		if y >= u.area.Height {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		x := 0
		for _, c := range line {
			if x >= u.area.Width {
				break
			}
			u.area.Entities[y][x] = c == LiveMarker
			x++
		}
	}
	u.state.LiveCells = u.area.LiveCells()
	return nil
}
