package universe

//the universe dimensions are fixed for the process lifetime
const (
	Width  = 128
	Height = 48
)

type Cell bool

//Area is the field where cells are living
//rows of Entities share one row-major backing array
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//NewArea allocates an all-dead Width x Height area
func NewArea() Area {
	return createArea(Width, Height)
}

//Cell returns the cell state at position x, y
//everything outside the area is dead, the field does not wrap
func (a Area) Cell(x int, y int) Cell {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return false
	}
	return a.Entities[y][x]
}

//Set places the cell at position x, y, coordinates outside the area are ignored
func (a Area) Set(x int, y int, c Cell) {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return
	}
	a.Entities[y][x] = c
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() int {
	liveCells := 0
	a.walk(func(x int, y int, e Cell) {
		if e {
			liveCells++
		}
	})
	return liveCells
}

//Equal reports whether both areas have the same dimensions and cells
func (a Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			if a.Entities[y][x] != b.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

//walk walks the entire area and calls the cb function for each cell
func (a Area) walk(cb func(x int, y int, entity Cell)) {
	for y := range a.Entities {
		for x := range a.Entities[y] {
			cb(x, y, a.Entities[y][x])
		}
	}
}

//createArea allocates the new area backed by a single slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
