package universe

//Universe is the Life engine
//it is driven by a single goroutine and holds two areas:
//the current generation and the buffer the next one is calculated into
type Universe struct {
	options Options
	state   Status
	area    Area
	tmpBuff Area
	views   []Viewer
	limiter *limiter
}

//New creates the Universe with an all-dead area
func New(o *Options) *Universe {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	u := Universe{
		options: *o,
		area:    NewArea(),
		tmpBuff: NewArea(),
	}
	u.limiter = newLimiter(u.options.Interval, u.options.SleepMargin)
	return &u
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return u.state
}

//Area returns current universe area (field where cells is living)
//the returned area must not be modified by the caller
func (u *Universe) Area() Area {
	return u.area
}

//RegisterViewer registers the viewer - the universe will call the viewer on every frame
func (u *Universe) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
}

//Settle settles the universe with live cells
//vc - array of x,y coordinates, the ones outside the area are skipped
func (u *Universe) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		u.area.Set(v[0], v[1], true)
	}
	u.state.LiveCells = u.area.LiveCells()
}

//Step calculates the next generation
//every cell is evaluated against the same generation into tmpBuff, then the buffers are swapped
func (u *Universe) Step() {
	liveCells := 0
	for y := range u.area.Entities {
		for x := range u.area.Entities[y] {
			nextState := u.cellNextState(x, y)
			if nextState {
				liveCells++
			}
			u.tmpBuff.Entities[y][x] = Cell(nextState)
		}
	}
	u.area, u.tmpBuff = u.tmpBuff, u.area
	u.state.IterationNum++
	u.state.LiveCells = liveCells
}

//Run shows the initial generation, waits StartupDelay and then
//steps the universe once per frame until MaxSteps is reached (forever if 0)
func (u *Universe) Run() {
	u.refreshView()
	if u.options.StartupDelay > 0 {
		u.limiter.sleep(u.options.StartupDelay)
	}
	for i := 0; u.options.MaxSteps == 0 || i < u.options.MaxSteps; i++ {
		u.frame()
	}
}

//frame draws the current generation, steps and caps the frame rate
//a step longer than the frame period is not compensated
func (u *Universe) frame() {
	u.refreshView()
	start := u.limiter.now()
	u.Step()
	elapsed := u.limiter.now().Sub(start)
	u.state.IterationTime = elapsed
	if elapsed >= u.options.Interval {
		return
	}
	u.frameStat()
	u.limiter.wait(start, elapsed)
}

//cellNextState calculates the next state for the cell
func (u *Universe) cellNextState(x int, y int) (live bool) {
	liveNeighbours := u.liveNeighbours(x, y)
	return liveNeighbours == 3 || (liveNeighbours == 2 && bool(u.area.Entities[y][x]))
}

//liveNeighbours counts the live cells around x, y
//coordinates outside the area count as dead
func (u *Universe) liveNeighbours(x int, y int) int {
	liveNeighbours := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if u.area.Cell(x+i, y+j) {
				liveNeighbours++
			}
		}
	}
	return liveNeighbours
}

//refreshView calls Refresh event for all registered views
func (u *Universe) refreshView() {
	for _, v := range u.views {
		v.Refresh(u.area)
	}
}

func (u *Universe) frameStat() {
	for _, v := range u.views {
		v.FrameStat(u.state, u.options.FPSCap)
	}
}
