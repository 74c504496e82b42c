package universe

import "time"

//Options represents the Universe's options
//all of them are fixed at startup, the command line doesn't expose them
type Options struct {
	FPSCap       float64
	Interval     time.Duration //target frame period, 0 disables the cap
	StartupDelay time.Duration //pause after the first frame
	SleepMargin  time.Duration //sleep is stopped this early and the rest is spun
	MaxSteps     int           //0 runs forever
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	LiveCells     int
	IterationTime time.Duration //measured duration of the last frame step
}

//Viewer is the interface to any Viewer - the object who can display simulation data
type Viewer interface {
	Refresh(a Area)
	FrameStat(st Status, fpsCap float64)
}

//default options
const (
	DefFPSCap       = 24
	DefStartupDelay = time.Millisecond * 500
	DefSleepMargin  = time.Millisecond
	DefMaxSteps     = 0
)

//InitialStateFile is the pattern file looked up in the working directory
const InitialStateFile = "initial_state.txt"

var DefaultUniverseOptions = Options{
	FPSCap:       DefFPSCap,
	Interval:     time.Second / DefFPSCap,
	StartupDelay: DefStartupDelay,
	SleepMargin:  DefSleepMargin,
	MaxSteps:     DefMaxSteps,
}
