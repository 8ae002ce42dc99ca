package components

import "github.com/yohamta/donburi"

// ClockData carries the fixed timestep for the current tick.
type ClockData struct {
	Delta float64 // seconds
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
