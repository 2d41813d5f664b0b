package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the scene time base. It advances one fixed step per update so
// narrative timers and the canvas cadence follow the game's tick rate.
type ClockData struct {
	Start   time.Time
	Elapsed time.Duration
	Step    time.Duration
}

// Now returns the scene time as a wall-clock instant.
func (c *ClockData) Now() time.Time {
	return c.Start.Add(c.Elapsed)
}

var Clock = donburi.NewComponentType[ClockData]()
