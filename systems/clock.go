package systems

import (
	"time"

	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one tick.
// Must run before the narrative systems.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.Elapsed += clock.Step
}

// GetOrCreateClock returns the singleton scene clock
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{
			Start: time.Now(),
			Step:  tickDuration(),
		})
	}

	ent, _ := components.Clock.First(e.World)
	return components.Clock.Get(ent)
}

// tickDuration is the length of one update at the configured TPS
func tickDuration() time.Duration {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
