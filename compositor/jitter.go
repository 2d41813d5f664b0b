package compositor

// Offset is a whole-surface displacement in pixels.
type Offset struct {
	X, Y float64
}

// RollJitter picks the canvas offset for the next frame. While active there is
// a 30% chance of a shake of up to ±5px horizontally and ±2.5px vertically.
func RollJitter(rnd Random, active bool) Offset {
	if !active || rnd.Float64() >= 0.3 {
		return Offset{}
	}
	return Offset{
		X: (rnd.Float64() - 0.5) * 10,
		Y: (rnd.Float64() - 0.5) * 5,
	}
}
