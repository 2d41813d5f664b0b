package narrative

// Key is a keyboard input relevant to the konami detector.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyB
	KeyA
)

// KonamiSequence is ↑↑↓↓←→←→BA.
var KonamiSequence = []Key{KeyUp, KeyUp, KeyDown, KeyDown, KeyLeft, KeyRight, KeyLeft, KeyRight, KeyB, KeyA}

// Konami watches the last len(KonamiSequence) key presses.
type Konami struct {
	recent []Key
}

// Push records a key press and reports whether the sequence just completed.
func (k *Konami) Push(key Key) bool {
	k.recent = append(k.recent, key)
	if n := len(k.recent) - len(KonamiSequence); n > 0 {
		k.recent = append(k.recent[:0], k.recent[n:]...)
	}
	if len(k.recent) != len(KonamiSequence) {
		return false
	}
	for i, want := range KonamiSequence {
		if k.recent[i] != want {
			return false
		}
	}
	return true
}
