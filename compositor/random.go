package compositor

import (
	"fmt"
	"math/rand/v2"
)

// Random is a uniform source of values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it, which is how tests seed frames.
type Random interface {
	Float64() float64
}

type ambientSource struct{}

func (ambientSource) Float64() float64 { return rand.Float64() }

// Ambient is the unseeded process-wide source used when none is injected.
var Ambient Random = ambientSource{}

// pick maps a uniform draw onto [0,n).
func pick(u float64, n int) int {
	i := int(u * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// HexCode returns eight upper-case hex digits drawn from rnd.
func HexCode(rnd Random) string {
	u := rnd.Float64()
	if u < 0 {
		u = 0
	}
	v := u * (1 << 32)
	if v >= 1<<32 {
		v = 1<<32 - 1
	}
	return fmt.Sprintf("%08X", uint32(v))
}
