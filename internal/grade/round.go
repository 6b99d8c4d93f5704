package grade

import "math"

// roundEpsilon counters binary floating-point representation error so that
// values like 1.005 round up as a reader expects.
const roundEpsilon = 1e-9

// Round2 rounds half-up to two decimal places.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5+roundEpsilon) / 100
}
