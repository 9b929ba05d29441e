package gamemath

import "math"

// Ease maps a progress fraction x in [0, 1] through a symmetric
// ease-in/ease-out curve: x^a / (x^a + (1-x)^a). An exponent of 1 is
// linear; larger exponents (up to about 3) slow the endpoints and
// speed up the middle. Endpoints are preserved: Ease(0, a) == 0 and
// Ease(1, a) == 1.
func Ease(x, exponent float64) float64 {
	num := math.Pow(x, exponent)
	den := num + math.Pow(1-x, exponent)
	if den == 0 {
		return 0
	}
	return num / den
}
