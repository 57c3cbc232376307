package numbers

import (
	"cmp"
	"math"
)

// BetweenEq - Looks something like this. start <= number <= end
func BetweenEq[T cmp.Ordered](start, end, number T) bool {
	return number >= start && number <= end
}

// Percentage returns part / total as a whole percentage, rounded half away from zero.
// A zero total returns 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(total) * 100))
}
