package vec3

import "math"

// Interval is a closed [Min,Max] range on the reals.
type Interval struct {
	Min, Max float64
}

// NewInterval builds the interval spanning a and b regardless of order.
func NewInterval(a, b float64) Interval {
	return Interval{Min: math.Min(a, b), Max: math.Max(a, b)}
}

// Empty and Universe are the degenerate intervals used as fold seeds.
var (
	Empty    = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

func (i Interval) Size() float64 { return math.Max(i.Max-i.Min, 0) }

func (i Interval) Contains(x float64) bool { return x >= i.Min && x <= i.Max }

func (i Interval) Clamp(x float64) float64 {
	return math.Max(i.Min, math.Min(i.Max, x))
}

// Expand grows the interval symmetrically by delta (delta/2 on each side).
func (i Interval) Expand(delta float64) Interval {
	pad := delta / 2
	return Interval{Min: i.Min - pad, Max: i.Max + pad}
}

// Intersect returns the overlap of i and o, and false if they don't overlap.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	min := math.Max(i.Min, o.Min)
	max := math.Min(i.Max, o.Max)
	if min > max {
		return Interval{}, false
	}
	return Interval{Min: min, Max: max}, true
}

// Union returns the smallest interval containing both i and o. Unlike
// Intersect, this is always non-empty.
func (i Interval) Union(o Interval) Interval {
	return Interval{Min: math.Min(i.Min, o.Min), Max: math.Max(i.Max, o.Max)}
}
