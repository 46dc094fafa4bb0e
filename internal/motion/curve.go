package motion

// Curve maps linear time t in [0,1] to eased progress in [0,1].
type Curve func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 { return clamp01(t) }

// EaseOut decelerates toward the end (cubic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates then decelerates (cubic).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
