package geometry

import "math"

// Zoom bounds and step used by the zoom controls.
const (
	MinZoom     = 0.5
	MaxZoom     = 10.0
	ZoomStep    = 1.5
	DefaultZoom = 1.0
)

// ClampZoom forces z into [MinZoom, MaxZoom]. Out-of-range and non-finite
// values are clamped rather than rejected; NaN maps to DefaultZoom.
func ClampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return DefaultZoom
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

// ZoomIn narrows the window by one step.
func ZoomIn(z float64) float64 {
	return ClampZoom(z * ZoomStep)
}

// ZoomOut widens the window by one step.
func ZoomOut(z float64) float64 {
	return ClampZoom(z / ZoomStep)
}

// ZoomPercent is the zoom factor as a rounded percentage for display.
func ZoomPercent(z float64) int {
	return int(math.Round(z * 100))
}
