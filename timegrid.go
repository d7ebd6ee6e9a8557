package aegis

// Grid point count bounds. The upper bound keeps a single request from
// allocating unbounded trajectories.
const (
	MinGridPoints = 2
	MaxGridPoints = 10000
)

// TimeGrid is a strictly increasing, evenly spaced sequence of Julian
// dates. Both trajectories of a synchronized request sample the same grid.
type TimeGrid []float64

// BuildTimeGrid returns numPoints Julian dates linearly spaced from
// startJD to startJD+spanDays. The first point equals startJD and the
// last equals startJD+spanDays by construction, not by re-derivation.
func BuildTimeGrid(startJD, spanDays float64, numPoints int) (TimeGrid, error) {
	if numPoints < MinGridPoints || numPoints > MaxGridPoints {
		return nil, errf(KindInvalidPointCount, "point count %d outside [%d, %d]", numPoints, MinGridPoints, MaxGridPoints)
	}
	if !finite(startJD, spanDays) {
		return nil, errf(KindInvalidTimeRange, "non-finite time range: start=%v span=%v days", startJD, spanDays)
	}
	if spanDays <= 0 {
		return nil, errf(KindInvalidTimeRange, "end must be after start: span=%v days", spanDays)
	}

	step := spanDays / float64(numPoints-1)
	grid := make(TimeGrid, numPoints)
	for i := range grid {
		grid[i] = startJD + float64(i)*step
	}
	grid[numPoints-1] = startJD + spanDays
	return grid, nil
}

// Span returns the covered duration in days.
func (g TimeGrid) Span() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[len(g)-1] - g[0]
}
