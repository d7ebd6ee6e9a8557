package aegis

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestBuildTimeGrid(t *testing.T) {
	grid, err := BuildTimeGrid(2461000.5, 730.5, 365)
	if err != nil {
		t.Fatalf("grid build failed: %s", err)
	}
	if len(grid) != 365 {
		t.Fatalf("expected 365 points, got %d", len(grid))
	}
	if grid[0] != 2461000.5 {
		t.Fatalf("first point must equal start exactly: %v", grid[0])
	}
	if grid[len(grid)-1] != 2461000.5+730.5 {
		t.Fatalf("last point must equal start+span exactly: %v", grid[len(grid)-1])
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Fatalf("grid not strictly increasing at %d: %v <= %v", i, grid[i], grid[i-1])
		}
	}
	if !scalar.EqualWithinAbs(grid.Span(), 730.5, 1e-9) {
		t.Fatalf("wrong span: %v", grid.Span())
	}
}

func TestBuildTimeGridStep(t *testing.T) {
	grid, err := BuildTimeGrid(0, 10, 11)
	if err != nil {
		t.Fatalf("grid build failed: %s", err)
	}
	for i, jd := range grid {
		if !scalar.EqualWithinAbs(jd, float64(i), 1e-12) {
			t.Fatalf("point %d: expected %d, got %v", i, i, jd)
		}
	}
}

func TestBuildTimeGridPointCountBounds(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 10001} {
		if _, err := BuildTimeGrid(0, 10, n); KindOf(err) != KindInvalidPointCount {
			t.Errorf("numPoints=%d: expected invalid point count, got %v", n, err)
		}
	}
	if _, err := BuildTimeGrid(0, 10, 2); err != nil {
		t.Errorf("numPoints=2 must succeed: %s", err)
	}
	if _, err := BuildTimeGrid(0, 10, 10000); err != nil {
		t.Errorf("numPoints=10000 must succeed: %s", err)
	}
}

func TestBuildTimeGridInvalidRange(t *testing.T) {
	for _, span := range []float64{0, -1} {
		if _, err := BuildTimeGrid(100, span, 10); KindOf(err) != KindInvalidTimeRange {
			t.Errorf("span=%v: expected invalid time range, got %v", span, err)
		}
	}
}
