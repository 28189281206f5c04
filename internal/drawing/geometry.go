package drawing

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is an integer lattice point in sequence space: (x, y) within a
// frame, Z the frame index.
type Point struct {
	X, Y, Z int
}

// Bound is the extent of a sequence volume: [0,W) x [0,H) x [0,D).
type Bound struct {
	W, H, D int
}

// Contains reports whether p lies inside b.
func (b Bound) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.W &&
		p.Y >= 0 && p.Y < b.H &&
		p.Z >= 0 && p.Z < b.D
}

// LineSegPoints enumerates the lattice points approximating the 3D segment
// from start to end, in order from start, keeping only points inside bound.
//
// The segment is sampled once per unit step along its longest axis, so
// consecutive points differ by exactly one along that axis and no point
// repeats. Both endpoints are produced when they lie inside bound. Only the
// steps whose points can land inside bound are visited, so the cost depends
// on the size of bound and not on how far the endpoints lie outside it.
func LineSegPoints(start, end Point, bound Bound) []Point {
	a := r3.Vec{X: float64(start.X), Y: float64(start.Y), Z: float64(start.Z)}
	b := r3.Vec{X: float64(end.X), Y: float64(end.Y), Z: float64(end.Z)}
	d := r3.Sub(b, a)

	steps := math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z)))
	if steps == 0 {
		if bound.Contains(start) {
			return []Point{start}
		}
		return nil
	}

	// A coordinate rounds into [0, n) when it lies in [-0.5, n-0.5].
	t0, t1, ok := 0.0, 1.0, true
	for _, axis := range [...]struct{ a, d, n float64 }{
		{a.X, d.X, float64(bound.W)},
		{a.Y, d.Y, float64(bound.H)},
		{a.Z, d.Z, float64(bound.D)},
	} {
		if t0, t1, ok = clipAxis(axis.a, axis.d, -0.5, axis.n-0.5, t0, t1); !ok {
			return nil
		}
	}

	// Widen by one step each way; Contains has the final say.
	first := math.Max(0, math.Floor(t0*steps)-1)
	last := math.Min(steps, math.Ceil(t1*steps)+1)

	var points []Point
	for k, n := 0, int(last-first); k <= n; k++ {
		v := r3.Add(a, r3.Scale((first+float64(k))/steps, d))
		p := Point{
			X: int(math.Round(v.X)),
			Y: int(math.Round(v.Y)),
			Z: int(math.Round(v.Z)),
		}
		if !bound.Contains(p) {
			continue
		}
		if len(points) > 0 && points[len(points)-1] == p {
			continue
		}
		points = append(points, p)
	}
	return points
}

// clipAxis narrows the parameter window [t0, t1] to the values of t for
// which a+t*d lies in [lo, hi], reporting false once the window is empty.
func clipAxis(a, d, lo, hi, t0, t1 float64) (float64, float64, bool) {
	if d == 0 {
		return t0, t1, a >= lo && a <= hi
	}
	enter, exit := (lo-a)/d, (hi-a)/d
	if enter > exit {
		enter, exit = exit, enter
	}
	t0 = math.Max(t0, enter)
	t1 = math.Min(t1, exit)
	return t0, t1, t0 <= t1
}

// FrameRange returns the inclusive range of frames covered by a box centered
// on frame center with half-depth radius, in a sequence of frames frames.
//
// Each end is clamped into [0, frames-1] independently, so a request that
// lies entirely before or after the sequence collapses onto its first or
// last frame instead of being dropped. frames must be positive.
func FrameRange(center, radius, frames int) (first, last int) {
	if radius < 0 {
		radius = -radius
	}
	last = frames - 1
	return clamp(center-radius, 0, last), clamp(center+radius, 0, last)
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
