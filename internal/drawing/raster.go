package drawing

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Dot sets the single pixel at p. Points outside img are ignored.
func Dot(img *image.NRGBA, p image.Point, c color.NRGBA) {
	img.SetNRGBA(p.X, p.Y, c)
}

// Line draws a 1-pixel line from p0 to p1 using Bresenham's algorithm.
// Both endpoints are drawn; pixels outside img are clipped. The segment is
// cut to img's bounds before it is walked, so far-off endpoints cost no more
// than the visible part.
func Line(img *image.NRGBA, p0, p1 image.Point, c color.NRGBA) {
	p0, p1, ok := clipLine(p0, p1, img.Bounds())
	if !ok {
		return
	}

	x, y := p0.X, p0.Y
	dx := abs(p1.X - x)
	dy := abs(p1.Y - y)

	sx := 1
	if x > p1.X {
		sx = -1
	}
	sy := 1
	if y > p1.Y {
		sy = -1
	}

	err := dx - dy
	for {
		img.SetNRGBA(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws the 1-pixel outline of the rectangle spanning center-radius to
// center+radius, corners included. A negative radius component is treated
// as its absolute value. The outline is clipped to img.
func Rect(img *image.NRGBA, center, radius image.Point, c color.NRGBA) {
	r := image.Rectangle{Min: center.Sub(radius), Max: center.Add(radius)}.Canon()
	src := &image.Uniform{C: c}

	// Max is inclusive here; each edge is a 1-pixel-thick rectangle.
	edges := [...]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Min.Y+1), // top
		image.Rect(r.Min.X, r.Max.Y, r.Max.X+1, r.Max.Y+1), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y+1), // left
		image.Rect(r.Max.X, r.Min.Y, r.Max.X+1, r.Max.Y+1), // right
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

// clipLine cuts the segment p0-p1 to the part whose pixels fall inside r.
// Endpoints already inside r are returned unchanged.
func clipLine(p0, p1 image.Point, r image.Rectangle) (image.Point, image.Point, bool) {
	if r.Empty() {
		return p0, p1, false
	}
	if p0.In(r) && p1.In(r) {
		return p0, p1, true
	}

	ax, ay := float64(p0.X), float64(p0.Y)
	dx, dy := float64(p1.X)-ax, float64(p1.Y)-ay
	minX, maxX := float64(r.Min.X), float64(r.Max.X-1)
	minY, maxY := float64(r.Min.Y), float64(r.Max.Y-1)

	t0, t1, ok := clipAxis(ax, dx, minX-0.5, maxX+0.5, 0, 1)
	if !ok {
		return p0, p1, false
	}
	if t0, t1, ok = clipAxis(ay, dy, minY-0.5, maxY+0.5, t0, t1); !ok {
		return p0, p1, false
	}

	at := func(t float64) image.Point {
		x := math.Min(math.Max(math.Round(ax+t*dx), minX), maxX)
		y := math.Min(math.Max(math.Round(ay+t*dy), minY), maxY)
		return image.Pt(int(x), int(y))
	}
	q0, q1 := p0, p1
	if !p0.In(r) {
		q0 = at(t0)
	}
	if !p1.In(r) {
		q1 = at(t1)
	}
	return q0, q1, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
