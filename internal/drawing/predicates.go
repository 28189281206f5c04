package drawing

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/image-draw-mcp/internal/imaging"
)

var (
	// ErrArity is returned when a coordinate vector has the wrong number of
	// components.
	ErrArity = errors.New("wrong number of coordinates")

	// ErrFrameRange is returned when a point names a frame outside the
	// sequence.
	ErrFrameRange = errors.New("frame index out of range")
)

// Painter issues drawing calls against buffers held in a registry.
//
// Every entry point follows the same flow: check argument shapes, resolve
// the handle, decode the color, draw. Nothing is drawn if any step before
// the draw fails. Pixel coordinates outside a frame are clipped, not
// reported.
type Painter struct {
	reg *imaging.Registry
}

// NewPainter returns a Painter drawing into buffers owned by reg.
func NewPainter(reg *imaging.Registry) *Painter {
	return &Painter{reg: reg}
}

// DrawLineSeg draws the 3D segment from start to end through a sequence,
// one pixel per lattice point, each on the frame given by the point's Z.
// The segment is clipped to the sequence volume.
func (p *Painter) DrawLineSeg(handle string, start, end []int, color string) error {
	s, err := vec3("start", start)
	if err != nil {
		return err
	}
	e, err := vec3("end", end)
	if err != nil {
		return err
	}
	seq, err := p.reg.Sequence(handle)
	if err != nil {
		return err
	}
	c := ParseColor(color).NRGBA()

	w, h := seq.Size()
	for _, pt := range LineSegPoints(s, e, Bound{W: w, H: h, D: seq.Len()}) {
		Dot(seq[pt.Z], image.Pt(pt.X, pt.Y), c)
	}
	return nil
}

// DrawLineSeg2D draws the segment from start to end on a single image.
func (p *Painter) DrawLineSeg2D(handle string, start, end []int, color string) error {
	s, err := vec2("start", start)
	if err != nil {
		return err
	}
	e, err := vec2("end", end)
	if err != nil {
		return err
	}
	img, err := p.reg.Image(handle)
	if err != nil {
		return err
	}

	Line(img, s, e, ParseColor(color).NRGBA())
	return nil
}

// DrawRect draws the same rectangle outline on every frame in
// [center.z-radius.z, center.z+radius.z], with both ends clamped to the
// sequence. A range entirely outside the sequence draws on the nearest
// boundary frame.
func (p *Painter) DrawRect(handle string, center, radius []int, color string) error {
	ctr, err := vec3("center", center)
	if err != nil {
		return err
	}
	rad, err := vec3("radius", radius)
	if err != nil {
		return err
	}
	seq, err := p.reg.Sequence(handle)
	if err != nil {
		return err
	}
	c := ParseColor(color).NRGBA()

	first, last := FrameRange(ctr.Z, rad.Z, seq.Len())
	for i := first; i <= last; i++ {
		Rect(seq[i], image.Pt(ctr.X, ctr.Y), image.Pt(rad.X, rad.Y), c)
	}
	return nil
}

// DrawRect2D draws one rectangle outline on a single image.
func (p *Painter) DrawRect2D(handle string, center, radius []int, color string) error {
	ctr, err := vec2("center", center)
	if err != nil {
		return err
	}
	rad, err := vec2("radius", radius)
	if err != nil {
		return err
	}
	img, err := p.reg.Image(handle)
	if err != nil {
		return err
	}

	Rect(img, ctr, rad, ParseColor(color).NRGBA())
	return nil
}

// DrawPoints sets one pixel per [x, y, frame] point, in list order, so a
// later point overwrites an earlier one at the same pixel. An empty list
// draws nothing. Every frame index is checked before any pixel is written.
func (p *Painter) DrawPoints(handle string, points [][]int, color string) error {
	seq, err := p.reg.Sequence(handle)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	pts := make([]Point, len(points))
	for i, raw := range points {
		pt, err := vec3(fmt.Sprintf("points[%d]", i), raw)
		if err != nil {
			return err
		}
		if pt.Z < 0 || pt.Z >= seq.Len() {
			return fmt.Errorf("%w: points[%d] frame %d, sequence has %d frames", ErrFrameRange, i, pt.Z, seq.Len())
		}
		pts[i] = pt
	}

	c := ParseColor(color).NRGBA()
	for _, pt := range pts {
		Dot(seq[pt.Z], image.Pt(pt.X, pt.Y), c)
	}
	return nil
}

// DrawPoints2D sets one pixel per point on a single image, in list order.
// Points may carry a third component, which is ignored. An empty list draws
// nothing.
func (p *Painter) DrawPoints2D(handle string, points [][]int, color string) error {
	img, err := p.reg.Image(handle)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	pts := make([]image.Point, len(points))
	for i, raw := range points {
		if len(raw) != 2 && len(raw) != 3 {
			return fmt.Errorf("%w: points[%d] has %d, want 2 or 3", ErrArity, i, len(raw))
		}
		pts[i] = image.Pt(raw[0], raw[1])
	}

	c := ParseColor(color).NRGBA()
	for _, pt := range pts {
		Dot(img, pt, c)
	}
	return nil
}

func vec3(name string, v []int) (Point, error) {
	if len(v) != 3 {
		return Point{}, fmt.Errorf("%w: %s has %d, want 3", ErrArity, name, len(v))
	}
	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

func vec2(name string, v []int) (image.Point, error) {
	if len(v) != 2 {
		return image.Point{}, fmt.Errorf("%w: %s has %d, want 2", ErrArity, name, len(v))
	}
	return image.Pt(v[0], v[1]), nil
}
