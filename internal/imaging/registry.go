package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"sort"
	"strconv"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Kind identifies what a registry handle refers to.
type Kind string

const (
	// KindImage is a single 2D raster buffer.
	KindImage Kind = "image"

	// KindSequence is an ordered list of same-sized frames.
	KindSequence Kind = "sequence"
)

var (
	// ErrUnknownHandle is returned when a handle was never issued or has been released.
	ErrUnknownHandle = errors.New("unknown handle")

	// ErrWrongKind is returned when an image handle is used where a sequence
	// is expected, or the other way around.
	ErrWrongKind = errors.New("handle refers to a different kind of buffer")
)

// Sequence is an ordered, 0-indexed list of frames along a third axis.
// All frames share the size of frame 0.
type Sequence []*image.NRGBA

// Len returns the number of frames.
func (s Sequence) Len() int {
	return len(s)
}

// Size returns the width and height of the first frame.
func (s Sequence) Size() (width, height int) {
	if len(s) == 0 {
		return 0, 0
	}
	b := s[0].Bounds()
	return b.Dx(), b.Dy()
}

// entry is a registered buffer. Exactly one of img and seq is set.
type entry struct {
	kind Kind
	img  *image.NRGBA
	seq  Sequence
}

// Registry owns drawable buffers and hands out opaque string handles for them.
//
// Callers never see raw pointers: every access goes through a handle lookup,
// so a stale or forged handle yields ErrUnknownHandle instead of touching
// freed memory.
//
// Registry is safe for concurrent use by multiple goroutines. The lock guards
// the handle table only; pixel writes to a buffer must be serialized by the
// caller.
//
// # Example Usage
//
//	reg := imaging.NewRegistry()
//	h, err := reg.CreateSequence(64, 48, 10, color.Black)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	seq, _ := reg.Sequence(h)
//	// Draw on seq[3]...
//	reg.Release(h)
type Registry struct {
	mu      sync.RWMutex
	next    uint64
	entries map[string]*entry
}

// NewRegistry creates and initializes a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// register stores e under a fresh handle of the form "<kind>/<n>".
func (r *Registry) register(e *entry) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	handle := string(e.kind) + "/" + strconv.FormatUint(r.next, 10)
	r.entries[handle] = e
	return handle
}

// CreateImage allocates a width x height image filled with bg.
func (r *Registry) CreateImage(width, height int, bg color.Color) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return r.register(&entry{kind: KindImage, img: imaging.New(width, height, bg)}), nil
}

// CreateSequence allocates frames images of width x height, each filled with bg.
func (r *Registry) CreateSequence(width, height, frames int, bg color.Color) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if frames <= 0 {
		return "", fmt.Errorf("invalid frame count %d", frames)
	}
	seq := make(Sequence, frames)
	for i := range seq {
		seq[i] = imaging.New(width, height, bg)
	}
	return r.register(&entry{kind: KindSequence, seq: seq}), nil
}

// AddImage registers a copy of img. The copy is rebased so that its bounds
// start at (0,0).
func (r *Registry) AddImage(img image.Image) string {
	return r.register(&entry{kind: KindImage, img: imaging.Clone(img)})
}

// AddSequence registers copies of frames as a sequence. All frames must have
// the same size.
func (r *Registry) AddSequence(frames []image.Image) (string, error) {
	if len(frames) == 0 {
		return "", errors.New("sequence needs at least one frame")
	}
	size := frames[0].Bounds().Size()
	seq := make(Sequence, len(frames))
	for i, f := range frames {
		if got := f.Bounds().Size(); got != size {
			return "", fmt.Errorf("frame %d is %dx%d, want %dx%d", i, got.X, got.Y, size.X, size.Y)
		}
		seq[i] = imaging.Clone(f)
	}
	return r.register(&entry{kind: KindSequence, seq: seq}), nil
}

// LoadImage decodes the image file at path and registers it.
//
// Supported formats are PNG, JPEG, GIF, BMP and TIFF.
func (r *Registry) LoadImage(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}
	return r.AddImage(img), nil
}

// LoadSequence decodes each file in paths, in order, as one frame.
func (r *Registry) LoadSequence(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", errors.New("sequence needs at least one frame")
	}
	frames := make([]image.Image, len(paths))
	for i, p := range paths {
		img, err := imaging.Open(p)
		if err != nil {
			return "", fmt.Errorf("failed to load frame %d: %w", i, err)
		}
		frames[i] = img
	}
	return r.AddSequence(frames)
}

func (r *Registry) lookup(handle string, want Kind) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[handle]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	if want != "" && e.kind != want {
		return nil, fmt.Errorf("%w: %q is a %s, want %s", ErrWrongKind, handle, e.kind, want)
	}
	return e, nil
}

// Image resolves an image handle.
func (r *Registry) Image(handle string) (*image.NRGBA, error) {
	e, err := r.lookup(handle, KindImage)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

// Sequence resolves a sequence handle.
func (r *Registry) Sequence(handle string) (Sequence, error) {
	e, err := r.lookup(handle, KindSequence)
	if err != nil {
		return nil, err
	}
	return e.seq, nil
}

// Frame resolves either kind of handle to a single image. For an image handle
// frame must be 0; for a sequence it selects the frame.
func (r *Registry) Frame(handle string, frame int) (*image.NRGBA, error) {
	e, err := r.lookup(handle, "")
	if err != nil {
		return nil, err
	}
	if e.kind == KindImage {
		if frame != 0 {
			return nil, fmt.Errorf("frame %d requested from image %q", frame, handle)
		}
		return e.img, nil
	}
	if frame < 0 || frame >= len(e.seq) {
		return nil, fmt.Errorf("frame %d outside sequence %q of %d frames", frame, handle, len(e.seq))
	}
	return e.seq[frame], nil
}

// Release drops a handle. The buffer is freed once no caller holds it.
func (r *Registry) Release(handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[handle]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	delete(r.entries, handle)
	return nil
}

// Clear releases every handle.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.entries = make(map[string]*entry)
	r.mu.Unlock()
}

// Handles returns all live handles in sorted order.
func (r *Registry) Handles() []string {
	r.mu.RLock()
	handles := make([]string, 0, len(r.entries))
	for h := range r.entries {
		handles = append(handles, h)
	}
	r.mu.RUnlock()
	sort.Strings(handles)
	return handles
}

// BufferInfo describes a registered buffer.
type BufferInfo struct {
	// Handle is the opaque token used to address the buffer.
	Handle string `json:"handle"`

	// Kind is "image" or "sequence".
	Kind Kind `json:"kind"`

	// Width is the width in pixels (of frame 0 for sequences).
	Width int `json:"width"`

	// Height is the height in pixels (of frame 0 for sequences).
	Height int `json:"height"`

	// Frames is the frame count; 1 for images.
	Frames int `json:"frames"`
}

// Describe returns the kind and dimensions of the buffer behind handle.
func (r *Registry) Describe(handle string) (*BufferInfo, error) {
	e, err := r.lookup(handle, "")
	if err != nil {
		return nil, err
	}
	info := &BufferInfo{Handle: handle, Kind: e.kind}
	switch e.kind {
	case KindImage:
		b := e.img.Bounds()
		info.Width, info.Height, info.Frames = b.Dx(), b.Dy(), 1
	case KindSequence:
		info.Width, info.Height = e.seq.Size()
		info.Frames = e.seq.Len()
	}
	return info, nil
}
