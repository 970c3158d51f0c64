package session

import (
	"image"
	"log"
	"sync"
	"time"

	"github.com/nvr-ai/go-duotone/duotone"
	"github.com/nvr-ai/go-duotone/presets"
	"github.com/pkg/errors"
)

// DefaultPreviewMaxDimension is the longest side of the preview surface.
const DefaultPreviewMaxDimension = 500

// Default gradient endpoints.
var (
	DefaultDark  = duotone.Color{R: 78, G: 5, B: 112}
	DefaultLight = duotone.Color{R: 226, G: 178, B: 3}
)

// ErrNoImage is returned when rendering before an image has been loaded.
var ErrNoImage = errors.New("no image loaded")

// EditorOptions configures an Editor.
type EditorOptions struct {
	// PreviewMaxDimension bounds the preview surface. Zero means
	// DefaultPreviewMaxDimension; negative means full size.
	PreviewMaxDimension int
	// Debounce is the quiet period before a color change re-renders the preview. Zero
	// means DefaultDebounce.
	Debounce time.Duration
	// Dark and Light are the initial endpoints. Both zero means the defaults.
	Dark, Light duotone.Color
	// OnPreview is called with each re-rendered preview. It runs on the debounce
	// goroutine.
	OnPreview func(preview *image.NRGBA, err error)
	// Debug enables timing logs on both surfaces.
	Debug bool
}

// Editor pairs a small preview surface, re-tinted on every color change, with a
// full-resolution surface tinted only on export.
type Editor struct {
	mu          sync.Mutex
	opts        EditorOptions
	preview     *Session
	full        *Session
	dark, light duotone.Color
	debouncer   *Debouncer
}

// NewEditor creates an Editor with no image loaded.
func NewEditor(opts EditorOptions) *Editor {
	if opts.PreviewMaxDimension == 0 {
		opts.PreviewMaxDimension = DefaultPreviewMaxDimension
	}
	if opts.Debounce == 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Dark == (duotone.Color{}) && opts.Light == (duotone.Color{}) {
		opts.Dark, opts.Light = DefaultDark, DefaultLight
	}

	return &Editor{
		opts:      opts,
		dark:      opts.Dark,
		light:     opts.Light,
		debouncer: NewDebouncer(opts.Debounce),
	}
}

// Load replaces the current image. Both surfaces are rebuilt from img and the preview is
// rendered immediately with the current colors.
func (e *Editor) Load(img image.Image) (*image.NRGBA, error) {
	preview, err := New("preview", img, e.opts.PreviewMaxDimension)
	if err != nil {
		return nil, err
	}
	full, err := New("full", img, 0)
	if err != nil {
		return nil, err
	}
	preview.SetDebugMode(e.opts.Debug)
	full.SetDebugMode(e.opts.Debug)

	e.debouncer.Stop()

	e.mu.Lock()
	e.preview, e.full = preview, full
	e.mu.Unlock()

	if e.opts.Debug {
		log.Printf("🖼️  loaded image: preview %s, full %s", preview.Dimensions(), full.Dimensions())
	}
	return e.RenderPreview()
}

// Colors returns the current endpoints.
func (e *Editor) Colors() (dark, light duotone.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dark, e.light
}

// SetDark changes the dark endpoint and schedules a preview re-render.
func (e *Editor) SetDark(c duotone.Color) {
	e.mu.Lock()
	e.dark = c
	e.mu.Unlock()
	e.schedule()
}

// SetLight changes the light endpoint and schedules a preview re-render.
func (e *Editor) SetLight(c duotone.Color) {
	e.mu.Lock()
	e.light = c
	e.mu.Unlock()
	e.schedule()
}

// SetColors changes both endpoints and schedules a preview re-render.
func (e *Editor) SetColors(dark, light duotone.Color) {
	e.mu.Lock()
	e.dark, e.light = dark, light
	e.mu.Unlock()
	e.schedule()
}

// ApplyPreset selects a preset's endpoints.
func (e *Editor) ApplyPreset(p presets.Preset) {
	e.SetColors(p.Dark, p.Light)
}

func (e *Editor) schedule() {
	e.debouncer.Trigger(func() {
		preview, err := e.RenderPreview()
		if e.opts.OnPreview != nil {
			e.opts.OnPreview(preview, err)
		}
	})
}

// Flush renders a pending preview immediately. It reports whether one was pending.
func (e *Editor) Flush() bool {
	return e.debouncer.Flush()
}

// RenderPreview tints the preview surface with the current colors.
func (e *Editor) RenderPreview() (*image.NRGBA, error) {
	e.mu.Lock()
	preview, dark, light := e.preview, e.dark, e.light
	e.mu.Unlock()

	if preview == nil {
		return nil, ErrNoImage
	}
	return preview.Apply(dark, light)
}

// Preview returns the most recently rendered preview, or nil.
func (e *Editor) Preview() *image.NRGBA {
	e.mu.Lock()
	preview := e.preview
	e.mu.Unlock()

	if preview == nil {
		return nil
	}
	return preview.Current()
}

// Export tints the full-resolution surface with the current colors.
func (e *Editor) Export() (*image.NRGBA, error) {
	e.mu.Lock()
	full, dark, light := e.full, e.dark, e.light
	e.mu.Unlock()

	if full == nil {
		return nil, ErrNoImage
	}
	return full.Apply(dark, light)
}

// Close drops any pending preview render.
func (e *Editor) Close() {
	e.debouncer.Stop()
}
