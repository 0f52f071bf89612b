// Package motion turns camera frames into per-tick motion events by comparing
// consecutive low-resolution luminance frames.
package motion

import (
	"image"
	"math"

	"bamboo-weaver/internal/core"

	"github.com/anthonynsimon/bild/transform"
)

// Config controls the sampling grid and sensitivity of the detector.
type Config struct {
	Width     int
	Height    int
	Stride    int
	Threshold float64
}

// DefaultConfig returns the standard 64x48 sampling grid.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 48, Stride: 2, Threshold: 15}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Stride <= 0 {
		c.Stride = 1
	}
	if c.Threshold < 0 {
		c.Threshold = 0
	}
	return c
}

// Source supplies the most recent camera frame. Latest must not block on I/O
// and reports false when no frame is ready yet.
type Source interface {
	Latest() (image.Image, bool)
}

// Detector diffs each frame against the previous one.
type Detector struct {
	cfg Config
	src Source

	prev    *core.LumaFrame
	curr    *core.LumaFrame
	hasPrev bool
}

// NewDetector returns a detector reading from src. A nil src is allowed and
// yields no events.
func NewDetector(cfg Config, src Source) *Detector {
	cfg = cfg.normalized()
	return &Detector{
		cfg:  cfg,
		src:  src,
		prev: core.NewLumaFrame(cfg.Width, cfg.Height),
		curr: core.NewLumaFrame(cfg.Width, cfg.Height),
	}
}

// Config returns the normalized detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// SetSource swaps the frame source and forgets the previous frame.
func (d *Detector) SetSource(src Source) {
	d.src = src
	d.Reset()
}

// Reset drops the stored frame so the next call only primes the detector.
func (d *Detector) Reset() { d.hasPrev = false }

// Detect reads the latest frame from the source and returns the events for
// the given viewport. It never blocks and returns nil when no frame is ready.
func (d *Detector) Detect(view core.Size) []core.MotionEvent {
	if d.src == nil {
		return nil
	}
	img, ok := d.src.Latest()
	if !ok || img == nil {
		return nil
	}
	return d.Process(img, view)
}

// Process downsamples img to the sampling grid, compares it with the stored
// frame and keeps it for the next call. The first frame only primes the
// detector.
func (d *Detector) Process(img image.Image, view core.Size) []core.MotionEvent {
	rgba := d.downsample(img)
	if rgba == nil {
		return nil
	}
	d.curr.Fill(rgba.Pix, rgba.Stride)

	var events []core.MotionEvent
	if d.hasPrev {
		events = d.diff(view)
	}
	d.prev, d.curr = d.curr, d.prev
	d.hasPrev = true
	return events
}

func (d *Detector) downsample(img image.Image) *image.RGBA {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	if rgba, ok := img.(*image.RGBA); ok && b == image.Rect(0, 0, d.cfg.Width, d.cfg.Height) {
		return rgba
	}
	return transform.Resize(img, d.cfg.Width, d.cfg.Height, transform.Linear)
}

func (d *Detector) diff(view core.Size) []core.MotionEvent {
	w, h := d.cfg.Width, d.cfg.Height
	scaleX := float64(view.W) / float64(w)
	scaleY := float64(view.H) / float64(h)
	curr, prev := d.curr.Values(), d.prev.Values()

	var events []core.MotionEvent
	for y := 0; y < h; y += d.cfg.Stride {
		for x := 0; x < w; x += d.cfg.Stride {
			i := y*w + x
			delta := math.Abs(curr[i] - prev[i])
			if delta <= d.cfg.Threshold {
				continue
			}
			events = append(events, core.MotionEvent{
				X:        float64(w-x-1) * scaleX,
				Y:        float64(y) * scaleY,
				Strength: math.Min(delta/255, 1),
			})
		}
	}
	return events
}
