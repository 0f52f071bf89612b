package app

import (
	"context"
	"errors"
	"image"
	"log"
	"time"

	"bamboo-weaver/internal/core"
	"bamboo-weaver/internal/motion"
	"bamboo-weaver/internal/oracle"
	"bamboo-weaver/internal/render"
	"bamboo-weaver/internal/weave"
)

// CaptureState tells whether camera motion reaches the simulation.
type CaptureState uint8

const (
	CaptureActive CaptureState = iota
	CapturePaused
)

func (s CaptureState) String() string {
	if s == CapturePaused {
		return "paused"
	}
	return "active"
}

// Camera is a frame source that must be released. Done is closed when the
// stream ends and Err reports why.
type Camera interface {
	motion.Source
	Done() <-chan struct{}
	Err() error
	Close() error
}

// CameraOpener starts a camera. A nil opener runs without capture.
type CameraOpener func(ctx context.Context) (Camera, error)

// Options wires the collaborators of a Context. Nil fields get defaults.
type Options struct {
	World      *weave.World
	Detector   *motion.Detector
	Renderer   *render.Renderer
	Session    *oracle.Session
	OpenCamera CameraOpener
	Logger     *log.Logger
	// ShowEvents paints the last tick's motion events over the weave.
	ShowEvents bool
}

// Context owns the simulation, its motion input and the offscreen frame, and
// runs the detect, inject, integrate and paint pipeline.
type Context struct {
	world    *weave.World
	detector *motion.Detector
	renderer *render.Renderer
	frame    *render.Frame
	session  *oracle.Session
	logger   *log.Logger

	openCamera CameraOpener
	camera     Camera
	started    bool
	stopCtx    context.CancelFunc

	userPaused bool
	showEvents bool
	lastEvents []core.MotionEvent

	pending <-chan oracle.Result
	insight *oracle.Interpretation
	notice  error
	ticks   uint64
}

// NewContext assembles a Context. Call Start before the first tick.
func NewContext(opts Options) *Context {
	if opts.World == nil {
		opts.World = weave.NewWithConfig(weave.DefaultConfig())
	}
	if opts.Detector == nil {
		opts.Detector = motion.NewDetector(motion.DefaultConfig(), nil)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.NewRenderer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Context{
		world:      opts.World,
		detector:   opts.Detector,
		renderer:   opts.Renderer,
		frame:      render.NewFrame(opts.World.Size()),
		session:    opts.Session,
		logger:     opts.Logger,
		openCamera: opts.OpenCamera,
		showEvents: opts.ShowEvents,
	}
}

// World exposes the simulation.
func (c *Context) World() *weave.World { return c.world }

// Frame exposes the offscreen frame painted by Paint.
func (c *Context) Frame() *render.Frame { return c.frame }

// Ticks returns how many ticks have been advanced.
func (c *Context) Ticks() uint64 { return c.ticks }

// Start opens the camera. A camera failure is logged and the context keeps
// running without motion input.
func (c *Context) Start(ctx context.Context) error {
	if c.started {
		return nil
	}
	c.started = true
	if c.openCamera == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	cam, err := c.openCamera(ctx)
	if err != nil {
		cancel()
		if errors.Is(err, motion.ErrNoFFmpeg) {
			c.logger.Printf("camera unavailable: install ffmpeg to enable motion capture")
		} else {
			c.logger.Printf("camera unavailable: %v", err)
		}
		return nil
	}
	c.camera = cam
	c.stopCtx = cancel
	c.detector.SetSource(cam)
	return nil
}

// HasCamera reports whether a camera is open and still streaming.
func (c *Context) HasCamera() bool {
	c.checkCamera()
	return c.camera != nil
}

// checkCamera releases a camera whose stream has ended so the context runs on
// without motion input.
func (c *Context) checkCamera() {
	if c.camera == nil {
		return
	}
	select {
	case <-c.camera.Done():
	default:
		return
	}
	if err := c.camera.Err(); err != nil {
		c.logger.Printf("camera stream ended: %v", err)
	} else {
		c.logger.Printf("camera stream ended")
	}
	c.detector.SetSource(nil)
	if err := c.camera.Close(); err != nil {
		c.logger.Printf("closing camera: %v", err)
	}
	c.camera = nil
	if c.stopCtx != nil {
		c.stopCtx()
		c.stopCtx = nil
	}
}

// Stop releases the camera. It is safe to call more than once.
func (c *Context) Stop() error {
	if !c.started {
		return nil
	}
	c.started = false
	c.detector.SetSource(nil)
	var err error
	if c.camera != nil {
		err = c.camera.Close()
		c.camera = nil
	}
	if c.stopCtx != nil {
		c.stopCtx()
		c.stopCtx = nil
	}
	return err
}

// Capture reports whether motion currently reaches the simulation. Capture
// pauses while an interpretation is pending or displayed.
func (c *Context) Capture() CaptureState {
	if c.userPaused || c.pending != nil || c.insight != nil {
		return CapturePaused
	}
	return CaptureActive
}

// SetCapture pauses or resumes motion input by user request.
func (c *Context) SetCapture(state CaptureState) {
	c.userPaused = state == CapturePaused
	if !c.userPaused {
		c.detector.Reset()
	}
}

// ShowEvents toggles the motion event overlay.
func (c *Context) ShowEvents(on bool) { c.showEvents = on }

// LastEvents returns the events injected on the most recent tick.
func (c *Context) LastEvents() []core.MotionEvent { return c.lastEvents }

// Resize rebuilds the grid and frame for a new viewport.
func (c *Context) Resize(size core.Size) {
	if size.Empty() || size == c.world.Size() {
		return
	}
	c.world.Resize(size)
	c.frame = render.NewFrame(size)
	g := c.world.Grid()
	c.logger.Printf("viewport resized to %dx%d, rebuilt %d strips with %d nodes", size.W, size.H, len(g.Strips()), g.NodeCount())
}

// Advance runs one simulation tick: detect, inject, integrate.
func (c *Context) Advance() {
	c.poll()
	c.checkCamera()
	var events []core.MotionEvent
	if c.Capture() == CaptureActive {
		events = c.detector.Detect(c.world.Size())
	}
	c.world.Inject(events)
	c.world.Step()
	c.lastEvents = events
	c.ticks++
}

// Paint renders the current grid into the offscreen frame.
func (c *Context) Paint() {
	if c.frame == nil {
		return
	}
	s := c.frame.Surface()
	c.renderer.Draw(s, c.world.Grid())
	if c.showEvents {
		c.renderer.DrawEvents(s, c.lastEvents)
	}
}

// Tick advances and paints.
func (c *Context) Tick() {
	c.Advance()
	c.Paint()
}

// Run ticks at the given rate until ctx is cancelled.
func (c *Context) Run(ctx context.Context, tps int) error {
	if err := c.Start(ctx); err != nil {
		return err
	}
	defer c.Stop()

	step := core.NewFixedStep(tps)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		for step.ShouldStep() {
			c.Tick()
		}
		timer.Reset(step.Remaining())
	}
}

// Snapshot returns a copy of the last painted frame.
func (c *Context) Snapshot() image.Image {
	if c.frame == nil {
		return nil
	}
	return c.frame.Clone()
}

// Interpret paints a fresh frame and sends it for interpretation. Motion
// capture stays paused until the result arrives and its insight is closed.
func (c *Context) Interpret(ctx context.Context) error {
	if c.session == nil {
		return oracle.ErrMissingAPIKey
	}
	c.Paint()
	ch, err := c.session.Start(ctx, c.Snapshot())
	if err != nil {
		return err
	}
	c.pending = ch
	c.notice = nil
	c.logger.Printf("interpretation requested")
	return nil
}

// Loading reports whether an interpretation is in flight.
func (c *Context) Loading() bool { return c.pending != nil }

func (c *Context) poll() {
	if c.pending == nil {
		return
	}
	select {
	case res := <-c.pending:
		c.pending = nil
		if res.Err != nil {
			c.notice = res.Err
			c.detector.Reset()
			return
		}
		interp := res.Interpretation
		c.insight = &interp
	default:
	}
}

// Insight returns the interpretation on display, if any.
func (c *Context) Insight() (oracle.Interpretation, bool) {
	if c.insight == nil {
		return oracle.Interpretation{}, false
	}
	return *c.insight, true
}

// CloseInsight dismisses the interpretation and resumes capture.
func (c *Context) CloseInsight() {
	if c.insight == nil {
		return
	}
	c.insight = nil
	c.detector.Reset()
}

// Notice returns the last interpretation error awaiting dismissal.
func (c *Context) Notice() error { return c.notice }

// DismissNotice clears the error notification.
func (c *Context) DismissNotice() { c.notice = nil }
