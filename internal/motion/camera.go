package motion

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// ErrNoFFmpeg is returned by OpenCamera when the ffmpeg binary is not on PATH.
var ErrNoFFmpeg = errors.New("motion: ffmpeg not found")

// CameraConfig selects the capture device and the raw frame geometry.
type CameraConfig struct {
	// Device is the platform device name. Empty picks the platform default.
	Device string
	// Format overrides the ffmpeg input format (v4l2, avfoundation, dshow).
	Format string
	Width  int
	Height int
	FPS    int
	Logger *log.Logger
}

// DefaultCameraConfig returns a 160x120 capture at 30 fps.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{Width: 160, Height: 120, FPS: 30}
}

var lookPath = exec.LookPath

// Camera streams raw RGBA frames from an ffmpeg subprocess and keeps only the
// most recent one.
type Camera struct {
	w, h   int
	logger *log.Logger

	mu     sync.Mutex
	latest *image.RGBA
	ready  bool
	closed bool
	cmd    *exec.Cmd
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func newCamera(w, h int, logger *log.Logger) *Camera {
	if logger == nil {
		logger = log.Default()
	}
	return &Camera{
		w:      w,
		h:      h,
		logger: logger,
		latest: image.NewRGBA(image.Rect(0, 0, w, h)),
		done:   make(chan struct{}),
	}
}

// OpenCamera starts ffmpeg capturing from the configured device. The process
// lives until Close is called or ctx is cancelled.
func OpenCamera(ctx context.Context, cfg CameraConfig) (*Camera, error) {
	cfg = cfg.normalized()
	ffmpeg, err := lookPath("ffmpeg")
	if err != nil {
		return nil, ErrNoFFmpeg
	}

	c := newCamera(cfg.Width, cfg.Height, cfg.Logger)
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, ffmpeg, captureArgs(runtime.GOOS, cfg)...)
	cmd.Stdin = nil
	cmd.Stderr = stderrLogger{logger: c.logger}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting ffmpeg capture: %w", err)
	}

	c.cmd = cmd
	c.cancel = cancel
	go c.readFrames(stdout)
	c.logger.Printf("capturing %dx%d from %s via %s", cfg.Width, cfg.Height, deviceName(runtime.GOOS, cfg), inputFormat(runtime.GOOS, cfg))
	return c, nil
}

func (c CameraConfig) normalized() CameraConfig {
	def := DefaultCameraConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	return c
}

func inputFormat(goos string, cfg CameraConfig) string {
	if cfg.Format != "" {
		return cfg.Format
	}
	switch goos {
	case "darwin":
		return "avfoundation"
	case "windows":
		return "dshow"
	default:
		return "v4l2"
	}
}

func deviceName(goos string, cfg CameraConfig) string {
	if cfg.Device != "" {
		if goos == "windows" {
			return "video=" + cfg.Device
		}
		return cfg.Device
	}
	switch goos {
	case "darwin":
		return "0"
	case "windows":
		return "video=Integrated Camera"
	default:
		return "/dev/video0"
	}
}

// captureArgs builds the ffmpeg command line for the given platform.
func captureArgs(goos string, cfg CameraConfig) []string {
	return []string{
		"-loglevel", "error",
		"-f", inputFormat(goos, cfg),
		"-framerate", strconv.Itoa(cfg.FPS),
		"-i", deviceName(goos, cfg),
		"-vf", fmt.Sprintf("scale=%d:%d", cfg.Width, cfg.Height),
		"-pix_fmt", "rgba",
		"-f", "rawvideo",
		"-an",
		"pipe:1",
	}
}

// readFrames copies complete frames from r into the latest buffer until the
// stream ends.
func (c *Camera) readFrames(r io.Reader) {
	defer close(c.done)
	buf := make([]byte, c.w*c.h*4)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			c.mu.Lock()
			if !c.closed && !errors.Is(err, io.EOF) {
				c.err = err
			}
			c.mu.Unlock()
			return
		}
		c.mu.Lock()
		copy(c.latest.Pix, buf)
		c.ready = true
		c.mu.Unlock()
	}
}

// Latest returns a copy of the most recent frame.
func (c *Camera) Latest() (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || c.closed {
		return nil, false
	}
	out := image.NewRGBA(c.latest.Rect)
	copy(out.Pix, c.latest.Pix)
	return out, true
}

// Done is closed once the capture stream has ended.
func (c *Camera) Done() <-chan struct{} { return c.done }

// Err reports the read error that ended the stream, if any.
func (c *Camera) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close stops ffmpeg and waits for the reader to exit. It is safe to call more
// than once.
func (c *Camera) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel, cmd := c.cancel, c.cmd
	c.cancel, c.cmd = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if cmd != nil {
		_ = cmd.Wait()
	}
	if cmd != nil || cancel != nil {
		<-c.done
	}
	return nil
}

// stderrLogger forwards ffmpeg diagnostics to the camera logger, one entry
// per line.
type stderrLogger struct {
	logger *log.Logger
}

func (w stderrLogger) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.logger.Printf("ffmpeg: %s", line)
		}
	}
	return len(p), nil
}
