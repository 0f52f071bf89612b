package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"bamboo-weaver/internal/motion"
	"bamboo-weaver/internal/oracle"
	"bamboo-weaver/internal/weave"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the well-formed pairs; later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64

	Camera       bool
	CameraDevice string
	CameraFormat string

	Model   string
	Timeout time.Duration

	HUD   bool
	Debug bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := weave.DefaultConfig()
	return &Config{
		Width:   def.Width,
		Height:  def.Height,
		TPS:     60,
		Seed:    def.Seed,
		Camera:  true,
		Model:   oracle.DefaultModel,
		Timeout: oracle.DefaultTimeout,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for strip cosmetics")
	fs.BoolVar(&c.Camera, "camera", c.Camera, "capture motion from the camera via ffmpeg")
	fs.StringVar(&c.CameraDevice, "camera-device", c.CameraDevice, "capture device (platform default when empty)")
	fs.StringVar(&c.CameraFormat, "camera-format", c.CameraFormat, "ffmpeg input format override")
	fs.StringVar(&c.Model, "model", c.Model, "Gemini model used for interpretations")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "interpretation request timeout")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/weaver.log and show motion events")
	fs.Var(&c.Overrides, "set", "weave parameter override in key=value form (repeatable, wins over -width/-height/-seed)")
}

// WeaveConfig merges the window flags with any -set overrides.
func (c *Config) WeaveConfig() weave.Config {
	return WeaveConfigFor(c.Width, c.Height, c.Seed, c.Overrides)
}

// WeaveConfigFor builds a weave config from viewport flags. Entries in
// overrides win over the flags, including w, h and seed.
func WeaveConfigFor(width, height int, seed int64, overrides KVList) weave.Config {
	m := map[string]string{
		"w":    strconv.Itoa(width),
		"h":    strconv.Itoa(height),
		"seed": strconv.FormatInt(seed, 10),
	}
	for k, v := range overrides.Map() {
		m[k] = v
	}
	return weave.FromMap(m)
}

// CameraConfig returns the capture settings.
func (c *Config) CameraConfig() motion.CameraConfig {
	cfg := motion.DefaultCameraConfig()
	cfg.Device = c.CameraDevice
	cfg.Format = c.CameraFormat
	return cfg
}

// GeminiConfig returns the interpretation client settings.
func (c *Config) GeminiConfig() oracle.GeminiConfig {
	return oracle.GeminiConfig{
		APIKey:  oracle.APIKeyFromEnv(),
		Model:   c.Model,
		Timeout: c.Timeout,
	}
}
