package weave

import "strconv"

// Params holds the tunables for the strip grid and its physics.
type Params struct {
	Strips int
	Nodes  int

	Spring  float64
	Damping float64

	Radius      float64
	Force       float64
	BucketIndex bool
}

// Config controls the viewport the grid is laid out on.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 800,
		Seed:   1337,
		Params: Params{
			Strips:  18,
			Nodes:   30,
			Spring:  0.025,
			Damping: 0.94,
			Radius:  150,
			Force:   0.12,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["strips"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Strips = parsed
		}
	}
	if v, ok := cfg["nodes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Nodes = parsed
		}
	}
	if v, ok := cfg["spring"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Spring = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.Damping = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Radius = parsed
		}
	}
	if v, ok := cfg["force"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Force = parsed
		}
	}
	if v, ok := cfg["bucket_index"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.BucketIndex = parsed
		}
	}
	return c
}
