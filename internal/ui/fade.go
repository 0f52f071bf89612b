package ui

import "github.com/charmbracelet/harmonica"

// Fade eases an opacity value between 0 and 1 with a critically damped
// spring.
type Fade struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewFade returns a hidden fade stepped at fps frames per second.
func NewFade(fps int) *Fade {
	if fps <= 0 {
		fps = 60
	}
	return &Fade{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// Show starts fading in.
func (f *Fade) Show() { f.target = 1 }

// Hide starts fading out.
func (f *Fade) Hide() { f.target = 0 }

// Shown reports whether the fade is heading towards fully visible.
func (f *Fade) Shown() bool { return f.target > 0 }

// Update advances one frame and returns the clamped opacity.
func (f *Fade) Update() float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, f.target)
	if f.target == 0 && f.pos < 0.01 {
		f.pos, f.vel = 0, 0
	}
	return f.Alpha()
}

// Alpha returns the current opacity in [0,1].
func (f *Fade) Alpha() float64 { return clamp01(f.pos) }

// Visible reports whether anything would be drawn.
func (f *Fade) Visible() bool { return f.Alpha() > 0 }
