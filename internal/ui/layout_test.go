package ui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"bamboo-weaver/internal/core"
)

func TestStepTargetClamps(t *testing.T) {
	ctrl := core.ParameterControl{Key: "damping", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.5, Max: 0.99, HasMin: true, HasMax: true}
	if v, ok := stepTarget(ctrl, 0.94, 1); !ok || v < 0.9499 || v > 0.9501 {
		t.Fatalf("expected 0.95, got %f (ok=%v)", v, ok)
	}
	if _, ok := stepTarget(ctrl, 0.99, 1); ok {
		t.Fatal("stepping past the max should be refused")
	}
	if v, ok := stepTarget(ctrl, 0.505, -1); !ok || v != 0.5 {
		t.Fatalf("expected clamp to min, got %f", v)
	}

	ints := core.ParameterControl{Key: "strips", Type: core.ParamTypeInt, Step: 0, Min: 1, Max: 64, HasMin: true, HasMax: true}
	if v, ok := stepTarget(ints, 18, -1); !ok || v != 17 {
		t.Fatalf("expected int step of 1, got %f", v)
	}
	if _, ok := stepTarget(ints, 1, -1); ok {
		t.Fatal("stepping below min should be refused")
	}
}

func TestFormatValue(t *testing.T) {
	spring := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}
	if got := formatValue(spring, 0.025); got != "0.025" {
		t.Fatalf("unexpected spring format %q", got)
	}
	radius := core.ParameterControl{Type: core.ParamTypeFloat, Step: 10}
	if got := formatValue(radius, 150); got != "150.0" {
		t.Fatalf("unexpected radius format %q", got)
	}
	if got := formatValue(core.ParameterControl{Type: core.ParamTypeInt}, 29.6); got != "30" {
		t.Fatalf("unexpected int format %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("wind bends the reed\nyet the root holds", 10)
	want := []string{"wind bends", "the reed", "yet the", "root holds"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected wrap %q", lines)
	}
	long := wrapText("abcdefghijkl", 5)
	if strings.Join(long, "|") != "abcde|fghij|kl" {
		t.Fatalf("long words should be split, got %q", long)
	}
}

func TestCenteredRect(t *testing.T) {
	r := centeredRect(image.Rect(0, 0, 100, 50), 20, 10)
	if r != image.Rect(40, 20, 60, 30) {
		t.Fatalf("unexpected rect %v", r)
	}
	if !pointInRect(40, 20, r) || pointInRect(60, 30, r) {
		t.Fatal("rect bounds should be half-open")
	}
}

func TestWithAlphaPremultiplies(t *testing.T) {
	got := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if got != (color.RGBA{R: 100, G: 50, B: 25, A: 128}) {
		t.Fatalf("unexpected colour %+v", got)
	}
}

func TestFadeEasesInAndOut(t *testing.T) {
	f := NewFade(60)
	if f.Visible() {
		t.Fatal("fade starts hidden")
	}
	f.Show()
	for i := 0; i < 120; i++ {
		f.Update()
	}
	if a := f.Alpha(); a < 0.98 {
		t.Fatalf("expected fade to reach full opacity, got %f", a)
	}
	f.Hide()
	for i := 0; i < 120; i++ {
		f.Update()
	}
	if f.Visible() {
		t.Fatalf("expected fade to finish hidden, alpha=%f", f.Alpha())
	}
}
