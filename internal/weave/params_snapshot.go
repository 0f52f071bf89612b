package weave

import (
	"strconv"

	"bamboo-weaver/internal/core"
)

// Parameters reports the current tunables grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Weave",
			Params: []core.Parameter{
				intParam("w", "Width", w.size.W),
				intParam("h", "Height", w.size.H),
				intParam("strips", "Strips", p.Strips),
				intParam("nodes", "Nodes per strip", p.Nodes),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("spring", "Spring", p.Spring),
				floatParam("damping", "Damping", p.Damping),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("radius", "Radius", p.Radius),
				floatParam("force", "Force", p.Force),
				boolParam("bucket_index", "Bucket index", p.BucketIndex),
			},
		},
	}}
}

var parameterControls = []core.ParameterControl{
	{Key: "strips", Label: "Strips", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
	{Key: "nodes", Label: "Nodes", Type: core.ParamTypeInt, Step: 2, Min: 2, Max: 120, HasMin: true, HasMax: true},
	{Key: "spring", Label: "Spring", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	{Key: "damping", Label: "Damping", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.5, Max: 0.99, HasMin: true, HasMax: true},
	{Key: "radius", Label: "Radius", Type: core.ParamTypeFloat, Step: 10, Min: 10, Max: 600, HasMin: true, HasMax: true},
	{Key: "force", Label: "Force", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 2, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(parameterControls))
	copy(out, parameterControls)
	return out
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range parameterControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a physics or motion tunable, clamped to its
// control range. It takes effect on the next tick.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "spring":
		w.cfg.Params.Spring = value
	case "damping":
		w.cfg.Params.Damping = value
	case "radius":
		w.cfg.Params.Radius = value
	case "force":
		w.cfg.Params.Force = value
	default:
		return false
	}
	w.applyParams()
	return true
}

// SetIntParameter updates the grid density. The grid is rebuilt from the
// current random stream.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = ctrl.ClampInt(value)
	switch key {
	case "strips":
		w.cfg.Params.Strips = value
	case "nodes":
		w.cfg.Params.Nodes = value
	default:
		return false
	}
	w.rebuild()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
