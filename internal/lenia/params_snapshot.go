package lenia

import (
	"strconv"

	"github.com/NeueNeo/lenia/internal/core"
)

// Parameters reports the current engine tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	s := w.pending
	groups := []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Kernel",
			Params: []core.Parameter{
				intParam("r", "Kernel radius", s.R),
				floatParam("kernel_sigma", "Kernel sigma", s.KernelSigma),
				intParam("rings", "Ring count", len(s.Beta)),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("mu", "Growth center", s.Mu),
				floatParam("sigma", "Growth width", s.Sigma),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				floatParam("dt", "Time step", s.DT),
				intParam("speed", "Ticks per frame", s.Speed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable engine parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "r", Label: "Kernel radius", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxKernelRadius, HasMin: true, HasMax: true},
		{Key: "kernel_sigma", Label: "Kernel sigma", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: 1, HasMin: true, HasMax: true},
		{Key: "mu", Label: "Growth center", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "sigma", Label: "Growth width", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.001, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "dt", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Ticks per frame", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer engine parameter. It reports whether
// the update was accepted; rejected updates leave the configuration intact.
func (w *World) SetIntParameter(key string, value int) bool {
	s := w.Settings()
	switch key {
	case "r":
		s.R = value
	case "speed":
		s.Speed = value
	default:
		return false
	}
	return w.ApplySettings(s) == nil
}

// SetFloatParameter updates a floating point engine parameter. It reports
// whether the update was accepted.
func (w *World) SetFloatParameter(key string, value float64) bool {
	s := w.Settings()
	switch key {
	case "kernel_sigma":
		s.KernelSigma = value
	case "mu":
		s.Mu = value
	case "sigma":
		s.Sigma = value
	case "dt":
		s.DT = value
	default:
		return false
	}
	return w.ApplySettings(s) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
