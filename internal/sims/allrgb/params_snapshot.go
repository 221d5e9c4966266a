package allrgb

import (
	"strconv"

	"allrgb/internal/core"
)

// Parameters reports the run's parameter tuple and derived dimensions.
func (e *Engine) Parameters() core.ParameterSnapshot {
	cfg := e.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Color space",
			Params: []core.Parameter{
				intParam("scale", "Scale", cfg.Scale),
				intParam("color_size", "Levels per channel", cfg.ColorSize()),
				intParam("size", "Side length", cfg.Size()),
			},
		},
		{
			Name: "Placement",
			Params: []core.Parameter{
				intParam("seeds", "Seed colors", cfg.NumSeeds),
				floatParam("turn", "Initial turn rate", cfg.TurnRate),
				floatParam("alpha", "Turn decay exponent", cfg.Alpha),
				intParam("cycle", "Walk budget in grid widths", cfg.CycleCap),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
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
