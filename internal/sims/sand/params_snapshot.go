package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// Parameters reports the configuration and live counters for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.Size()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				boolParam("dunes", "Dunes", e.cfg.Dunes),
				floatParam("dune_height", "Dune height", e.cfg.DuneHeight),
				floatParam("dune_scale", "Dune scale", e.cfg.DuneScale),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				int64Param("tick", "Tick", int64(e.tick)),
				intParam("grains", "Grains", e.Grains()),
				intParam("moves", "Moved last tick", e.moves),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
