package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/exprparse"
)

// config is the settings for a run. The exported fields may be set from a
// TOML file:
//
//	format = "%.3f"
//	precision = "float32"
//
//	[vars]
//	x = 1.5
//	y = -2.0
type config struct {
	Format    string             `toml:"format"`
	Precision string             `toml:"precision"`
	Vars      map[string]float64 `toml:"vars"`

	Echo     bool `toml:"-"`
	Builtins bool `toml:"-"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, errors.Wrapf(err, "reading variables from %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return config{}, errors.Errorf("unknown setting %q in %s", keys[0].String(), path)
	}
	return cfg, nil
}

// given adds name=value definitions to the variables. Each value is an
// expression which may use any variable defined before it, and builtins if
// they are enabled.
func (cfg *config) given(log logrus.FieldLogger, defs []string) error {
	for _, d := range defs {
		name, val, ok := strings.Cut(d, "=")
		name, val = strings.TrimSpace(name), strings.TrimSpace(val)
		if !ok || name == "" {
			return errors.Errorf(`variable definitions must be "name=value", not %q`, d)
		}
		e := exprparse.New[float64](exprparse.WithLogger(log))
		if err := register(e, &config{Vars: cfg.Vars, Builtins: cfg.Builtins}); err != nil {
			return errors.Wrapf(err, "setting %s", name)
		}
		if err := e.Parse(val); err != nil {
			return errors.Wrapf(err, "setting %s", name)
		}
		x, err := e.Eval()
		if err != nil {
			return errors.Wrapf(err, "setting %s", name)
		}
		if cfg.Vars == nil {
			cfg.Vars = make(map[string]float64)
		}
		cfg.Vars[name] = x
	}
	return nil
}
