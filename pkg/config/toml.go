package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

// Check values are kept untyped so that only false turns a check off
type tomlConfig struct {
	Enabled    *bool `toml:"enabled"`
	CheckDot   any   `toml:"check-dot"`
	CheckIndex any   `toml:"check-index"`
	CheckEmpty any   `toml:"check-empty-line"`
	CheckOrder any   `toml:"check-order-within-group"`
}

// LoadTOML reads a .importorder.toml file. Unknown keys are rejected.
func LoadTOML(path string) (Config, error) {
	var raw tomlConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %s: %w", errors.ErrMsgFailedToParseConfig, path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %s: %s", errors.ErrMsgUnknownConfigKeys, path, strings.Join(keys, ", "))
	}

	cfg := Default()
	cfg.Source = path
	if raw.Enabled != nil {
		cfg.Enabled = *raw.Enabled
	}
	cfg.Options = ordering.OptionsFromMap(raw.options())
	return cfg, nil
}

func (c tomlConfig) options() map[string]any {
	opts := map[string]any{}
	for key, v := range map[string]any{
		ordering.OptCheckDot:       c.CheckDot,
		ordering.OptCheckIndex:     c.CheckIndex,
		ordering.OptCheckEmptyLine: c.CheckEmpty,
		ordering.OptCheckOrder:     c.CheckOrder,
	} {
		if v != nil {
			opts[key] = v
		}
	}
	return opts
}
