// Package config resolves the rule configuration that applies to a source file.
//
// Settings are layered, lowest precedence first: built-in defaults, the nearest
// .importorder.toml or tslint.json, IGO_* environment variables, and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

const (
	TOMLFileName   = ".importorder.toml"
	TSLintFileName = "tslint.json"

	EnvPrefix = "IGO_"
)

// FileNames are the config files looked up next to a source file, in order of preference
var FileNames = []string{TOMLFileName, TSLintFileName}

// Config is the effective rule configuration for a file
type Config struct {
	Enabled bool
	Options ordering.Options
	Source  string // config file it came from, empty for defaults
}

// Default returns the configuration used when no config file is found
func Default() Config {
	return Config{Enabled: true, Options: ordering.DefaultOptions()}
}

// Load reads a config file, picking the format from its name. js selects the
// JavaScript rules of a tslint.json file.
func Load(path string, js bool) (Config, error) {
	switch {
	case filepath.Ext(path) == ".toml":
		return LoadTOML(path)
	case filepath.Ext(path) == ".json":
		return LoadTSLint(path, js)
	}
	return Config{}, fmt.Errorf("%s: %s", errors.ErrMsgUnsupportedConfigFile, path)
}

// Overrides forces checks on or off by option key
type Overrides map[string]bool

// Apply returns opts with the overrides applied
func (o Overrides) Apply(opts ordering.Options) ordering.Options {
	for key, enabled := range o {
		opts.Set(key, enabled)
	}
	return opts
}

// Merge returns a new set where the entries of other win
func (o Overrides) Merge(other Overrides) Overrides {
	merged := make(Overrides, len(o)+len(other))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// EnvName returns the environment variable for an option key, e.g. IGO_CHECK_DOT
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// FromEnv reads overrides from the environment through lookup
func FromEnv(lookup func(string) (string, bool)) (Overrides, error) {
	overrides := Overrides{}
	for _, key := range ordering.OptionKeys {
		name := EnvName(key)
		raw, ok := lookup(name)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		enabled, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf(errors.ErrMsgInvalidEnvValue+": %w", name, err)
		}
		overrides[key] = enabled
	}
	return overrides, nil
}

// LoadEnvFile loads variables from an env file without overriding the ones already set
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadEnvFile, err)
	}
	return nil
}

// OSEnv is FromEnv over the process environment
func OSEnv() (Overrides, error) {
	return FromEnv(os.LookupEnv)
}
