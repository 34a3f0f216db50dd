package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadTOML(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		want      Config
		expectErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Default(),
		},
		{
			name:    "disable checks",
			content: "check-dot = false\ncheck-order-within-group = false\n",
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckIndex: true, CheckEmptyLine: true},
			},
		},
		{
			name:    "disable rule",
			content: "enabled = false\n",
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:      "unknown key",
			content:   "check-everything = false\n",
			expectErr: true,
		},
		{
			name:    "non boolean values leave checks on",
			content: "check-dot = \"no\"\ncheck-index = 0\ncheck-empty-line = []\n",
			want:    Default(),
		},
		{
			name:    "only false disables",
			content: "check-dot = \"false\"\ncheck-empty-line = false\n",
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckDot: true, CheckIndex: true, CheckOrder: true},
			},
		},
		{
			name:      "unknown key next to untyped values",
			content:   "check-dot = 0\ncheck-all = false\n",
			expectErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			path := filepath.Join(tempDir, string(rune('a'+i)), TOMLFileName)
			writeFile(t, path, tt.content)

			cfg, err := LoadTOML(path)
			if tt.expectErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			tt.want.Source = path
			req.Equal(tt.want, cfg)
		})
	}
}

func TestParseTSLint(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		js        bool
		want      Config
		expectErr bool
	}{
		{
			name:    "rule missing disables",
			content: `{"rules": {"no-console": true}}`,
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:    "rule true",
			content: `{"rules": {"import-group-ordering": true}}`,
			want:    Default(),
		},
		{
			name:    "rule false",
			content: `{"rules": {"import-group-ordering": false}}`,
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:    "array with options",
			content: `{"rules": {"import-group-ordering": [true, {"check-index": false}]}}`,
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckDot: true, CheckEmptyLine: true, CheckOrder: true},
			},
		},
		{
			name:    "object with options object",
			content: `{"rules": {"import-group-ordering": {"severity": "warning", "options": {"check-empty-line": false}}}}`,
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckDot: true, CheckIndex: true, CheckOrder: true},
			},
		},
		{
			name:    "object with options array",
			content: `{"rules": {"import-group-ordering": {"options": [{"check-dot": false}]}}}`,
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckIndex: true, CheckEmptyLine: true, CheckOrder: true},
			},
		},
		{
			name:    "severity off",
			content: `{"rules": {"import-group-ordering": {"severity": "off"}}}`,
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:    "non boolean options leave checks on",
			content: `{"rules": {"import-group-ordering": [true, {"check-dot": 0, "check-index": "no", "check-empty-line": null}]}}`,
			want:    Default(),
		},
		{
			name:    "options not an object are ignored",
			content: `{"rules": {"import-group-ordering": [true, "check-dot"]}}`,
			want:    Default(),
		},
		{
			name:    "options null are ignored",
			content: `{"rules": {"import-group-ordering": {"options": null}}}`,
			want:    Default(),
		},
		{
			name:      "unknown option rejected by schema",
			content:   `{"rules": {"import-group-ordering": [true, {"check-anything": false}]}}`,
			expectErr: true,
		},
		{
			name:      "array must start with boolean",
			content:   `{"rules": {"import-group-ordering": [{"check-dot": false}]}}`,
			expectErr: true,
		},
		{
			name:      "invalid json",
			content:   `{"rules": `,
			expectErr: true,
		},
		{
			name:    "javascript without jsRules disables",
			content: `{"rules": {"import-group-ordering": true}}`,
			js:      true,
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:    "javascript with jsRules true copies rules",
			content: `{"rules": {"import-group-ordering": [true, {"check-dot": false}]}, "jsRules": true}`,
			js:      true,
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckIndex: true, CheckEmptyLine: true, CheckOrder: true},
			},
		},
		{
			name:    "javascript with jsRules false disables",
			content: `{"rules": {"import-group-ordering": true}, "jsRules": false}`,
			js:      true,
			want:    Config{Enabled: false, Options: ordering.DefaultOptions()},
		},
		{
			name:    "javascript reads the jsRules map",
			content: `{"rules": {"import-group-ordering": false}, "jsRules": {"import-group-ordering": [true, {"check-index": false}]}}`,
			js:      true,
			want: Config{
				Enabled: true,
				Options: ordering.Options{CheckDot: true, CheckEmptyLine: true, CheckOrder: true},
			},
		},
		{
			name:    "typescript ignores the jsRules map",
			content: `{"rules": {"import-group-ordering": true}, "jsRules": {"import-group-ordering": false}}`,
			want:    Default(),
		},
		{
			name:      "invalid jsRules",
			content:   `{"rules": {}, "jsRules": "yes"}`,
			js:        true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cfg, err := ParseTSLint([]byte(tt.content), tt.js)
			if tt.expectErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, cfg)
		})
	}
}

func TestLoad_dispatch(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	jsonPath := filepath.Join(tempDir, "lint.json")
	writeFile(t, jsonPath, `{"rules": {"import-group-ordering": [true, {"check-dot": false}]}}`)
	cfg, err := Load(jsonPath, false)
	req.NoError(err)
	req.False(cfg.Options.CheckDot)
	req.Equal(jsonPath, cfg.Source)

	cfg, err = Load(jsonPath, true)
	req.NoError(err)
	req.False(cfg.Enabled, "tslint.json without jsRules does not lint javascript")

	tomlPath := filepath.Join(tempDir, "custom.toml")
	writeFile(t, tomlPath, "check-index = false\n")
	cfg, err = Load(tomlPath, true)
	req.NoError(err)
	req.False(cfg.Options.CheckIndex)

	_, err = Load(filepath.Join(tempDir, "config.yaml"), false)
	req.Error(err)

	_, err = Load(filepath.Join(tempDir, "missing.json"), false)
	req.Error(err)
}

func TestFromEnv(t *testing.T) {
	req := require.New(t)
	env := map[string]string{
		"IGO_CHECK_DOT":                "false",
		"IGO_CHECK_ORDER_WITHIN_GROUP": "1",
		"IGO_CHECK_INDEX":              "  ",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	overrides, err := FromEnv(lookup)
	req.NoError(err)
	req.Equal(Overrides{ordering.OptCheckDot: false, ordering.OptCheckOrder: true}, overrides)

	env["IGO_CHECK_EMPTY_LINE"] = "sometimes"
	_, err = FromEnv(lookup)
	req.Error(err)
	req.Contains(err.Error(), "IGO_CHECK_EMPTY_LINE")
}

func TestEnvName(t *testing.T) {
	req := require.New(t)
	req.Equal("IGO_CHECK_DOT", EnvName(ordering.OptCheckDot))
	req.Equal("IGO_CHECK_ORDER_WITHIN_GROUP", EnvName(ordering.OptCheckOrder))
}

func TestLoadEnvFile(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()
	envPath := filepath.Join(tempDir, ".env")
	writeFile(t, envPath, "IGO_TEST_LOAD_ENV_FILE=false\n")
	t.Setenv("IGO_TEST_LOAD_ENV_FILE", "")
	req.NoError(os.Unsetenv("IGO_TEST_LOAD_ENV_FILE"))

	req.NoError(LoadEnvFile(envPath))
	req.Equal("false", os.Getenv("IGO_TEST_LOAD_ENV_FILE"))

	req.Error(LoadEnvFile(filepath.Join(tempDir, "missing.env")))
}

func TestOverrides(t *testing.T) {
	req := require.New(t)
	base := Overrides{ordering.OptCheckDot: false, ordering.OptCheckIndex: false}
	merged := base.Merge(Overrides{ordering.OptCheckIndex: true})

	req.Equal(Overrides{ordering.OptCheckDot: false, ordering.OptCheckIndex: true}, merged)
	req.False(base[ordering.OptCheckIndex], "Merge must not modify the receiver")

	opts := merged.Apply(ordering.DefaultOptions())
	req.False(opts.CheckDot)
	req.True(opts.CheckIndex)
	req.True(opts.CheckEmptyLine)
}
