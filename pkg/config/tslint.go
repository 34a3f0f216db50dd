package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

const ruleOptionsSchemaURL = "import-group-ordering.schema.json"

// ruleOptionsSchema only names the option keys. Values are not typed: anything
// but false leaves a check on.
const ruleOptionsSchema = `{
  "type": "object",
  "properties": {
    "check-dot": {},
    "check-index": {},
    "check-empty-line": {},
    "check-order-within-group": {}
  },
  "additionalProperties": false
}`

var compiledRuleSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(ruleOptionsSchemaURL, strings.NewReader(ruleOptionsSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(ruleOptionsSchemaURL)
})

type tslintFile struct {
	Rules   map[string]json.RawMessage `json:"rules"`
	JSRules json.RawMessage            `json:"jsRules"`
}

// jsRules returns the rules applied to JavaScript files: none when jsRules is
// absent or false, a copy of rules when it is true, the given map otherwise
func (f tslintFile) jsRules() (map[string]json.RawMessage, error) {
	raw := bytes.TrimSpace(f.JSRules)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var copyRules bool
	if err := json.Unmarshal(raw, &copyRules); err == nil {
		if copyRules {
			return f.Rules, nil
		}
		return nil, nil
	}
	var rules map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("%s: jsRules: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	return rules, nil
}

type tslintRule struct {
	Severity string          `json:"severity"`
	Options  json.RawMessage `json:"options"`
}

// LoadTSLint reads the import-group-ordering entry of a tslint.json file, from
// jsRules when js is set. A file without the entry disables the rule.
func LoadTSLint(path string, js bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	cfg, err := ParseTSLint(data, js)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// ParseTSLint parses tslint.json content for TypeScript files, or for
// JavaScript files when js is set
func ParseTSLint(data []byte, js bool) (Config, error) {
	var file tslintFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}

	rules := file.Rules
	if js {
		var err error
		if rules, err = file.jsRules(); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	raw, ok := rules[ordering.RuleName]
	if !ok {
		cfg.Enabled = false
		return cfg, nil
	}

	enabled, options, err := parseRuleValue(raw)
	if err != nil {
		return Config{}, err
	}
	cfg.Enabled = enabled
	if options != nil {
		if err := validateRuleOptions(options); err != nil {
			return Config{}, err
		}
		cfg.Options = ordering.OptionsFromMap(options)
	}
	return cfg, nil
}

// parseRuleValue understands the tslint shapes of a rule entry:
// true, [true, {...}], and {"severity": "...", "options": {...} | [{...}]}
func parseRuleValue(raw json.RawMessage) (bool, map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return true, nil, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, nil, fmt.Errorf("%s: %w", errors.ErrMsgInvalidRuleOptions, err)
	}

	switch v := value.(type) {
	case bool:
		return v, nil, nil
	case []any:
		if len(v) == 0 {
			return true, nil, nil
		}
		enabled, ok := v[0].(bool)
		if !ok {
			return false, nil, fmt.Errorf("%s: first element must be a boolean", errors.ErrMsgInvalidRuleOptions)
		}
		return enabled, optionObject(v[1:]), nil
	case map[string]any:
		var rule tslintRule
		if err := json.Unmarshal(raw, &rule); err != nil {
			return false, nil, fmt.Errorf("%s: %w", errors.ErrMsgInvalidRuleOptions, err)
		}
		enabled := true
		switch strings.ToLower(rule.Severity) {
		case "off", "none":
			enabled = false
		}
		if len(rule.Options) == 0 {
			return enabled, nil, nil
		}
		var opts any
		if err := json.Unmarshal(rule.Options, &opts); err != nil {
			return false, nil, fmt.Errorf("%s: %w", errors.ErrMsgInvalidRuleOptions, err)
		}
		if list, ok := opts.([]any); ok {
			return enabled, optionObject(list), nil
		}
		return enabled, optionObject([]any{opts}), nil
	case nil:
		return true, nil, nil
	}
	return false, nil, fmt.Errorf("%s: unexpected %T", errors.ErrMsgInvalidRuleOptions, value)
}

// optionObject returns the first rule argument. Anything but an object counts as
// no options.
func optionObject(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	obj, _ := args[0].(map[string]any)
	return obj
}

func validateRuleOptions(options map[string]any) error {
	schema, err := compiledRuleSchema()
	if err != nil {
		return fmt.Errorf("compile rule schema: %w", err)
	}
	if err := schema.Validate(options); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgInvalidRuleOptions, err)
	}
	return nil
}
