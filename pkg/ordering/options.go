package ordering

// Option keys as they appear in rule configuration
const (
	OptCheckDot       = "check-dot"
	OptCheckIndex     = "check-index"
	OptCheckEmptyLine = "check-empty-line"
	OptCheckOrder     = "check-order-within-group"
)

// OptionKeys lists every configurable check
var OptionKeys = []string{OptCheckDot, OptCheckIndex, OptCheckEmptyLine, OptCheckOrder}

// Options toggles the configurable checks. The group precedence checks are always on.
type Options struct {
	CheckDot       bool
	CheckIndex     bool
	CheckEmptyLine bool
	CheckOrder     bool
}

// DefaultOptions enables every check
func DefaultOptions() Options {
	return Options{
		CheckDot:       true,
		CheckIndex:     true,
		CheckEmptyLine: true,
		CheckOrder:     true,
	}
}

// OptionsFromMap builds options from raw rule options. Only an explicit false
// disables a check; missing keys and any other value keep it enabled.
func OptionsFromMap(raw map[string]any) Options {
	opts := DefaultOptions()
	for _, key := range OptionKeys {
		if v, ok := raw[key].(bool); ok && !v {
			opts.Set(key, false)
		}
	}
	return opts
}

// Set changes a check by its option key. Unknown keys are ignored and reported false.
func (o *Options) Set(key string, enabled bool) bool {
	switch key {
	case OptCheckDot:
		o.CheckDot = enabled
	case OptCheckIndex:
		o.CheckIndex = enabled
	case OptCheckEmptyLine:
		o.CheckEmptyLine = enabled
	case OptCheckOrder:
		o.CheckOrder = enabled
	default:
		return false
	}
	return true
}
