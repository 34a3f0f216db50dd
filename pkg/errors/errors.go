package errors

import "errors"

// Error message constants for the import-group-ordering application
const (
	// File processing errors
	ErrMsgFailedToReadFile      = "failed to read file"
	ErrMsgFailedToScanFile      = "failed to scan imports"
	ErrMsgFailedToResolveConfig = "failed to resolve config"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig    = "failed to load config"
	ErrMsgFailedToParseConfig   = "failed to parse config"
	ErrMsgInvalidRuleOptions    = "invalid rule options"
	ErrMsgUnknownConfigKeys     = "unknown config keys"
	ErrMsgUnsupportedConfigFile = "unsupported config file"
	ErrMsgInvalidEnvValue       = "invalid value for environment variable %s"
	ErrMsgFailedToLoadEnvFile   = "failed to load env file"

	// Output errors
	ErrMsgUnknownFormat  = "unknown output format %q"
	ErrMsgUnknownColor   = "unknown color mode %q"
	ErrMsgFailedToReport = "failed to write report"

	// Info/warning messages
	InfoMsgNoSourceFilesFound = "No source files found in directory: %s"
	InfoMsgFoundSourceFiles   = "Found %d source files in directory: %s"
	InfoMsgUsingConfig        = "Using config: %s"
	InfoMsgErrorProcessing    = "Error processing %s: %v"
	InfoMsgLintedCount        = "Linted %d files, %d violations"
	InfoMsgErrorCount         = ", %d files had errors"
)

// ErrViolationsFound is returned when at least one import violates the ordering rules
var ErrViolationsFound = errors.New("import ordering violations found")
