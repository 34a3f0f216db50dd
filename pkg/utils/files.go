package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceExtensions are the file extensions that carry import declarations
var SourceExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs"}

// JSExtensions are the source extensions tslint lints with jsRules
var JSExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// IsSourceFile checks if a file is a JavaScript or TypeScript source file (includes test files)
func IsSourceFile(filename string) bool {
	ext := filepath.Ext(filename)
	for _, known := range SourceExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// IsJSFile checks if a file is JavaScript rather than TypeScript
func IsJSFile(filename string) bool {
	ext := filepath.Ext(filename)
	for _, known := range JSExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// FindSourceFiles recursively finds all JavaScript and TypeScript source files in a directory
func FindSourceFiles(root string) ([]string, error) {
	var sourceFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency directories and hidden directories (but not the root directory)
		if info.IsDir() {
			if path == root {
				return nil
			}
			name := filepath.Base(path)
			if name == "node_modules" || name == "vendor" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(filepath.Base(path)) {
			sourceFiles = append(sourceFiles, path)
		}

		return nil
	})

	return sourceFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
