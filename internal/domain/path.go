package domain

import "path/filepath"

// Basename returns the last component of path with trailing separators
// removed. An empty path yields "."; a path of only separators yields "/".
func Basename(path string) string {
	return filepath.Base(path)
}

// StripSuffix removes suffix from name when it matches the end of name.
// The suffix is kept when it is empty or when it equals the whole name,
// so "basename .txt .txt" still prints ".txt".
func StripSuffix(name, suffix string) string {
	if suffix == "" || len(suffix) >= len(name) {
		return name
	}
	if name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name
}

// Dirname returns path with its last non-separator component removed.
// A path with no separators yields "." (the current directory).
func Dirname(path string) string {
	return filepath.Dir(path)
}
