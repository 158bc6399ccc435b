package config

import (
	"os"
	"path/filepath"
)

// ConfigFile is the defaults file searched for upward from the working
// directory.
const ConfigFile = "slicer.yaml"

// Finder locates a slicer.yaml by searching upward from a start directory.
type Finder struct {
	ConfigFile string // defaults to ConfigFile
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

// Find returns the path of the nearest config file at or above startDir, or
// "" when none exists. Absence is normal and is not an error.
func (f *Finder) Find(startDir string) string {
	if startDir == "" {
		return ""
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return cfgPath
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return ""
		}
		cur = parent
	}
}

// Discover searches upward from the current working directory and returns
// the path of the nearest config file, or "" when none exists.
func Discover() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return NewFinder().Find(wd)
}
