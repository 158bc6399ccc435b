// Package config loads optional per-user defaults from slicer.yaml.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmendive/slicer/internal/domain"
)

// Load reads a slicer.yaml and maps it onto the built-in defaults.
func Load(path string) (domain.Defaults, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindSourceIO,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLDefaults
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindUsage,
			Path: path,
			Err:  err,
		}
	}

	return mapDefaults(dto), nil
}

func mapDefaults(dto YAMLDefaults) domain.Defaults {
	out := domain.DefaultConfig()
	if dto.Cut.Delimiter != "" {
		out.CutDelimiter = dto.Cut.Delimiter
	}
	if dto.Head.Lines > 0 {
		out.HeadLines = dto.Head.Lines
	}
	return out
}
