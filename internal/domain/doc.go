// Package domain contains the core selection model for slicer.
//
// The domain is I/O-agnostic: it does not depend on the filesystem, flag
// parsing, or YAML. Range lists, selection modes, and per-record cutting are
// pure functions over bytes and strings; infra/adapters map into these types.
package domain
