// Package config loads, validates, and normalizes quarry's TOML
// configuration. The resolved config is explicit input to the planner,
// protection filter, and mover; nothing reads ambient globals, which
// keeps runs deterministic under test.
package config
