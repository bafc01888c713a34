// Package config loads the shim's behavior configuration from JSON.
//
// Reads go through gjson so unknown keys are ignored and missing or
// type-mismatched values fall back to their defaults; writes go through
// sjson so a saved file round-trips the effective configuration.
package config
