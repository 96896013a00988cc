// Package config loads the garden client settings: built-in defaults, then
// an optional JSON file named by --config/-c, then the command-line flags
// the user actually set.
package config
