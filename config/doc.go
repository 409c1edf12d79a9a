// Package config defines the YAML configuration model of the shamir CLI as
// well as helpers to load it from any afs-supported location, apply defaults
// and environment overrides, and validate the result.
package config
