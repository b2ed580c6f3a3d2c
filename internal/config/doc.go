// Package config provides configuration structures and utilities for seedscan.
// It defines the search, derivation, output and history settings, their
// defaults, and the optional .seedscan YAML file that overrides them.
package config
