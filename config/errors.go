package config

import "errors"

var (
	// ErrMissingRequiredValue indicates a required environment variable was
	// absent when the configuration was first loaded.
	ErrMissingRequiredValue = errors.New("missing required configuration value")

	// ErrOutOfRangeValue indicates a configuration field violated its declared
	// bound or allowed value set.
	ErrOutOfRangeValue = errors.New("configuration value out of range")

	// ErrIncompleteCredentials indicates one or more credential fields were
	// empty after an otherwise successful load.
	ErrIncompleteCredentials = errors.New("incomplete firebase credentials")
)
