// Package config loads, validates and caches process configuration from
// environment variables and an optional .env file. It defines the Settings
// snapshot, the Firebase credential bundle derived from it, and a Manager
// that guarantees the load-and-validate sequence runs at most once per process.
package config
