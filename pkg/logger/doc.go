// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package and writes JSON records to the
// configured log file, or text to stdout when no file is set.
package logger
