// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format by default, or in logfmt-style text for terminals.
package logging
