// logger.go - Diagnostics sink for runtime-soft faults
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package iobus

import (
	"fmt"
	"os"
)

// Logger receives human-readable diagnostic lines for runtime-soft
// conditions: reads/writes to unmapped memory or unregistered ports.
// Grounded on IntuitionEngine's own practice of fmt.Fprintf(os.Stderr,
// ...) for exactly this class of message (see terminal_host.go) rather
// than a structured-logging package — no such package appears anywhere
// in the retrieved corpus for this spec.
type Logger interface {
	Warnf(format string, args ...any)
}

// StderrLogger writes every warning to os.Stderr as a single line.
type StderrLogger struct{}

func (StderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// nopLogger discards everything. Used as the zero-value default so a
// Bus constructed without an explicit logger never nil-derefs.
type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}
