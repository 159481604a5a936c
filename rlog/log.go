// Package rlog is a minimal leveled logging helper shared by the search
// core and the CLI. It wraps the standard library's log.Logger rather than
// pulling in a logging framework, matching the teacher's own preference for
// small local helpers over heavyweight dependencies (see go-raptor's
// slice_it.go / utils.go: single-purpose files, no framework reach).
package rlog

import (
	"log"
	"os"
)

// Logger is request- or component-scoped; never a package-level global, per
// DESIGN NOTES §9 ("Request-local timer tree").
type Logger struct {
	prefix string
	out    *log.Logger
}

// New creates a Logger tagged with prefix (typically a component name such
// as "mcraptor" or "raptorctl").
func New(prefix string) *Logger {
	return &Logger{prefix: prefix, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *Logger) Infof(format string, args ...any) {
	l.out.Printf("INFO  ["+l.prefix+"] "+format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.out.Printf("WARN  ["+l.prefix+"] "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.out.Printf("ERROR ["+l.prefix+"] "+format, args...)
}
