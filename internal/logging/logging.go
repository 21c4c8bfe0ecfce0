// Package logging provides the package-scoped, printf-style log helpers
// used across the replica cluster, in the same spirit as the teacher's
// stan package-level Debugf/Tracef helpers, backed by a structured
// github.com/hashicorp/go-hclog logger instead of a bespoke one.
package logging

import (
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	mu  sync.RWMutex
	log = hclog.New(&hclog.LoggerOptions{
		Name:  "chat262",
		Level: hclog.Info,
	})
)

// SetLevel adjusts the global log level (Info by default); no command in
// this module calls it.
func SetLevel(level hclog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log.SetLevel(level)
}

// Named returns a sub-logger scoped to a component, e.g. logging.Named("replica.2").
func Named(name string) hclog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log.Named(name)
}

func Tracef(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Trace(sprintf(format, args...))
}

func Debugf(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debug(sprintf(format, args...))
}

func Infof(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Info(sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	log.Error(sprintf(format, args...))
}

// Fatalf logs at error level and exits the process, matching spec's "fatal
// to the replica" handling for durable-store write failures.
func Fatalf(format string, args ...interface{}) {
	Errorf(format, args...)
	os.Exit(1)
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return hclog.Fmt(format, args...)
}
