// Package logger provides the logging sink used by the arbor engine.
package logger

import (
	"fmt"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// prefixLogger decorates another logger with a fixed prefix, used to tag
// every line belonging to a single logical operation.
type prefixLogger struct {
	prefix string
	next   Logger
}

// NewPrefixLogger creates a logger that prepends prefix to every message
// before forwarding it to next.
func NewPrefixLogger(prefix string, next Logger) Logger {
	return &prefixLogger{prefix: prefix, next: next}
}

// Logf forwards the formatted message with the configured prefix.
func (p *prefixLogger) Logf(format string, args ...interface{}) {
	p.next.Logf("%s %s", p.prefix, fmt.Sprintf(format, args...))
}
