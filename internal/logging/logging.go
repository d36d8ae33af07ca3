package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the component-tagged logger shared by the context and the backends.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one line per entry to w. Writes are serialized so the
// framebuffer input goroutines can log alongside the render loop.
type FileLogger struct {
	mu *sync.Mutex
	w  io.Writer
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{mu: &sync.Mutex{}, w: w} }

// NewStdoutLogger logs to the process stdout, which is where stdio
// redirection sends it when enabled.
func NewStdoutLogger() FileLogger { return NewFileLogger(os.Stdout) }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	if l.w == nil {
		return
	}
	line := fmt.Sprintf("%s [%s] %s: %s\n", time.Now().Format(time.RFC3339), level, component, fmt.Sprintf(format, args...))
	if l.mu != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	_, _ = io.WriteString(l.w, line)
}

// Tee fans entries out to every logger in order.
type Tee []Logger

func (t Tee) Infof(component, format string, args ...interface{}) {
	for _, l := range t {
		l.Infof(component, format, args...)
	}
}

func (t Tee) Errorf(component, format string, args ...interface{}) {
	for _, l := range t {
		l.Errorf(component, format, args...)
	}
}
