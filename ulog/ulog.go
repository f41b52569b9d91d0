// Package ulog is a small leveled logger with key=value context, used for
// non-fatal layout warnings and demo diagnostics. Output goes to stderr.
package ulog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	minLevel           = LevelInfo
)

// SetLevel sets the minimum level that will be written.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

func Debug(msg string, kv ...any) { write(LevelDebug, msg, kv...) }
func Info(msg string, kv ...any)  { write(LevelInfo, msg, kv...) }
func Warn(msg string, kv ...any)  { write(LevelWarn, msg, kv...) }

// Error logs msg with err prepended to the key=value context.
func Error(msg string, err error, kv ...any) {
	write(LevelError, msg, append([]any{"err", err}, kv...)...)
}

func write(l Level, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString("[" + l.String() + "] ")
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, kv[i+1])
	}
	fmt.Fprintln(out, b.String())
}
