package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Package-level leveled logger. The library only emits advisories (an
// unreadable group database, an install fallback), so there is no file
// output or rotation; callers that want to capture output can SetOutput.

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects log output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

func Warn(format string, args ...interface{}) {
	log(LevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

func log(lvl Level, format string, args ...interface{}) {
	now := time.Now().Format("2006/01/02 15:04:05")
	msg := fmt.Sprintf(format, args...)
	var label string
	switch lvl {
	case LevelInfo:
		label = "[INFO] "
	case LevelWarn:
		label = "[WARN] "
	case LevelError:
		label = "[EROR] " // 4 chars align
	}
	mu.Lock()
	fmt.Fprintf(out, "%s %s%s\n", now, label, msg)
	mu.Unlock()
}
