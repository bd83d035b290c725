package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxDepth bounds the frames searched for the logging call. The deepest
// logrus path (package level Infof) stays well below it.
const maxDepth = 16

// Hook records the file and line of the logging call in Field.
type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	entry.Data[hook.Field] = findCaller()
	return nil
}

// NewHook creates a hook for the given levels, all levels when none are given.
func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller returns the first frame outside logrus and this package.
func findCaller() string {
	pcs := make([]uintptr, maxDepth)
	// runtime.Callers, findCaller and Fire
	n := runtime.Callers(3, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLogrusFrame(frame) {
			return fmt.Sprintf("%s:%d", shortPath(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

func isLogrusFrame(frame runtime.Frame) bool {
	return strings.Contains(frame.File, "sirupsen/logrus") ||
		strings.HasPrefix(frame.Function, "github.com/sirupsen/logrus.")
}

// shortPath keeps the package directory and file name.
func shortPath(file string) string {
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				return file[i+1:]
			}
		}
	}
	return file
}
