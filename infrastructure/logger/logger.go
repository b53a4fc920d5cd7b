package logger

import (
	"fmt"
	"sync"
	"time"
)

// logEntry is a single formatted log line queued for a Backend's writers.
type logEntry struct {
	level Level
	log   []byte
}

// Logger writes to a Backend under a fixed subsystem tag and a
// per-subsystem minimum level.
type Logger struct {
	lvl          Level
	subsystemTag string
	backend      *Backend
	writeChan    chan logEntry
}

// Level returns the logger's current minimum level.
func (l *Logger) Level() Level {
	return loadLevel(&l.lvl)
}

// SetLevel changes the logger's minimum level.
func (l *Logger) SetLevel(level Level) {
	storeLevel(&l.lvl, level)
}

func (l *Logger) write(level Level, s string) {
	if level < l.Level() {
		return
	}
	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05.000"), level, s)
	select {
	case l.writeChan <- logEntry{level: level, log: []byte(l.subsystemTag + ": " + line)}:
	default:
		// No receiver is ready: the backend isn't running (no Run() call,
		// e.g. in tests), or its unbuffered channel's reader is still busy
		// with an earlier entry. Drop rather than block the caller.
	}
}

// Tracef formats and logs a message at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) { l.write(LevelTrace, fmt.Sprintf(format, args...)) }

// Debugf formats and logs a message at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof formats and logs a message at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.write(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf formats and logs a message at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) { l.write(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf formats and logs a message at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(LevelError, fmt.Sprintf(format, args...)) }

// Criticalf formats and logs a message at LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, fmt.Sprintf(format, args...))
}

// Trace logs args at LevelTrace using their default formatting.
func (l *Logger) Trace(args ...interface{}) { l.write(LevelTrace, fmt.Sprint(args...)) }

// Debug logs args at LevelDebug using their default formatting.
func (l *Logger) Debug(args ...interface{}) { l.write(LevelDebug, fmt.Sprint(args...)) }

// Info logs args at LevelInfo using their default formatting.
func (l *Logger) Info(args ...interface{}) { l.write(LevelInfo, fmt.Sprint(args...)) }

// Warn logs args at LevelWarn using their default formatting.
func (l *Logger) Warn(args ...interface{}) { l.write(LevelWarn, fmt.Sprint(args...)) }

// Error logs args at LevelError using their default formatting.
func (l *Logger) Error(args ...interface{}) { l.write(LevelError, fmt.Sprint(args...)) }

// Critical logs args at LevelCritical using their default formatting.
func (l *Logger) Critical(args ...interface{}) { l.write(LevelCritical, fmt.Sprint(args...)) }

var levelMu sync.Mutex

func loadLevel(l *Level) Level {
	levelMu.Lock()
	defer levelMu.Unlock()
	return *l
}

func storeLevel(l *Level, v Level) {
	levelMu.Lock()
	defer levelMu.Unlock()
	*l = v
}

var (
	backendMu        sync.Mutex
	defaultBackend   = NewBackend()
	subsystemLoggers = make(map[string]*Logger)
)

// RegisterSubSystem creates (or returns the existing) Logger for tag,
// backed by the package's shared default Backend. Every package in this
// module that logs calls this once, at package init, the way the teacher's
// per-package log.go files do.
func RegisterSubSystem(tag string) *Logger {
	backendMu.Lock()
	defer backendMu.Unlock()

	if l, ok := subsystemLoggers[tag]; ok {
		return l
	}
	l := defaultBackend.Logger(tag)
	l.SetLevel(LevelInfo)
	subsystemLoggers[tag] = l
	return l
}

// SetLogLevels sets every registered subsystem's level at once, the way a
// top-level --loglevel flag would.
func SetLogLevels(level Level) {
	backendMu.Lock()
	defer backendMu.Unlock()

	for _, l := range subsystemLoggers {
		l.SetLevel(level)
	}
}

// DefaultBackend returns the shared Backend every RegisterSubSystem call
// logs through, so a caller can point it at a log file with AddLogFile and
// start it running with Run.
func DefaultBackend() *Backend {
	return defaultBackend
}
