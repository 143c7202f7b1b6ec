package log

import (
	"errors"
	"fmt"
	"time"
)

var (
	errEmptySubLoggerName         = errors.New("empty sub logger name")
	errSubLoggerAlreadyRegistered = errors.New("sub logger already registered")
	errSubLoggerNotFound          = errors.New("sub logger not found")
	errSubLoggerConfigIsNil       = errors.New("sub logger config is nil")
	errUnhandledOutputWriter      = errors.New("unhandled output writer")
)

// Info takes a pointer subLogger struct and string, then logs at info level
func Info(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Info {
		return
	}
	sl.write(logger.InfoHeader, data)
}

// Infoln takes a pointer subLogger struct and interface, then logs at info level
func Infoln(sl *SubLogger, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Info {
		return
	}
	sl.write(logger.InfoHeader, fmt.Sprint(v...))
}

// Infof takes a pointer subLogger struct, string and interface formats, then
// logs at info level
func Infof(sl *SubLogger, data string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Info {
		return
	}
	sl.write(logger.InfoHeader, fmt.Sprintf(data, v...))
}

// Debug takes a pointer subLogger struct and string, then logs at debug level
func Debug(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Debug {
		return
	}
	sl.write(logger.DebugHeader, data)
}

// Debugln takes a pointer subLogger struct and interface, then logs at debug level
func Debugln(sl *SubLogger, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Debug {
		return
	}
	sl.write(logger.DebugHeader, fmt.Sprint(v...))
}

// Debugf takes a pointer subLogger struct, string and interface formats, then
// logs at debug level
func Debugf(sl *SubLogger, data string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Debug {
		return
	}
	sl.write(logger.DebugHeader, fmt.Sprintf(data, v...))
}

// Warn takes a pointer subLogger struct and string, then logs at warn level
func Warn(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Warn {
		return
	}
	sl.write(logger.WarnHeader, data)
}

// Warnln takes a pointer subLogger struct and interface, then logs at warn level
func Warnln(sl *SubLogger, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Warn {
		return
	}
	sl.write(logger.WarnHeader, fmt.Sprint(v...))
}

// Warnf takes a pointer subLogger struct, string and interface formats, then
// logs at warn level
func Warnf(sl *SubLogger, data string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Warn {
		return
	}
	sl.write(logger.WarnHeader, fmt.Sprintf(data, v...))
}

// Error takes a pointer subLogger struct and string, then logs at error level
func Error(sl *SubLogger, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Error {
		return
	}
	sl.write(logger.ErrorHeader, data)
}

// Errorln takes a pointer subLogger struct and interface, then logs at error level
func Errorln(sl *SubLogger, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Error {
		return
	}
	sl.write(logger.ErrorHeader, fmt.Sprint(v...))
}

// Errorf takes a pointer subLogger struct, string and interface formats, then
// logs at error level
func Errorf(sl *SubLogger, data string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil || !sl.Error {
		return
	}
	sl.write(logger.ErrorHeader, fmt.Sprintf(data, v...))
}

// write emits a single formatted line to the sub logger output. Callers hold
// at least a read lock on mu.
func (sl *SubLogger) write(header, data string) {
	if hook := getCustomLogHook(); hook != nil {
		if hook(header, sl.name, data) {
			return
		}
	}
	if sl.output == nil {
		return
	}
	fmt.Fprintf(sl.output, "%s%s%s%s%s%s%s\n",
		time.Now().Format(logger.Timestamp),
		logger.Spacer,
		sl.name,
		logger.Spacer,
		header,
		logger.Spacer,
		data)
}
