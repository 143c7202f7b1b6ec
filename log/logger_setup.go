package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func registerNewSubLogger(subLogger string) *SubLogger {
	temp := SubLogger{
		name:   strings.ToUpper(subLogger),
		output: os.Stdout,
	}

	temp.Levels = splitLevel("INFO|WARN|DEBUG|ERROR")
	subLoggers[temp.name] = &temp
	return &temp
}

// NewSubLogger allows external packages to create a sub logger for scoping
// their own log output. The name must not collide with a registered one.
func NewSubLogger(name string) (*SubLogger, error) {
	if name == "" {
		return nil, errEmptySubLoggerName
	}
	name = strings.ToUpper(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := subLoggers[name]; ok {
		return nil, fmt.Errorf("%w: %s", errSubLoggerAlreadyRegistered, name)
	}
	temp := SubLogger{name: name, output: os.Stdout}
	temp.Levels = splitLevel("INFO|WARN|DEBUG|ERROR")
	subLoggers[name] = &temp
	return &temp, nil
}

// SetLevel sets the level string which can contain any combination of
// INFO|WARN|DEBUG|ERROR delimited by pipes
func (sl *SubLogger) SetLevel(level string) {
	mu.Lock()
	sl.Levels = splitLevel(level)
	mu.Unlock()
}

// SetOutput diverts the sub logger to the supplied writer
func (sl *SubLogger) SetOutput(o io.Writer) {
	mu.Lock()
	sl.output = o
	mu.Unlock()
}

// GetWriters returns a writer set resolved from an output configuration
// string; multiple targets are delimited by pipes
func GetWriters(s *SubLoggerConfig) (io.Writer, error) {
	if s == nil {
		return nil, errSubLoggerConfigIsNil
	}
	mw := &multiWriter{}
	outputWriters := strings.Split(s.Output, "|")
	for x := range outputWriters {
		var writer io.Writer
		switch strings.ToLower(outputWriters[x]) {
		case "stdout", "console", "":
			writer = os.Stdout
		case "stderr":
			writer = os.Stderr
		default:
			return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, outputWriters[x])
		}
		if err := mw.Add(writer); err != nil {
			return nil, err
		}
	}
	return mw, nil
}

// SetupSubLoggers configure all sub loggers with provided configuration values
func SetupSubLoggers(s []SubLoggerConfig) error {
	for x := range s {
		output, err := GetWriters(&s[x])
		if err != nil {
			return err
		}
		err = configureSubLogger(strings.ToUpper(s[x].Name), s[x].Level, output)
		if err != nil {
			return err
		}
	}
	return nil
}

func configureSubLogger(subLogger, levels string, output io.Writer) error {
	mu.Lock()
	defer mu.Unlock()
	logPtr, found := subLoggers[subLogger]
	if !found {
		return fmt.Errorf("%w: %s", errSubLoggerNotFound, subLogger)
	}
	logPtr.output = output
	logPtr.Levels = splitLevel(levels)
	return nil
}

func splitLevel(level string) (l Levels) {
	enabledLevels := strings.Split(level, "|")
	for x := range enabledLevels {
		switch level := enabledLevels[x]; level {
		case "DEBUG":
			l.Debug = true
		case "INFO":
			l.Info = true
		case "WARN":
			l.Warn = true
		case "ERROR":
			l.Error = true
		}
	}
	return
}
