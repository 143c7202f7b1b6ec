package log

import (
	"io"
	"sync"
)

const (
	timestampFormat = "02/01/2006 15:04:05"
	spacer          = " | "
)

var (
	logger = Logger{
		Timestamp:   timestampFormat,
		Spacer:      spacer,
		InfoHeader:  "[INFO]",
		WarnHeader:  "[WARN]",
		DebugHeader: "[DEBUG]",
		ErrorHeader: "[ERROR]",
	}

	subLoggers = map[string]*SubLogger{}

	// read/write mutex for logger
	mu = &sync.RWMutex{}
)

// Logger holds the formatting settings applied to every sub logger line
type Logger struct {
	Timestamp   string
	Spacer      string
	InfoHeader  string
	WarnHeader  string
	DebugHeader string
	ErrorHeader string
}

// Levels flags for each sub logger type
type Levels struct {
	Info, Debug, Warn, Error bool
}

// SubLogger scopes log output and levels to an individual subsystem
type SubLogger struct {
	name string
	Levels
	output io.Writer
}

// SubLoggerConfig holds sub logger configuration settings loaded from config
type SubLoggerConfig struct {
	Name   string `json:"name,omitempty"`
	Level  string `json:"level"`
	Output string `json:"output"`
}
