package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Process-wide leveled logger of the inventory service. Before InitWithConfig
// runs, messages go to stdout at INFO; after it they also go to a rotated
// file. The level is fixed for the lifetime of the process.

// LogLevel orders message severities for filtering.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// ParseLogLevel maps a LOG_LEVEL value to its level. Unknown values fall
// back to INFO.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

type journal struct {
	out   *log.Logger
	level LogLevel
}

var (
	mu     sync.RWMutex
	global = &journal{
		out:   log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile),
		level: INFO,
	}
)

// InitWithConfig routes the logger to stdout plus a lumberjack-rotated file.
// Called once at startup, after the configuration is loaded.
func InitWithConfig(logPath string, level LogLevel, maxSize, maxBackups, maxAge int, compress bool) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		log.Fatalf("création du répertoire de logs : %v", err)
	}

	sortie := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})

	mu.Lock()
	global = &journal{
		out:   log.New(sortie, "", log.LstdFlags|log.Lshortfile),
		level: level,
	}
	mu.Unlock()
}

func courant() *journal {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func (j *journal) logf(level LogLevel, tag, format string, v ...interface{}) {
	if level < j.level {
		return
	}
	j.out.Output(3, tag+" "+fmt.Sprintf(format, v...))
}

// Debugf logs a formatted debug-level message.
func Debugf(format string, v ...interface{}) {
	courant().logf(DEBUG, "[DEBUG]", format, v...)
}

// Infof logs a formatted info-level message.
func Infof(format string, v ...interface{}) {
	courant().logf(INFO, "[INFO]", format, v...)
}

// Warnf logs a formatted warning-level message.
func Warnf(format string, v ...interface{}) {
	courant().logf(WARN, "[WARN]", format, v...)
}

// Errorf logs a formatted error-level message.
func Errorf(format string, v ...interface{}) {
	courant().logf(ERROR, "[ERROR]", format, v...)
}
