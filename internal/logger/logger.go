package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
)

var (
	// Logger is the global logger; nil until Init or UseWriter
	Logger *log.Logger

	file *lumberjack.Logger
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Dir is the directory holding the store; logs go to Dir/logs
	Dir string
	// Stderr mirrors log lines in debug mode; nil means os.Stderr
	Stderr io.Writer
}

// Path returns the log file used for a store directory
func Path(dir string) string {
	return filepath.Join(dir, "logs", constants.AppName+".log")
}

// Init points the global logger at a rotating file next to the store.
// Only warnings and errors are kept unless Debug is set.
func Init(cfg Config) error {
	path := Path(cfg.Dir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	Close()
	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     90, // days
		Compress:   true,
	}

	var w io.Writer = file
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		w = io.MultiWriter(stderr, file)
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	return nil
}

// Close releases the log file. Logging after Close reopens it.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// UseWriter points the global logger at w. Tests use it to capture output.
func UseWriter(w io.Writer, level log.Level) {
	Close()
	Logger = log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: constants.AppName,
	})
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
