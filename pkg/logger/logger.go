package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	Configure(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
}

// Configure rebuilds the package logger. Development gets a console writer,
// everything else gets JSON on stdout.
func Configure(environment, level string) {
	var w io.Writer = os.Stdout
	if environment == "" || environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if environment == "development" && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}

	log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Logger exposes the underlying zerolog logger for structured fields.
func Logger() *zerolog.Logger {
	return &log
}

func Info(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Error(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Debug(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Warn(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// Err logs err at error level with a message.
func Err(err error, format string, v ...interface{}) {
	log.Error().Err(err).Msgf(format, v...)
}

func WithContext(ctx interface{}, format string, v ...interface{}) string {
	_, file, line, _ := runtime.Caller(1)
	contextStr := fmt.Sprintf("%v:%d", file, line)
	if ctx != nil {
		contextStr = fmt.Sprintf("%v - %v", contextStr, ctx)
	}
	return fmt.Sprintf("[%s] %s", contextStr, fmt.Sprintf(format, v...))
}
