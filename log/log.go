// Package log wraps zerolog behind package-level functions so the
// facades and the hosting lambda share one logger. Verbosity comes from
// the environment variable LOG_LEVEL, one of DEBUG, INFO, WARNING,
// ERROR or CRITICAL (case-insensitive). The default is INFO.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/finch-technologies/lambda-utils/env"
	"github.com/rs/zerolog"
)

var logger = newLogger()

func newLogger() zerolog.Logger {
	var w io.Writer = os.Stdout
	if env.IsLocal() {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	level := parseLevel(os.Getenv("LOG_LEVEL"))

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "CRITICAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func GetLogger() *zerolog.Logger {
	return &logger
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(s string, v ...any) {
	logger.Debug().Msg(fmt.Sprintf(s, v...))
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(s string, v ...any) {
	logger.Info().Msg(fmt.Sprintf(s, v...))
}

func Warning(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warningf(s string, v ...any) {
	logger.Warn().Msg(fmt.Sprintf(s, v...))
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(s string, v ...any) {
	logger.Error().Msg(fmt.Sprintf(s, v...))
}
