// Package logging builds the zap loggers used by the command-line tools from
// viper settings under the "logger." prefix:
//
//	logger.level       debug | info | warn | error (default info)
//	logger.stdout      tee file output to stdout as well (default true)
//	logger.dir         directory of the log file; empty disables file output
//	logger.rotation    rotate the file with lumberjack
//	logger.maxsize     megabytes before rotation
//	logger.maxage      days to keep rotated files
//	logger.maxbackups  rotated files to keep
//	logger.localtime   timestamp rotated files in local time
//	logger.compress    gzip rotated files
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrBadLevel indicates an unknown logger.level value.
var ErrBadLevel = errors.New("logging: level must be one of debug, info, warn, error")

// SetDefaults registers the logger defaults on config.
func SetDefaults(config *viper.Viper) {
	config.SetDefault("logger.level", "info")
	config.SetDefault("logger.stdout", true)
	config.SetDefault("logger.dir", "")
	config.SetDefault("logger.rotation", false)
	config.SetDefault("logger.maxsize", 100)
	config.SetDefault("logger.maxage", 7)
	config.SetDefault("logger.maxbackups", 3)
	config.SetDefault("logger.localtime", true)
	config.SetDefault("logger.compress", false)
}

// New builds a JSON logger named name. With logger.dir set, records go to
// <dir>/<name>.log, and to stdout too when logger.stdout is true.
func New(name string, config *viper.Viper) (*zap.Logger, error) {
	return newLogger(name, config, os.Stdout)
}

func newLogger(name string, config *viper.Viper, stdout io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(config.GetString("logger.level"))
	if err != nil {
		return nil, err
	}

	console := zapcore.NewCore(newJSONEncoder(), zapcore.Lock(zapcore.AddSync(stdout)), level)
	dir := config.GetString("logger.dir")
	if dir == "" {
		return build(console).Named(name), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log directory: %w", err)
	}
	file := filepath.Join(dir, name+".log")

	var sink zapcore.WriteSyncer
	if config.GetBool("logger.rotation") {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    config.GetInt("logger.maxsize"),
			MaxAge:     config.GetInt("logger.maxage"),
			MaxBackups: config.GetInt("logger.maxbackups"),
			LocalTime:  config.GetBool("logger.localtime"),
			Compress:   config.GetBool("logger.compress"),
		})
	} else {
		output, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		sink = zapcore.Lock(output)
	}
	fileCore := zapcore.NewCore(newJSONEncoder(), sink, level)

	if config.GetBool("logger.stdout") {
		return build(zapcore.NewTee(console, fileCore)).Named(name), nil
	}

	return build(fileCore).Named(name), nil
}

// ParseLevel maps a case-insensitive level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}

	return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrBadLevel, level)
}

func build(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller())
}

func newJSONEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
}
