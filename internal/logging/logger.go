// File: internal/logging/logger.go
// Brief: Internal logging package implementation for 'logger construction'.

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap-backed logger writing to w at the given level. Debug
// switches to the human-oriented console encoder; other levels emit JSON lines.
func New(w io.Writer, level string) (logr.Logger, error) {
	zapLevel, development, err := ParseLevel(level)
	if err != nil {
		return logr.Logger{}, err
	}
	var encoder zapcore.Encoder
	if development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	atomic := zap.NewAtomicLevelAt(zapLevel)
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), atomic)
	return zapr.NewLogger(zap.New(core)), nil
}

// ParseLevel maps a --log-level value onto a zap level.
func ParseLevel(level string) (zapcore.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, true, nil
	case "info", "":
		return zapcore.InfoLevel, false, nil
	case "warn", "warning":
		return zapcore.WarnLevel, false, nil
	case "error":
		return zapcore.ErrorLevel, false, nil
	default:
		return zapcore.InfoLevel, false, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
}
