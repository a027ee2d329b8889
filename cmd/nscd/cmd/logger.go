package cmd

import (
	"io"

	"cosmossdk.io/log"
	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFormatLogfmt = "logfmt"
	LogFormatJSON   = "json"
)

// zapLogger adapts a sugared zap logger to log.Logger so the app and its
// keepers log through the CLI encoder.
type zapLogger struct {
	s *zap.SugaredLogger
}

var _ log.Logger = zapLogger{}

// NewLogger returns a logger writing to w at level in the given format.
func NewLogger(w io.Writer, level, format string) (log.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var enc zapcore.Encoder
	switch format {
	case LogFormatLogfmt:
		enc = zaplogfmt.NewEncoder(encCfg)
	case LogFormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, errors.Errorf("unknown log format %q, expected %s or %s", format, LogFormatLogfmt, LogFormatJSON)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zapLogger{s: zap.New(core).Sugar()}, nil
}

func (l zapLogger) Info(msg string, keyVals ...any)  { l.s.Infow(msg, keyVals...) }
func (l zapLogger) Warn(msg string, keyVals ...any)  { l.s.Warnw(msg, keyVals...) }
func (l zapLogger) Error(msg string, keyVals ...any) { l.s.Errorw(msg, keyVals...) }
func (l zapLogger) Debug(msg string, keyVals ...any) { l.s.Debugw(msg, keyVals...) }

func (l zapLogger) With(keyVals ...any) log.Logger {
	return zapLogger{s: l.s.With(keyVals...)}
}

// Impl returns the underlying *zap.Logger.
func (l zapLogger) Impl() any {
	return l.s.Desugar()
}
