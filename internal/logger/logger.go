// Package logger builds the zap logger shared by the SDK components and the
// dev gateway. Components receiving a nil logger fall back to zap.NewNop, so
// this factory is only called from process entry points.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger tuned to the configured environment. The env
// values are the ones config.Validate accepts: development and test get the
// human-readable console encoder, staging and production get JSON.
func NewLogger(env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" || env == "test" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return cfg.Build()
}
