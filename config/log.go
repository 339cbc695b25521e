package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NewLogger creates a production zap logger with the configured level
func NewLogger(conf LogConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	err := level.UnmarshalText([]byte(conf.Level))
	if err != nil {
		panic(err)
	}

	zapConf := zap.NewProductionConfig()
	zapConf.Level = level
	zapConf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
