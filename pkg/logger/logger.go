package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создает zap-логгер: JSON в release-режиме, цветной консольный вывод в остальных.
func New(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
