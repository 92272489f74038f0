// Package logging はzapロガーの生成を行う
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger ログレベル文字列に応じたロガーを生成する
// "debug" の場合のみデバッグレベルを有効にする
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level == "debug" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
