package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. Development gets a human-readable
// console logger on stdout; anything else logs JSON to a rotated file.
func New(env string) *zap.Logger {
	if env == "development" {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zapcore.AddSync(os.Stdout),
			zap.DebugLevel,
		)
		return zap.New(core, zap.AddCaller())
	}

	logWriter := &lumberjack.Logger{
		Filename:   "/var/log/hr-system.log",
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zap.InfoLevel,
	)
	return zap.New(core, zap.AddCaller())
}
