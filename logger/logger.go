package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once  sync.Once
	sugar *zap.SugaredLogger
)

// L returns the process-wide sugared logger, building it on first use.
// APP_ENV=production switches to JSON output at info level; anything else
// gets console output at debug level.
func L() *zap.SugaredLogger {
	once.Do(func() {
		env := os.Getenv("APP_ENV")

		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			MessageKey:     "message",
			CallerKey:      "caller",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		var encoder zapcore.Encoder
		level := zap.DebugLevel
		if env == "production" {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
			level = zap.InfoLevel
		} else {
			encoder = zapcore.NewConsoleEncoder(encoderConfig)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))
		sugar = zap.New(core, zap.AddCaller()).Sugar().With("service", "team-server")
	})
	return sugar
}
