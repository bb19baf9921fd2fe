package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger. When LOGS_DIRECTORY is set the
// output goes to a rotated file in that directory; otherwise it goes to
// stdout.
func NewLogger() *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	sink := zapcore.AddSync(os.Stdout)
	if dir := os.Getenv("LOGS_DIRECTORY"); dir != "" {
		runTimestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   fmt.Sprintf("%s/lifecycle-service-%s.log", dir, runTimestamp),
			MaxSize:    100, // MB before it rolls
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	core := zapcore.NewCore(encoder, sink, zap.InfoLevel)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
