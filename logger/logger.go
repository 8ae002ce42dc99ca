package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log receives diagnostics from the simulation. It discards everything
// until Init or Set is called.
var Log = zap.NewNop().Sugar()

// Init sends logs to a rolling file at filePath, or to stderr when filePath
// is empty. debug lowers the level so per-spawn placement lines are kept.
func Init(filePath string, debug bool) error {
	var ws zapcore.WriteSyncer
	if filePath == "" {
		ws = zapcore.Lock(os.Stderr)
	} else {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	Set(zap.New(core, zap.AddCaller()))
	return nil
}

// Set replaces the sink. A nil logger restores the no-op sink.
func Set(l *zap.Logger) {
	if l == nil {
		Log = zap.NewNop().Sugar()
		return
	}
	Log = l.Sugar()
}

// Sync flushes buffered entries
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
