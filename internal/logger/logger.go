package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 创建一个新的日志记录器
func NewLogger(debug bool) *zap.Logger {
	return NewLoggerWithVerbose(debug, false)
}

// NewLoggerWithVerbose 创建日志记录器，verbose 模式下使用控制台编码器
func NewLoggerWithVerbose(debug, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	return build(level, verbose)
}

// NewCLILogger 创建命令行使用的日志记录器。
// 控制台已有状态输出，默认只记录警告和错误；verbose 记录 Info，debug 记录 Debug。
func NewCLILogger(debug, verbose bool) *zap.Logger {
	level := zap.WarnLevel
	switch {
	case debug:
		level = zap.DebugLevel
	case verbose:
		level = zap.InfoLevel
	}
	return build(level, verbose)
}

func build(level zapcore.Level, verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeCaller = nil
	}

	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		panic("初始化日志系统失败: " + err.Error())
	}

	return logger
}

// WithRun 为一次迁移运行附加唯一的 run_id 字段
func WithRun(log *zap.Logger, command string) (*zap.Logger, string) {
	runID := uuid.New().String()
	return log.With(zap.String("run_id", runID), zap.String("command", command)), runID
}
