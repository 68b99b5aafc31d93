package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"Stronghold/internal/shared/serverconfig"
)

var logger *zap.Logger = zap.NewNop()

func Init(appName string, cfg serverconfig.LogConfig) error {
	// 1) 解析日志级别：默认是 info
	//    cfg.Level 支持 "debug/info/warn/error/..."（大小写不敏感）
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		// 解析失败则回退到 info
		lvl = zapcore.InfoLevel
	}
	// 使用 AtomicLevel 方便未来动态调整日志级别（例如热更新）
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	// 2) console 和 file 共用的编码器配置（字段名、时间格式、caller 等）
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// 3) 控制台编码器：彩色级别，便于人读
	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)

	// 4) 文件编码器：JSON 结构化输出，不带颜色
	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	jsonEncoder := zapcore.NewJSONEncoder(fileCfg)

	// 5) 文件输出（带切割）：使用 lumberjack；未配置路径则只输出到控制台
	var fileWriter io.Writer
	if cfg.FileDir != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
	} else {
		fileWriter = io.Discard
	}

	// 6) 组合输出目的地：控制台 + 文件
	consoleSyncer := zapcore.Lock(os.Stderr)
	fileSyncer := zapcore.AddSync(fileWriter)
	multiSyncer := zapcore.NewMultiWriteSyncer(consoleSyncer, fileSyncer)

	// 7) 构建 core：写文件时用 Tee 分两路，避免把 ANSI 颜色写进日志文件
	core := zapcore.NewCore(consoleEncoder, multiSyncer, atomicLevel)
	if cfg.FileDir != "" {
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel),
			zapcore.NewCore(jsonEncoder, fileSyncer, atomicLevel),
		)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	l := zap.New(core, opts...).Named(appName)

	if l != nil {
		_ = l.Sync()
	}
	logger = l
	return nil
}

// Logger 返回底层 zap logger（未 Init 时为 no-op logger）。
func Logger() *zap.Logger {
	return logger
}

// 常用日志级别的辅助函数（便捷封装）。
// 当 logger 还没初始化时，这些函数什么都不做，避免空指针 panic。

func Debug(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Debug(msg, fields...)
	}
}

func Info(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func Warn(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

func Error(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Error(msg, fields...)
	}
}

func DPanic(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.DPanic(msg, fields...)
	}
}

func Panic(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Panic(msg, fields...)
	}
}

func Fatal(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Fatal(msg, fields...)
	}
}
