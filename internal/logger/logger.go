package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志输出配置
type Options struct {
	Dir        string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// Console 非 debug 模式下同时输出到标准输出
	Console bool
}

var (
	current atomic.Pointer[zap.Logger]
	stdout  = newStdoutLogger(zapcore.InfoLevel)
)

// Init 按运行模式初始化全局日志
func Init(mode string, options Options) *zap.Logger {
	l := New(mode, options)
	current.Store(l)
	zap.ReplaceGlobals(l)
	return l
}

// New 创建日志实例：debug 输出到控制台，其余模式写入滚动文件
func New(mode string, options Options) *zap.Logger {
	if normalizeMode(mode) == "debug" {
		return newStdoutLogger(zapcore.DebugLevel)
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	file, err := openRotatingFile(options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v, writing to stdout\n", err)
		return build(zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.Lock(os.Stdout), level))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), file, level)
	if options.Console {
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), level))
	}
	return build(core)
}

// Replace 临时替换全局日志，返回恢复函数
func Replace(l *zap.Logger) func() {
	prev := current.Swap(l)
	return func() { current.Store(prev) }
}

// Z 返回当前日志实例，未初始化时退回标准输出
func Z() *zap.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return stdout
}

// S 返回 SugaredLogger
func S() *zap.SugaredLogger { return Z().Sugar() }

// SW 返回附带字段的 SugaredLogger
func SW(kv ...interface{}) *zap.SugaredLogger {
	if len(kv) == 0 {
		return S()
	}
	return S().With(kv...)
}

// Named 返回带模块名的 SugaredLogger
func Named(module string) *zap.SugaredLogger {
	return S().Named(strings.TrimSpace(module))
}

// StdLogger 给只接受标准库 log 的组件使用
func StdLogger() *log.Logger {
	return zap.NewStdLog(Z())
}

func Debugw(message string, kv ...interface{}) { S().Debugw(message, kv...) }

func Infow(message string, kv ...interface{}) { S().Infow(message, kv...) }

func Warnw(message string, kv ...interface{}) { S().Warnw(message, kv...) }

func Errorw(message string, kv ...interface{}) { S().Errorw(message, kv...) }

func normalizeMode(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func newStdoutLogger(level zapcore.Level) *zap.Logger {
	return build(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), level))
}

func build(core zapcore.Core) *zap.Logger {
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}
