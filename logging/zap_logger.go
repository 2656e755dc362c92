package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorWhite   = "\033[37m"
)

type LogLevel string

const (
	Development LogLevel = "development" // prints debug and above
	Production  LogLevel = "production"  // prints info and above, JSON encoded
)

// ProcessName names the logger of each entry point
type ProcessName string

const (
	OperatorProcess      ProcessName = "operator"
	TaskGeneratorProcess ProcessName = "taskgen"
)

type LoggerConfig struct {
	ProcessName ProcessName
	Environment LogLevel
	UseColors   bool
}

func NewDefaultConfig(processName ProcessName) LoggerConfig {
	return LoggerConfig{
		ProcessName: processName,
		Environment: Development,
		UseColors:   true,
	}
}

// ParseLogLevel accepts "development"/"dev" and "production"/"prod".
// An empty string means Development.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

type ZapLogger struct {
	logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger creates a new logger wrapping a zap.Logger. Everything goes to
// stdout, errors from zap itself to stderr.
func NewZapLogger(cfg LoggerConfig) (Logger, error) {
	var config zap.Config

	switch cfg.Environment {
	case Production:
		config = zap.NewProductionConfig()
	case Development, "":
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		if cfg.UseColors {
			config.EncoderConfig.EncodeLevel = customColorLevelEncoder
		}
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.Environment)
	}
	config.Level = zap.NewAtomicLevelAt(getLogLevel(cfg.Environment != Production))
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	if cfg.ProcessName != "" {
		logger = logger.Named(string(cfg.ProcessName))
	}
	return &ZapLogger{logger: logger}, nil
}

// NewZapLoggerFromCore wraps an existing core, e.g. an observer core in tests.
func NewZapLoggerFromCore(core zapcore.Core) Logger {
	return &ZapLogger{logger: zap.New(core)}
}

func getLogLevel(isDevelopment bool) zapcore.Level {
	if isDevelopment {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func customColorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var color, text string
	switch level {
	case zapcore.DebugLevel:
		color, text = colorBlue, "DBG"
	case zapcore.InfoLevel:
		color, text = colorGreen, "INF"
	case zapcore.WarnLevel:
		color, text = colorYellow, "WRN"
	case zapcore.ErrorLevel:
		color, text = colorRed, "ERR"
	case zapcore.FatalLevel, zapcore.PanicLevel, zapcore.DPanicLevel:
		color, text = colorMagenta, "FTL"
	default:
		color, text = colorWhite, "???"
	}
	enc.AppendString(color + text + colorReset)
}

func (z *ZapLogger) Debug(msg string, tags ...any) {
	z.logger.Sugar().Debugw(msg, tags...)
}

func (z *ZapLogger) Info(msg string, tags ...any) {
	z.logger.Sugar().Infow(msg, tags...)
}

func (z *ZapLogger) Warn(msg string, tags ...any) {
	z.logger.Sugar().Warnw(msg, tags...)
}

func (z *ZapLogger) Error(msg string, tags ...any) {
	z.logger.Sugar().Errorw(msg, tags...)
}

func (z *ZapLogger) Fatal(msg string, tags ...any) {
	z.logger.Sugar().Fatalw(msg, tags...)
}

func (z *ZapLogger) Debugf(template string, args ...interface{}) {
	z.logger.Sugar().Debugf(template, args...)
}

func (z *ZapLogger) Infof(template string, args ...interface{}) {
	z.logger.Sugar().Infof(template, args...)
}

func (z *ZapLogger) Warnf(template string, args ...interface{}) {
	z.logger.Sugar().Warnf(template, args...)
}

func (z *ZapLogger) Errorf(template string, args ...interface{}) {
	z.logger.Sugar().Errorf(template, args...)
}

func (z *ZapLogger) Fatalf(template string, args ...interface{}) {
	z.logger.Sugar().Fatalf(template, args...)
}

func (z *ZapLogger) With(tags ...any) Logger {
	return &ZapLogger{
		logger: z.logger.Sugar().With(tags...).Desugar(),
	}
}

// Sync flushes buffered entries. Errors syncing stdout are expected and ignored.
func (z *ZapLogger) Sync() {
	_ = z.logger.Sync()
}
