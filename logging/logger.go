package logging

// Logger is the structured logger used across the operator. Tags are
// key-value pairs, e.g. logger.Info("task responded", "index", 3).
type Logger interface {
	Debug(msg string, tags ...any)
	Info(msg string, tags ...any)
	Warn(msg string, tags ...any)
	Error(msg string, tags ...any)
	Fatal(msg string, tags ...any)

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	With(tags ...any) Logger
}

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

var _ Logger = (*NopLogger)(nil)

func NewNopLogger() Logger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(msg string, tags ...any)               {}
func (n *NopLogger) Info(msg string, tags ...any)                {}
func (n *NopLogger) Warn(msg string, tags ...any)                {}
func (n *NopLogger) Error(msg string, tags ...any)               {}
func (n *NopLogger) Fatal(msg string, tags ...any)               {}
func (n *NopLogger) Debugf(template string, args ...interface{}) {}
func (n *NopLogger) Infof(template string, args ...interface{})  {}
func (n *NopLogger) Warnf(template string, args ...interface{})  {}
func (n *NopLogger) Errorf(template string, args ...interface{}) {}
func (n *NopLogger) Fatalf(template string, args ...interface{}) {}
func (n *NopLogger) With(tags ...any) Logger                     { return n }
