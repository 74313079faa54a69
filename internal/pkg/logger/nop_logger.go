package logger

// NopLogger 什么都不输出，测试里用
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(string, ...Field) {}

func (n *NopLogger) Info(string, ...Field) {}

func (n *NopLogger) Warn(string, ...Field) {}

func (n *NopLogger) Error(string, ...Field) {}

func (n *NopLogger) With(...Field) Logger {
	return n
}
