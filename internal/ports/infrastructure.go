package ports

import "time"

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// UpstreamMetrics defines the contract for recording upstream call outcomes
type UpstreamMetrics interface {
	RecordUpstreamCall(provider, operation string, statusCode int, duration time.Duration)
}
