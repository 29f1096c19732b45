package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// RequestIDKey 请求追踪ID在gin上下文中的键
const RequestIDKey = "requestId"
