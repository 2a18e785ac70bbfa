package transport

import "time"

// Clock 时间源接口, 注入以便测试
type Clock interface {
	// Now 返回当前时间
	Now() time.Time
}

// SystemClock 系统时钟
type SystemClock struct{}

// Now 返回系统当前时间
func (SystemClock) Now() time.Time {
	return time.Now()
}
