package transport

import (
	"errors"
	"fmt"
)

// ErrNotInitialized 在 Initialize 之前调用需要客户端的操作
var ErrNotInitialized = errors.New("transport: server manager not initialized")

// AuthenticationError 登录失败错误
type AuthenticationError struct {
	URL string
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %v", e.URL, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// TransportError 远程 API 调用失败错误
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s for %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
