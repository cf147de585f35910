package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrNoSession 历史操作在没有会话ID时本地短路，不发起网络请求
var ErrNoSession = errors.New("no session id")

// NetworkError 连接层失败（DNS解析、连接拒绝等），用户侧提示"无法连接服务器"
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError 服务端返回非2xx状态，StatusText 用于用户侧提示"服务器拒绝请求"
type ServerError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.StatusText)
}

// classifyRequestError 区分传输错误与超时
// 超时不是挂起等待，而是按服务端错误上报，保证调用方总能得到终止信号
func classifyRequestError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &ServerError{
			StatusCode: http.StatusGatewayTimeout,
			StatusText: "request timed out",
		}
	}
	return &NetworkError{Err: err}
}
