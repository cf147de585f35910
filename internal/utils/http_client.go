package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewHTTPClient 创建带超时的HTTP客户端，问答与历史代理共用同一套连接池参数
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: false,
			},
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
