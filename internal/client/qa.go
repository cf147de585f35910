package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"textbook-chat-backend/internal/model"
	"textbook-chat-backend/internal/utils"
)

// QueryRequest 发往问答后端 POST {base}/query 的请求体
// 常规模式只带 query 和 session_id；selected_text 模式改带 mode 与 context_ids
type QueryRequest struct {
	Query      string   `json:"query"`
	SessionID  string   `json:"session_id,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	ContextIDs []string `json:"context_ids,omitempty"`
}

// QueryResponse 问答后端的应答，references 与 citations 均可能缺失
type QueryResponse struct {
	Answer     string            `json:"answer"`
	References []model.Reference `json:"references"`
	SessionID  string            `json:"session_id"`
	Citations  []string          `json:"citations"`
}

// QAClient 问答后端客户端，后端是不透明的外部协作方
type QAClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewQAClient(baseURL string, timeout time.Duration) *QAClient {
	return &QAClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: utils.NewHTTPClient(timeout),
	}
}

// Query 发起一次问答交换
// 每次调用都绑定超时上下文，超时与非2xx一律转为可区分的错误类型
func (c *QAClient) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyRequestError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	var queryResp QueryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// references 缺失时按空列表处理
	if queryResp.References == nil {
		queryResp.References = []model.Reference{}
	}

	return &queryResp, nil
}
