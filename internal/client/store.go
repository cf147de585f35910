package client

import (
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

// historyRecord 会话存储返回的单条记录（注意 turnId 字段名）
type historyRecord struct {
	TurnID     string            `json:"turnId"`
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	Timestamp  time.Time         `json:"timestamp"`
	References []model.Reference `json:"references"`
}

type historyEnvelope struct {
	History []historyRecord `json:"history"`
}

// StoreClient 外部会话存储客户端，仅做网络透传与字段映射
type StoreClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewStoreClient(baseURL string, timeout time.Duration) *StoreClient {
	return &StoreClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: utils.NewHTTPClient(timeout),
	}
}

func (c *StoreClient) sessionURL(sessionID string) string {
	return c.baseURL + "/api/v1/chatbot/session/" + sessionID
}

// FetchHistory 拉取会话历史并转换为本地 Turn 表示
// sessionID 为空时返回 ErrNoSession，不发起网络请求
func (c *StoreClient) FetchHistory(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionURL(sessionID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
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

	var envelope historyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}

	turns := make([]model.Turn, len(envelope.History))
	for i, record := range envelope.History {
		references := record.References
		if references == nil {
			references = []model.Reference{}
		}
		turns[i] = model.Turn{
			ID:         record.TurnID,
			Role:       record.Role,
			Content:    record.Content,
			Timestamp:  record.Timestamp,
			References: references,
		}
	}

	return turns, nil
}

// ClearHistory 请求存储端清空会话，2xx 即成功，响应体忽略
func (c *StoreClient) ClearHistory(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sessionURL(sessionID)+"/clear", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &ServerError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	return nil
}
