package service

import (
	"context"
	"errors"

	"textbook-chat-backend/internal/client"
	"textbook-chat-backend/internal/model"
	"textbook-chat-backend/internal/storage"
	"textbook-chat-backend/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrNotConfirmed 用户未确认清空操作，本地状态与服务端均不变
var ErrNotConfirmed = errors.New("clear history not confirmed")

// ClearConfirmPrompt 清空前的确认提示
const ClearConfirmPrompt = "Are you sure you want to clear the conversation history?"

// HistoryClient 会话存储调用接口
type HistoryClient interface {
	FetchHistory(ctx context.Context, sessionID string) ([]model.Turn, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

// Confirmer 清空历史前的确认回调
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc 函数适配器
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// HistoryService 历史面板的读写代理，与问答交换互不串行
// 正在发送中执行清空时，在途消息要等交换结束后本地追加才可见
type HistoryService struct {
	store   storage.SessionStore
	history HistoryClient
	log     *logrus.Entry
}

func NewHistoryService(store storage.SessionStore, history HistoryClient) *HistoryService {
	return &HistoryService{
		store:   store,
		history: history,
		log:     logger.WithComponent("history_service"),
	}
}

// Fetch 拉取服务端历史
// 尚无会话ID时本地短路返回空列表，不发起网络请求
func (h *HistoryService) Fetch(ctx context.Context) ([]model.Turn, error) {
	turns, err := h.history.FetchHistory(ctx, h.store.SessionID())
	if err != nil {
		if errors.Is(err, client.ErrNoSession) {
			return []model.Turn{}, nil
		}
		return nil, err
	}
	return turns, nil
}

// Clear 清空会话历史
// 必须先经 Confirmer 确认；服务端清空成功才清空本地消息，失败时本地状态不变；
// 服务端分配的会话ID始终保留
func (h *HistoryService) Clear(ctx context.Context, confirmer Confirmer) error {
	if confirmer == nil || !confirmer.Confirm(ClearConfirmPrompt) {
		return ErrNotConfirmed
	}

	sessionID := h.store.SessionID()
	if sessionID == "" {
		return client.ErrNoSession
	}

	if err := h.history.ClearHistory(ctx, sessionID); err != nil {
		h.log.Warnf("clear history failed: %v", err)
		return err
	}

	h.store.Clear()
	return nil
}

// GuidanceFor 将客户端错误映射为历史面板的提示文本
// 连接失败与服务端拒绝分别给出不同的用户指引
func GuidanceFor(err error) string {
	var netErr *client.NetworkError
	var srvErr *client.ServerError

	switch {
	case errors.As(err, &netErr):
		return "Network error: Unable to connect to the server. Please check if the backend is running."
	case errors.As(err, &srvErr):
		return "The server rejected the request: " + srvErr.StatusText
	default:
		return "Failed to load conversation history"
	}
}
