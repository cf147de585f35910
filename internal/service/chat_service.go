package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"textbook-chat-backend/internal/client"
	"textbook-chat-backend/internal/model"
	"textbook-chat-backend/internal/storage"
	"textbook-chat-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrorTurnContent 问答交换失败时追加的固定助手消息，原始错误不透出给用户
const ErrorTurnContent = "Sorry, I encountered an error processing your request. Please try again."

// NearBottomThreshold 距底部多少像素内视为"仍在底部"，在阈值内新消息会触发自动滚动
const NearBottomThreshold = 100

// QueryClient 问答后端调用接口，测试时注入假实现
type QueryClient interface {
	Query(ctx context.Context, req client.QueryRequest) (*client.QueryResponse, error)
}

// SubmitOptions selected_text 模式下附带的查询参数
type SubmitOptions struct {
	Mode       string
	ContextIDs []string
}

// ChatService 会话控制器
// 持有本地消息列表与展示状态；同一时刻最多一次问答交换在途（loading 守卫），
// 消息严格按调用顺序追加，用户消息总是先于对应的助手消息
type ChatService struct {
	store storage.SessionStore
	qa    QueryClient

	mu          sync.Mutex
	loading     bool
	showHistory bool
	scrolledUp  bool

	log *logrus.Entry
}

func NewChatService(store storage.SessionStore, qa QueryClient) *ChatService {
	return &ChatService{
		store: store,
		qa:    qa,
		log:   logger.WithComponent("chat_service"),
	}
}

// Submit 提交一次用户问题，等价于 SubmitWithOptions 的常规模式
func (s *ChatService) Submit(ctx context.Context, text string) (*model.Turn, *model.Turn, bool) {
	return s.SubmitWithOptions(ctx, text, SubmitOptions{})
}

// SubmitWithOptions 执行一次完整的问答交换
// 空白输入或已有请求在途时静默跳过（返回 false）；
// 用户消息在网络调用发起前同步追加；失败时追加固定错误消息；
// 无论哪条退出路径，结束时都清除 loading
func (s *ChatService) SubmitWithOptions(ctx context.Context, text string, opts SubmitOptions) (*model.Turn, *model.Turn, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, false
	}

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil, nil, false
	}
	s.loading = true
	// 新提交后视图重新吸附底部
	s.scrolledUp = false
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	userTurn := model.Turn{
		ID:        uuid.New().String(),
		Role:      model.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	}
	s.store.AppendTurn(userTurn)

	resp, err := s.qa.Query(ctx, client.QueryRequest{
		Query:      text,
		SessionID:  s.store.SessionID(),
		Mode:       opts.Mode,
		ContextIDs: opts.ContextIDs,
	})

	var assistantTurn model.Turn
	if err != nil {
		s.log.Warnf("query failed: %v", err)
		assistantTurn = model.Turn{
			ID:        uuid.New().String(),
			Role:      model.RoleAssistant,
			Content:   ErrorTurnContent,
			Timestamp: time.Now(),
		}
	} else {
		assistantTurn = model.Turn{
			ID:         uuid.New().String(),
			Role:       model.RoleAssistant,
			Content:    resp.Answer,
			Timestamp:  time.Now(),
			References: resp.References,
		}
		// 后端首次应答分配的会话ID，此后整个UI会话期间不变
		if resp.SessionID != "" && s.store.AdoptSessionID(resp.SessionID) {
			s.log.Infof("adopted session id %s", resp.SessionID)
		}
	}
	s.store.AppendTurn(assistantTurn)

	return &userTurn, &assistantTurn, true
}

// ReportScroll 上报滚动位置并更新手动滚动标记，返回当前是否应自动滚动
func (s *ChatService) ReportScroll(scrollTop, scrollHeight, clientHeight float64) bool {
	nearBottom := scrollHeight-scrollTop <= clientHeight+NearBottomThreshold

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolledUp = !nearBottom
	return !s.scrolledUp
}

// ShouldAutoScroll 用户手动上滚后不再自动吸底，新提交会重置该标记
func (s *ChatService) ShouldAutoScroll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.scrolledUp
}

// ToggleHistoryPanel 翻转历史面板可见性，不影响消息列表
func (s *ChatService) ToggleHistoryPanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHistory = !s.showHistory
	return s.showHistory
}

func (s *ChatService) ShowHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showHistory
}

func (s *ChatService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ChatService) Turns() []model.Turn {
	return s.store.Turns()
}

func (s *ChatService) SessionID() string {
	return s.store.SessionID()
}
