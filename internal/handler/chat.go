package handler

import (
	"errors"
	"net/http"

	"textbook-chat-backend/internal/client"
	"textbook-chat-backend/internal/model"
	"textbook-chat-backend/internal/render"
	"textbook-chat-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService    *service.ChatService
	historyService *service.HistoryService
}

func NewChatHandler(chatService *service.ChatService, historyService *service.HistoryService) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		historyService: historyService,
	}
}

// Ask 提交用户问题并返回追加的消息对
// 空白输入或请求在途时返回 skipped，不追加消息也不调用后端
func (h *ChatHandler) Ask(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userTurn, assistantTurn, ok := h.chatService.SubmitWithOptions(c.Request.Context(), req.Query, service.SubmitOptions{
		Mode:       req.Mode,
		ContextIDs: req.ContextIDs,
	})
	if !ok {
		c.JSON(http.StatusOK, model.AskResponse{Skipped: true})
		return
	}

	c.JSON(http.StatusOK, model.AskResponse{
		SessionID:     h.chatService.SessionID(),
		UserTurn:      userTurn,
		AssistantTurn: assistantTurn,
		AssistantHTML: render.Render(assistantTurn.Content),
	})
}

// GetTurns 返回本地消息列表与展示状态
func (h *ChatHandler) GetTurns(c *gin.Context) {
	c.JSON(http.StatusOK, model.TurnsResponse{
		SessionID:   h.chatService.SessionID(),
		Turns:       h.chatService.Turns(),
		Loading:     h.chatService.Loading(),
		ShowHistory: h.chatService.ShowHistory(),
	})
}

// GetHistory 从外部存储拉取会话历史
// 连接失败与服务端拒绝返回不同的提示文本
func (h *ChatHandler) GetHistory(c *gin.Context) {
	turns, err := h.historyService.Fetch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": service.GuidanceFor(err)})
		return
	}

	c.JSON(http.StatusOK, model.HistoryResponse{
		SessionID: h.chatService.SessionID(),
		History:   turns,
	})
}

// ClearHistory 清空会话历史，必须显式确认
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	var req model.ClearHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmer := service.ConfirmerFunc(func(string) bool { return req.Confirm })
	err := h.historyService.Clear(c.Request.Context(), confirmer)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"cleared": true})
	case errors.Is(err, service.ErrNotConfirmed):
		c.JSON(http.StatusOK, gin.H{"cleared": false})
	case errors.Is(err, client.ErrNoSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session ID provided"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": service.GuidanceFor(err)})
	}
}

// ToggleHistory 翻转历史面板可见性
func (h *ChatHandler) ToggleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"show_history": h.chatService.ToggleHistoryPanel()})
}

// Scroll 上报滚动位置，返回是否应自动吸底
func (h *ChatHandler) Scroll(c *gin.Context) {
	var req model.ScrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	autoScroll := h.chatService.ReportScroll(req.ScrollTop, req.ScrollHeight, req.ClientHeight)
	c.JSON(http.StatusOK, model.ScrollResponse{AutoScroll: autoScroll})
}

// RenderPreview 纯渲染端点，供前端预览格式化结果
func (h *ChatHandler) RenderPreview(c *gin.Context) {
	var req model.RenderPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.RenderPreviewResponse{HTML: render.Render(req.Content)})
}
