package model

type AskRequest struct {
	Query      string   `json:"query" binding:"required"`
	Mode       string   `json:"mode"`        // "full_book" | "selected_text"，为空时不传递
	ContextIDs []string `json:"context_ids"` // selected_text 模式下的章节ID列表
}

type ClearHistoryRequest struct {
	Confirm bool `json:"confirm"` // 必须显式确认，否则不发起清除
}

// ScrollRequest 前端上报的滚动位置
type ScrollRequest struct {
	ScrollTop    float64 `json:"scroll_top"`
	ScrollHeight float64 `json:"scroll_height"`
	ClientHeight float64 `json:"client_height"`
}

type RenderPreviewRequest struct {
	Content string `json:"content" binding:"required"`
}
