package model

type AskResponse struct {
	SessionID     string `json:"session_id,omitempty"`
	UserTurn      *Turn  `json:"user_turn,omitempty"`
	AssistantTurn *Turn  `json:"assistant_turn,omitempty"`
	AssistantHTML string `json:"assistant_html,omitempty"`
	Skipped       bool   `json:"skipped,omitempty"` // 空输入或请求进行中时为 true
}

type TurnsResponse struct {
	SessionID   string `json:"session_id,omitempty"`
	Turns       []Turn `json:"turns"`
	Loading     bool   `json:"loading"`
	ShowHistory bool   `json:"show_history"`
}

type HistoryResponse struct {
	SessionID string `json:"session_id"`
	History   []Turn `json:"history"`
}

type ScrollResponse struct {
	AutoScroll bool `json:"auto_scroll"`
}

type RenderPreviewResponse struct {
	HTML string `json:"html"`
}
