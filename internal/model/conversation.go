package model

import "time"

// 角色常量，role 在创建时确定，之后不再变更
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// 查询模式常量
const (
	ModeFullBook     = "full_book"
	ModeSelectedText = "selected_text"
)

// Reference 助手回答附带的引用，指向教材内部章节或外部资料
// internal 与 external 目前渲染方式相同，type 仅作标识
type Reference struct {
	Type        string  `json:"type"` // "internal" | "external"
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Relevance   float64 `json:"relevance,omitempty"` // 相关度 0-1，前端按百分比展示
}

// Turn 会话中的单条消息（用户或助手）
type Turn struct {
	ID         string      `json:"id"`
	Role       string      `json:"role"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	References []Reference `json:"references,omitempty"` // 仅助手消息携带
}

// Session 本地会话状态
// SessionID 由问答后端在首次应答时分配，分配后在整个UI会话期间不变；
// Turns 只追加、不单条删除，插入顺序即时间顺序
type Session struct {
	SessionID string `json:"session_id,omitempty"`
	Turns     []Turn `json:"turns"`
}
