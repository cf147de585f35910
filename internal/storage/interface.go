package storage

import (
	"textbook-chat-backend/internal/model"
)

// SessionStore 本地会话状态
// 消息只追加、不单条删除；Clear 清空全部消息但保留服务端分配的会话ID；
// 会话ID一经采纳不再变更
type SessionStore interface {
	AppendTurn(turn model.Turn)
	Turns() []model.Turn
	TurnCount() int
	Clear()

	SessionID() string
	AdoptSessionID(id string) bool
}
