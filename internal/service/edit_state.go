package service

import (
	"errors"
	"sync"
)

// ErrNotEditing 在没有处于编辑中的条目时返回
var ErrNotEditing = errors.New("no item is being edited")

// EditTarget 标识后台正在编辑的条目：所属管理器加条目键
// 键对自然键资源是 "section.field" 或渠道类型，对代理键资源是 id 的十进制串
type EditTarget struct {
	Manager string
	Key     string
}

// EditSession 维护单个管理员会话的编辑状态。
// 同一时间至多一个条目处于编辑中；对另一个条目调用 Begin
// 会直接丢弃之前未保存的草稿，这是刻意为之的简化。
type EditSession struct {
	mu     sync.Mutex
	target *EditTarget
	draft  string
}

// NewEditSession 构造处于空闲状态的编辑会话
func NewEditSession() *EditSession {
	return &EditSession{}
}

// Begin 进入编辑状态，草稿用当前持久化值初始化。
// 若已有其他条目在编辑中，其草稿被丢弃。
func (s *EditSession) Begin(manager, key, current string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.target = &EditTarget{Manager: manager, Key: key}
	s.draft = current
}

// Draft 更新当前草稿；不处于编辑状态时返回 ErrNotEditing
func (s *EditSession) Draft(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil {
		return ErrNotEditing
	}
	s.draft = value
	return nil
}

// Cancel 放弃草稿并回到空闲状态
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.target = nil
	s.draft = ""
}

// Complete 在保存成功后结束编辑。
// 仅当传入的目标与编辑中的条目一致时才清空，
// 保存失败的路径不调用本方法，草稿因此得以保留。
func (s *EditSession) Complete(manager, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil || s.target.Manager != manager || s.target.Key != key {
		return
	}
	s.target = nil
	s.draft = ""
}

// Current 返回编辑中的目标与草稿；第三个返回值指示是否处于编辑状态
func (s *EditSession) Current() (EditTarget, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.target == nil {
		return EditTarget{}, "", false
	}
	return *s.target, s.draft, true
}

// EditRegistry 按会话标识保存各管理员登录对应的编辑会话
type EditRegistry struct {
	mu       sync.Mutex
	sessions map[string]*EditSession
}

// NewEditRegistry 构造空的编辑会话注册表
func NewEditRegistry() *EditRegistry {
	return &EditRegistry{sessions: make(map[string]*EditSession)}
}

// Session 返回指定标识的编辑会话，不存在时创建
func (r *EditRegistry) Session(id string) *EditSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		session = NewEditSession()
		r.sessions[id] = session
	}
	return session
}

// Drop 移除指定标识的编辑会话，用于登出清理
func (r *EditRegistry) Drop(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
