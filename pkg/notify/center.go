// Package notify 页面内的短时提示和确认框
package notify

import (
	"sync"
	"time"

	"keyword-monitor/config"

	"go.uber.org/zap"
)

// Kind 提示类型
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Toast 一条提示消息
type Toast struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier 页面用来提示用户的接口
type Notifier interface {
	Success(message string) uint64
	Error(message string) uint64
	Info(message string) uint64
}

// Center 管理当前显示的提示，每条提示有独立的自动关闭定时器
type Center struct {
	mu       sync.Mutex
	ttl      time.Duration
	nextID   uint64
	toasts   []Toast
	timers   map[uint64]*time.Timer
	onChange func([]Toast)
	closed   bool

	// emitMu 串行执行回调，Close 先拿它再拿 mu，会等正在执行的回调结束
	emitMu sync.Mutex
}

var _ Notifier = (*Center)(nil)

func NewCenter(cfg *config.NotifyConfig) *Center {
	if cfg == nil {
		cfg = config.NewDefaultNotifyConfig()
	}
	return &Center{
		ttl:    cfg.DismissAfter,
		timers: make(map[uint64]*time.Timer),
	}
}

// OnChange 注册提示列表变化的回调。回调串行执行，回调中不能再调用 Center 的方法
func (c *Center) OnChange(fn func([]Toast)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Center) Success(message string) uint64 {
	return c.Show(KindSuccess, message)
}

func (c *Center) Error(message string) uint64 {
	return c.Show(KindError, message)
}

func (c *Center) Info(message string) uint64 {
	return c.Show(KindInfo, message)
}

// Show 显示提示并启动自动关闭定时器，Close 之后返回 0
func (c *Center) Show(kind Kind, message string) uint64 {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}
	c.nextID++
	id := c.nextID
	c.toasts = append(c.toasts, Toast{ID: id, Message: message, Kind: kind, CreatedAt: time.Now()})
	if c.ttl > 0 {
		c.timers[id] = time.AfterFunc(c.ttl, func() { c.Dismiss(id) })
	}
	snapshot, cb := c.snapshotLocked()
	c.mu.Unlock()

	if kind == KindError {
		zap.S().Debugf("错误提示: %s", message)
	}
	c.emit(snapshot, cb)
	return id
}

// Dismiss 关闭一条提示，提示不存在时返回 false
func (c *Center) Dismiss(id uint64) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	idx := -1
	for i, t := range c.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	c.toasts = append(c.toasts[:idx:idx], c.toasts[idx+1:]...)
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	snapshot, cb := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snapshot, cb)
	return true
}

// Toasts 当前显示的提示，按显示顺序
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Latest 最新的一条提示
func (c *Center) Latest() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.toasts) == 0 {
		return Toast{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}

// Close 页面卸载时调用，停止所有定时器，返回时正在执行的回调已经结束，之后不再触发回调
func (c *Center) Close() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.toasts = nil
	c.onChange = nil
}

// emit 在 emitMu 内重新检查 closed，Close 返回后拿到的旧回调不会再执行
func (c *Center) emit(snapshot []Toast, cb func([]Toast)) {
	if cb == nil {
		return
	}
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		cb(snapshot)
	}
}

func (c *Center) snapshotLocked() ([]Toast, func([]Toast)) {
	if c.onChange == nil {
		return nil, nil
	}
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out, c.onChange
}
