// Package loader 页面数据加载状态机。
// 每次加载都会分配一个递增的 Token，只有最新 Token 的结果会被接受，
// 先发后至的旧响应会被直接丢弃。
package loader

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// State 加载状态
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Token 单调递增的请求序号，0 表示从未发起过请求
type Token uint64

// ErrStale 响应已被更新的请求取代
var ErrStale = errors.New("stale response")

// EventKind reducer 的事件类型
type EventKind int

const (
	// EventBegin 发起新请求，Token 加一
	EventBegin EventKind = iota
	// EventResolve 请求成功
	EventResolve
	// EventFail 请求失败，保留之前的数据
	EventFail
	// EventPatch 对已加载的数据做本地修改
	EventPatch
	// EventReset 清空数据并使所有进行中的请求失效
	EventReset
)

// Event reducer 的输入
type Event[T any] struct {
	Kind  EventKind
	Token Token
	Data  T
	Err   error
	Patch func(T) T
}

// Snapshot 某一时刻的加载状态
type Snapshot[T any] struct {
	State   State
	Data    T
	HasData bool
	Err     error
	Latest  Token
}

// Reduce 纯函数，返回应用事件后的新状态和事件是否生效
func Reduce[T any](s Snapshot[T], ev Event[T]) (Snapshot[T], bool) {
	switch ev.Kind {
	case EventBegin:
		s.Latest++
		s.State = Loading
		s.Err = nil
		return s, true
	case EventResolve:
		if ev.Token == 0 || ev.Token != s.Latest || s.State != Loading {
			return s, false
		}
		s.State = Loaded
		s.Data = ev.Data
		s.HasData = true
		s.Err = nil
		return s, true
	case EventFail:
		if ev.Token == 0 || ev.Token != s.Latest || s.State != Loading {
			return s, false
		}
		s.State = Error
		s.Err = ev.Err
		return s, true
	case EventPatch:
		if !s.HasData || ev.Patch == nil {
			return s, false
		}
		s.Data = ev.Patch(s.Data)
		return s, true
	case EventReset:
		var zero T
		s.Latest++
		s.State = Idle
		s.Data = zero
		s.HasData = false
		s.Err = nil
		return s, true
	}
	return s, false
}

// Loader 并发安全的状态机，零值可用
type Loader[T any] struct {
	mu   sync.Mutex
	snap Snapshot[T]
}

func (l *Loader[T]) dispatch(ev Event[T]) (Snapshot[T], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	next, ok := Reduce(l.snap, ev)
	l.snap = next
	return next, ok
}

// Begin 发起新请求，之前发出的请求全部作废
func (l *Loader[T]) Begin() Token {
	snap, _ := l.dispatch(Event[T]{Kind: EventBegin})
	return snap.Latest
}

// Resolve 提交成功结果，Token 过期时返回 false
func (l *Loader[T]) Resolve(token Token, data T) bool {
	_, ok := l.dispatch(Event[T]{Kind: EventResolve, Token: token, Data: data})
	return ok
}

// Fail 提交失败，Token 过期时返回 false
func (l *Loader[T]) Fail(token Token, err error) bool {
	_, ok := l.dispatch(Event[T]{Kind: EventFail, Token: token, Err: err})
	return ok
}

// Mutate 修改已加载的数据，还没有数据时不做任何事
func (l *Loader[T]) Mutate(fn func(T) T) bool {
	_, ok := l.dispatch(Event[T]{Kind: EventPatch, Patch: fn})
	return ok
}

func (l *Loader[T]) Reset() {
	l.dispatch(Event[T]{Kind: EventReset})
}

func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Data 当前数据，失败后仍返回最后一次成功加载的数据
func (l *Loader[T]) Data() (T, bool) {
	s := l.Snapshot()
	return s.Data, s.HasData
}

func (l *Loader[T]) State() State {
	return l.Snapshot().State
}

// Run 发起请求并提交结果。结果过期时返回 ErrStale，调用方不应再提示用户。
func (l *Loader[T]) Run(ctx context.Context, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	token := l.Begin()
	data, err := fetch(ctx)
	if err != nil {
		if !l.Fail(token, err) {
			return zero, ErrStale
		}
		return zero, err
	}
	if !l.Resolve(token, data) {
		return zero, ErrStale
	}
	return data, nil
}
