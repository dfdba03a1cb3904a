package notify

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"keyword-monitor/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCenterAutoDismiss(t *testing.T) {
	c := NewCenter(&config.NotifyConfig{DismissAfter: 20 * time.Millisecond})
	defer c.Close()

	var mu sync.Mutex
	var changes [][]Toast
	c.OnChange(func(ts []Toast) {
		mu.Lock()
		changes = append(changes, ts)
		mu.Unlock()
	})

	id := c.Error("서버 연결에 실패했습니다.")
	require.NotZero(t, id)
	require.Len(t, c.Toasts(), 1)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changes) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, c.Toasts())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, KindError, changes[0][0].Kind)
	assert.Empty(t, changes[1])
}

func TestCenterIndependentTimers(t *testing.T) {
	c := NewCenter(&config.NotifyConfig{DismissAfter: time.Hour})
	defer c.Close()

	first := c.Success("a")
	second := c.Info("b")
	assert.True(t, c.Dismiss(first))
	assert.False(t, c.Dismiss(first))

	toasts := c.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, second, toasts[0].ID)

	latest, ok := c.Latest()
	require.True(t, ok)
	assert.Equal(t, "b", latest.Message)
}

func TestCenterCloseStopsTimers(t *testing.T) {
	c := NewCenter(&config.NotifyConfig{DismissAfter: 10 * time.Millisecond})
	called := make(chan struct{}, 10)
	c.Success("a")
	c.OnChange(func([]Toast) { called <- struct{}{} })
	c.Close()

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, called)
	assert.Zero(t, c.Show(KindInfo, "after close"))
	assert.Empty(t, c.Toasts())
	c.Close()
}

func TestCenterCloseWaitsForCallback(t *testing.T) {
	c := NewCenter(&config.NotifyConfig{DismissAfter: time.Hour})
	entered := make(chan struct{})
	release := make(chan struct{})
	c.OnChange(func([]Toast) {
		close(entered)
		<-release
	})

	go c.Success("a")
	<-entered

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close returned while a callback was running")
	case <-time.After(20 * time.Millisecond):
	}
	close(release)
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("Close did not return")
	}
}

func TestCenterNoCallbackAfterClose(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := NewCenter(&config.NotifyConfig{DismissAfter: time.Hour})
		var closed atomic.Bool
		var late atomic.Int32
		c.OnChange(func([]Toast) {
			if closed.Load() {
				late.Add(1)
			}
		})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				c.Dismiss(c.Info("x"))
			}
		}()
		go func() {
			defer wg.Done()
			c.Close()
			closed.Store(true)
		}()
		wg.Wait()
		require.Zero(t, late.Load())
	}
}

type fakeAPIError struct {
	msg string
	app bool
}

func (e *fakeAPIError) Error() string       { return "api: " + e.msg }
func (e *fakeAPIError) UserMessage() string { return e.msg }
func (e *fakeAPIError) IsAppFailure() bool  { return e.app }

func TestMessages(t *testing.T) {
	appErr := errors.Wrap(&fakeAPIError{msg: "키워드 추가 실패", app: true}, "create keyword")
	netErr := errors.New("dial tcp: connection refused")

	assert.Equal(t, "키워드 추가 실패", MessageFor(appErr, MsgClassifyFailed))
	assert.Equal(t, MsgClassifyFailed, MessageFor(netErr, MsgClassifyFailed))
	assert.Equal(t, MsgLoadFailed, MessageFor(nil, MsgLoadFailed))

	assert.Equal(t, "오류: 키워드 추가 실패", MutationMessage(appErr))
	assert.Equal(t, MsgServerUnreachable, MutationMessage(netErr))

	assert.Equal(t, MsgReasonUnavailable, ReasonMessage(appErr))
	assert.Equal(t, MsgReasonLoadFailed, ReasonMessage(netErr))
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"네", true},
		{"\n", false},
		{"n\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out strings.Builder
		p := &PromptConfirmer{In: strings.NewReader(tt.input), Out: &out}
		got, err := p.Confirm(context.Background(), DeleteKeywordConfirm)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "이 키워드를 삭제하시겠습니까?")
	}

	ok, err := AutoConfirmer(true).Confirm(context.Background(), DeleteKeywordConfirm)
	require.NoError(t, err)
	assert.True(t, ok)
}
