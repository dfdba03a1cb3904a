package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError 后端返回的错误
type APIError struct {
	Endpoint string
	Status   int
	Message  string // envelope.message
	ErrText  string // envelope.error
	Detail   string // 网红监控接口的 detail

	appFailure bool
	cause      error
}

func (e *APIError) Error() string {
	msg := e.UserMessage()
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// UserMessage 可以直接展示给用户的信息
func (e *APIError) UserMessage() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrText != "":
		return e.ErrText
	default:
		return e.Detail
	}
}

// IsAppFailure 后端正常响应但明确表示失败
func (e *APIError) IsAppFailure() bool {
	return e.appFailure
}

// IsAppFailure 区分业务失败和网络失败，只用于日志，界面上两者处理相同
func IsAppFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsAppFailure()
	}
	return false
}
