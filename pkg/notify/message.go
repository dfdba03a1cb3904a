package notify

import (
	"github.com/pkg/errors"
)

// 用户可见的提示文案
const (
	MsgKeywordRequired   = "키워드를 입력해주세요."
	MsgKeywordDuplicate  = "이미 존재하는 키워드입니다."
	MsgServerUnreachable = "서버 연결에 실패했습니다."
	MsgLoadFailed        = "데이터를 불러오는데 실패했습니다."
	MsgClassifyUpdated   = "분류가 성공적으로 업데이트되었습니다."
	MsgClassifyFailed    = "분류 업데이트에 실패했습니다."
	MsgReasonUnavailable = "분류 이유를 불러올 수 없습니다."
	MsgReasonLoadFailed  = "분류 이유를 불러오는데 실패했습니다."
	MsgClassifyRequired  = "분류를 선택해주세요."
	errorPrefix          = "오류: "
)

// userMessager 由后端返回了错误信息的 error 实现
type userMessager interface {
	UserMessage() string
}

// backendFailure 后端明确返回 success=false 的 error 实现
type backendFailure interface {
	IsAppFailure() bool
}

// MessageFor 优先使用后端返回的信息，没有时使用 fallback
func MessageFor(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// MutationMessage 关键词增删改失败时的提示：
// 后端拒绝时显示 "오류: " 加后端信息，连接失败时显示通用提示
func MutationMessage(err error) string {
	var bf backendFailure
	if errors.As(err, &bf) && bf.IsAppFailure() {
		var um userMessager
		if errors.As(err, &um) {
			return errorPrefix + um.UserMessage()
		}
		return errorPrefix
	}
	return MsgServerUnreachable
}

// ReasonMessage 分类原因加载失败时的提示
func ReasonMessage(err error) string {
	var bf backendFailure
	if errors.As(err, &bf) && bf.IsAppFailure() {
		return MsgReasonUnavailable
	}
	return MsgReasonLoadFailed
}
