package notify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Confirm 确认框内容
type Confirm struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// DeleteKeywordConfirm 删除关键词前的确认
var DeleteKeywordConfirm = Confirm{Title: "키워드 삭제", Message: "이 키워드를 삭제하시겠습니까?"}

// Confirmer 向用户确认危险操作
type Confirmer interface {
	Confirm(ctx context.Context, c Confirm) (bool, error)
}

// AutoConfirmer 不询问直接返回固定结果，对应命令行的 --yes
type AutoConfirmer bool

func (a AutoConfirmer) Confirm(context.Context, Confirm) (bool, error) {
	return bool(a), nil
}

// PromptConfirmer 在终端中读取 y/N
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (p *PromptConfirmer) Confirm(ctx context.Context, c Confirm) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(p.Out, "%s\n%s [y/N]: ", c.Title, c.Message); err != nil {
		return false, errors.Wrap(err, "写入确认提示失败")
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "读取确认输入失败")
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "예", "네":
		return true, nil
	}
	return false, nil
}
