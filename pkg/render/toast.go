package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"keyword-monitor/pkg/notify"
)

var (
	successPrinter = color.New(color.FgGreen, color.Bold)
	errorPrinter   = color.New(color.FgRed, color.Bold)
	infoPrinter    = color.New(color.FgCyan)
)

// PrintToast 一次性命令直接输出提示，不需要自动关闭
func PrintToast(w io.Writer, kind notify.Kind, message string) {
	var p *color.Color
	prefix := "ℹ"
	switch kind {
	case notify.KindSuccess:
		p, prefix = successPrinter, "✔"
	case notify.KindError:
		p, prefix = errorPrinter, "✖"
	default:
		p = infoPrinter
	}
	_, _ = p.Fprintln(w, fmt.Sprintf("%s %s", prefix, message))
}

// ConsoleNotifier 把提示直接打印到终端
type ConsoleNotifier struct {
	Out io.Writer

	mu sync.Mutex
	n  uint64
}

var _ notify.Notifier = (*ConsoleNotifier)(nil)

func (c *ConsoleNotifier) Success(message string) uint64 {
	return c.print(notify.KindSuccess, message)
}

func (c *ConsoleNotifier) Error(message string) uint64 {
	return c.print(notify.KindError, message)
}

func (c *ConsoleNotifier) Info(message string) uint64 {
	return c.print(notify.KindInfo, message)
}

func (c *ConsoleNotifier) print(kind notify.Kind, message string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	PrintToast(c.Out, kind, message)
	return c.n
}
