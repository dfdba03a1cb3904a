package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"keyword-monitor/pkg/notify"
)

// response 与后端一致的返回格式
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ok(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, response{Success: true, Data: data, Message: message})
}

func fail(c *gin.Context, status int, message string, err error) {
	r := response{Success: false, Message: message}
	if err != nil {
		r.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, r)
}

// collector 收集页面发出的提示，作为返回的 message
type collector struct {
	mu   sync.Mutex
	last string
	n    uint64
}

var _ notify.Notifier = (*collector)(nil)

func (c *collector) Success(message string) uint64 { return c.add(message) }
func (c *collector) Error(message string) uint64   { return c.add(message) }
func (c *collector) Info(message string) uint64    { return c.add(message) }

func (c *collector) add(message string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	c.last = message
	return c.n
}

func (c *collector) message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
