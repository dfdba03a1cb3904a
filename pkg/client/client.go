// Package client 监控后端的 REST 客户端
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"keyword-monitor/config"
	"keyword-monitor/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Client 不做重试也不做去重，超时只依赖 http.Client
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient 替换底层 http.Client，测试时使用
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(cfg *config.APIConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.NewDefaultAPIConfig()
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "后端配置错误")
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL 后端地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope 后端统一响应格式，页面只根据 success 判断
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   interface{}     `json:"error"`

	// 关键词增删改接口在顶层附带后端推断出的类型和分组
	Type      model.KeywordType `json:"type"`
	GroupName string            `json:"group_name"`
}

func (e *envelope) errorText() string {
	if e.Error == nil {
		return ""
	}
	return cast.ToString(e.Error)
}

// do 发送请求并返回响应体，网络错误直接返回
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "序列化请求失败: %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "创建请求失败: %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		zap.S().Warnf("请求后端失败: %s %s, err: %v", method, path, err)
		return 0, nil, errors.Wrapf(err, "请求失败: %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrapf(err, "读取响应失败: %s %s", method, path)
	}
	zap.S().Debugf("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(data))
	return resp.StatusCode, data, nil
}

// callEnvelope 请求 {success, data, message, error} 格式的接口，success=false 时返回 APIError。
// out 为 nil 时忽略 data。
func (c *Client) callEnvelope(ctx context.Context, method, path string, query url.Values, body, out interface{}) (*envelope, error) {
	status, data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		zap.S().Warnf("响应格式错误: %s %s, status: %d", method, path, status)
		return nil, &APIError{Endpoint: path, Status: status, Message: snippet(data), cause: err}
	}
	if !env.Success {
		zap.S().Warnf("后端返回失败: %s %s, message: %s, error: %s", method, path, env.Message, env.errorText())
		return &env, &APIError{
			Endpoint:   path,
			Status:     status,
			Message:    env.Message,
			ErrText:    env.errorText(),
			appFailure: true,
		}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &env, errors.Wrapf(err, "解析响应数据失败: %s %s", method, path)
		}
	}
	return &env, nil
}

// callRaw 请求直接返回 JSON 的接口，HTTP 状态码 >= 400 时读取 detail
func (c *Client) callRaw(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	status, data, err := c.do(ctx, method, path, query, nil)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		var body struct {
			Detail interface{} `json:"detail"`
		}
		apiErr := &APIError{Endpoint: path, Status: status}
		if jerr := json.Unmarshal(data, &body); jerr == nil && body.Detail != nil {
			apiErr.Detail = cast.ToString(body.Detail)
			apiErr.appFailure = true
		} else {
			apiErr.Message = snippet(data)
		}
		zap.S().Warnf("后端返回错误: %s %s, status: %d, detail: %s", method, path, status, apiErr.Detail)
		return apiErr
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "解析响应失败: %s %s", method, path)
	}
	return nil
}

func snippet(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
