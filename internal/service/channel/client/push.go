package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/gotomicro/ego/client/ehttp"
)

var (
	ErrPushFailed = errors.New("平台推送失败")

	_ PushClient = (*HTTPPushClient)(nil)
)

// PushClient 聊天平台推送客户端
//
//go:generate mockgen -source=./push.go -destination=./mocks/push.mock.go -package=clientmocks -typed PushClient
type PushClient interface {
	// Push 向平台用户推送一条文本消息
	Push(ctx context.Context, externalUserID, text string) error
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HTTPPushClient 基于平台开放 API 的推送实现
// 鉴权使用服务端持有的访问令牌，本层不做重试
type HTTPPushClient struct {
	cli         *ehttp.Component
	accessToken string
}

// NewHTTPPushClient 创建平台推送客户端
func NewHTTPPushClient(cli *ehttp.Component, accessToken string) *HTTPPushClient {
	return &HTTPPushClient{
		cli:         cli,
		accessToken: accessToken,
	}
}

func (c *HTTPPushClient) Push(ctx context.Context, externalUserID, text string) error {
	req := pushRequest{
		To: externalUserID,
		Messages: []pushMessage{
			{Type: "text", Text: text},
		},
	}

	resp, err := c.cli.R().
		SetContext(ctx).
		SetAuthToken(c.accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v2/bot/message/push")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	// 任何非 2xx 都按失败处理
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: 状态码 %d, 响应 %s", ErrPushFailed, resp.StatusCode(), resp.String())
	}
	return nil
}
