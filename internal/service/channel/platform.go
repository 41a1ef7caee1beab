package channel

import (
	"context"
	"fmt"
	"unicode/utf8"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/service/channel/client"
)

// 平台推送单条文本消息的长度上限，超出部分在本渠道内截断
const platformMaxTextLen = 2000

var _ Channel = (*platformChannel)(nil)

// platformChannel 聊天平台推送渠道
// CTA 折叠进正文，以箭头标记行附在末尾
type platformChannel struct {
	client client.PushClient
}

// NewPlatformChannel 创建平台推送渠道
func NewPlatformChannel(pushClient client.PushClient) Channel {
	return &platformChannel{
		client: pushClient,
	}
}

func (p *platformChannel) Send(ctx context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
	text := job.Body
	if !job.CTA.IsZero() {
		text = fmt.Sprintf("%s\n\n▶ %s\n%s", text, job.CTA.Label, job.CTA.URL)
	}
	text = truncate(text, platformMaxTextLen)

	if err := p.client.Push(ctx, job.Recipient, text); err != nil {
		return domain.DispatchOutcome{}, fmt.Errorf("%w: %w", errs.ErrSendNotificationFailed, err)
	}
	return domain.DispatchOutcome{
		CustomerID: job.CustomerID,
		Channel:    domain.ChannelPlatform,
		Status:     domain.OutcomeStatusSent,
	}, nil
}

// truncate 按字符数截断，避免切断多字节字符
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
