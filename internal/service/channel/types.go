package channel

import (
	"context"

	"crm-notification/internal/domain"
)

// Channel 渠道接口，一次调用发送一条已渲染好的消息
//
//go:generate mockgen -source=./types.go -destination=./mocks/channel.mock.go -package=channelmocks -typed Channel
type Channel interface {
	// Send 发送通知，失败以 error 返回，由调用方折算成 DispatchOutcome
	Send(ctx context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error)
}
