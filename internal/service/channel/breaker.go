package channel

import (
	"context"
	"fmt"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"github.com/go-kratos/aegis/circuitbreaker"
)

var _ Channel = (*BreakerChannel)(nil)

// BreakerChannel 为渠道添加熔断保护的装饰器
// 平台推送接口故障时快速失败，避免拖垮整批派发
type BreakerChannel struct {
	channel Channel
	breaker circuitbreaker.CircuitBreaker
}

// NewBreakerChannel 创建带熔断的渠道
func NewBreakerChannel(channel Channel, breaker circuitbreaker.CircuitBreaker) *BreakerChannel {
	return &BreakerChannel{
		channel: channel,
		breaker: breaker,
	}
}

func (b *BreakerChannel) Send(ctx context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
	if err := b.breaker.Allow(); err != nil {
		b.breaker.MarkFailed()
		return domain.DispatchOutcome{}, fmt.Errorf("%w: %w", errs.ErrCircuitBreaker, err)
	}
	resp, err := b.channel.Send(ctx, job)
	if err != nil {
		b.breaker.MarkFailed()
		return resp, err
	}
	b.breaker.MarkSuccess()
	return resp, nil
}
