package channel

import (
	"context"
	"fmt"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
)

// Dispatcher 渠道分发器，对外伪装成Channel，作为统一入口
type Dispatcher struct {
	channels map[domain.Channel]Channel
}

// NewDispatcher 创建渠道分发器
func NewDispatcher(channels map[domain.Channel]Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
	}
}

func (d *Dispatcher) Send(ctx context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
	ch, ok := d.channels[job.Channel]
	if !ok {
		return domain.DispatchOutcome{}, fmt.Errorf("%w: %s", errs.ErrNoAvailableChannel, job.Channel)
	}
	return ch.Send(ctx, job)
}
