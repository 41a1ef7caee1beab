package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/service/channel"
	tplsvc "crm-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sony/sonyflake"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPlatformConcurrency = 16
	defaultEmailConcurrency    = 4
	defaultTimeout             = 30 * time.Second
)

// Config 派发配置，平台推送和 SMTP 的吞吐上限不同，并发分渠道独立限制
type Config struct {
	PlatformConcurrency int           // 平台渠道最大在途发送数
	EmailConcurrency    int           // 邮件渠道最大在途发送数
	Timeout             time.Duration // 整批派发的截止时间
}

// dispatcher 派发协调器实现
// 调用之间无状态，所有任务和结果的生命周期都在一次 Dispatch 调用内
type dispatcher struct {
	resolver          *channel.Resolver
	composer          *tplsvc.Composer
	channelDispatcher channel.Channel
	idGenerator       *sonyflake.Sonyflake
	cfg               Config
	logger            *elog.Component
}

// NewDispatcher 创建派发协调器
func NewDispatcher(
	resolver *channel.Resolver,
	composer *tplsvc.Composer,
	channelDispatcher channel.Channel,
	idGenerator *sonyflake.Sonyflake,
	cfg Config,
) Dispatcher {
	if cfg.PlatformConcurrency <= 0 {
		cfg.PlatformConcurrency = defaultPlatformConcurrency
	}
	if cfg.EmailConcurrency <= 0 {
		cfg.EmailConcurrency = defaultEmailConcurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &dispatcher{
		resolver:          resolver,
		composer:          composer,
		channelDispatcher: channelDispatcher,
		idGenerator:       idGenerator,
		cfg:               cfg,
		logger:            elog.DefaultLogger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, batch domain.DispatchBatch) (domain.DispatchSummary, error) {
	if err := batch.Validate(); err != nil {
		return domain.DispatchSummary{}, err
	}

	total := len(batch.Customers)
	if total == 0 {
		// 空候选列表不是错误，返回全零汇总
		return Aggregate(0, nil), nil
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	outcomeCh := make(chan domain.DispatchOutcome, total)

	// 逐客户解析渠道并合成消息，不可触达的直接记为跳过，不构造任务
	jobsByChannel := make(map[domain.Channel][]domain.NotificationJob)
	for _, customer := range batch.Customers {
		ch := d.resolver.Resolve(customer)
		if !ch.IsReachable() {
			outcomeCh <- domain.DispatchOutcome{
				CustomerID: customer.ID,
				Channel:    domain.ChannelNone,
				Status:     domain.OutcomeStatusSkipped,
			}
			continue
		}
		jobsByChannel[ch] = append(jobsByChannel[ch], d.newJob(customer, ch, batch))
	}

	// 各渠道独立扇出，单渠道内用 errgroup 限制在途并发，超出的排队而不是拒绝
	var wg sync.WaitGroup
	for ch, jobs := range jobsByChannel {
		wg.Add(1)
		go func(ch domain.Channel, jobs []domain.NotificationJob) {
			defer wg.Done()
			var eg errgroup.Group
			eg.SetLimit(d.concurrencyFor(ch))
			for i := range jobs {
				job := jobs[i]
				eg.Go(func() error {
					outcomeCh <- d.sendOne(ctx, job)
					return nil
				})
			}
			_ = eg.Wait()
		}(ch, jobs)
	}

	go func() {
		wg.Wait()
		close(outcomeCh)
	}()

	outcomes := make([]domain.DispatchOutcome, 0, total)
	for outcome := range outcomeCh {
		outcomes = append(outcomes, outcome)
	}
	return Aggregate(total, outcomes), nil
}

// sendOne 单个任务的发送，错误在这里折算成结果，绝不向外抛
func (d *dispatcher) sendOne(ctx context.Context, job domain.NotificationJob) domain.DispatchOutcome {
	if err := ctx.Err(); err != nil {
		// 到达截止时间还没轮到的任务，直接记为超时失败
		return d.failedOutcome(job, errs.ErrDispatchTimeout.Error())
	}

	outcome, err := d.channelDispatcher.Send(ctx, job)
	if err != nil {
		detail := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			detail = errs.ErrDispatchTimeout.Error()
		}
		d.logger.Warn("通知发送失败",
			elog.FieldErr(err),
			elog.Any("customerID", job.CustomerID),
			elog.String("channel", job.Channel.String()),
		)
		return d.failedOutcome(job, detail)
	}
	return outcome
}

func (d *dispatcher) failedOutcome(job domain.NotificationJob, detail string) domain.DispatchOutcome {
	return domain.DispatchOutcome{
		CustomerID:  job.CustomerID,
		Channel:     job.Channel,
		Status:      domain.OutcomeStatusFailed,
		ErrorDetail: detail,
	}
}

func (d *dispatcher) newJob(customer domain.Customer, ch domain.Channel, batch domain.DispatchBatch) domain.NotificationJob {
	id, err := d.idGenerator.NextID()
	if err != nil {
		// ID 只用于日志关联，生成失败不阻断发送
		d.logger.Warn("任务ID生成失败", elog.FieldErr(err))
	}
	return domain.NotificationJob{
		ID:         id,
		CustomerID: customer.ID,
		Channel:    ch,
		Recipient:  d.resolver.Recipient(customer, ch),
		Subject:    batch.Subject,
		Body:       d.composer.Render(batch.Template, batch.ParamsFor(customer)),
		CTA:        batch.CTA,
	}
}

func (d *dispatcher) concurrencyFor(ch domain.Channel) int {
	if ch == domain.ChannelEmail {
		return d.cfg.EmailConcurrency
	}
	return d.cfg.PlatformConcurrency
}
