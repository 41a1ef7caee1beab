package task

import (
	"context"
	"time"

	"crm-notification/internal/service/campaign"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
)

const (
	lockKey     = "cron:campaign_trigger"
	lockExpiry  = 10 * time.Minute
	lockTimeout = 3 * time.Second
)

// TriggerCron 定时扫描并触发活动的任务
// 多实例部署时通过分布式锁保证同一周期只有一个实例执行
type TriggerCron struct {
	evaluator campaign.TriggerEvaluator
	dclient   dlock.Client
	logger    *elog.Component
}

// NewTriggerCron 创建定时触发任务
func NewTriggerCron(evaluator campaign.TriggerEvaluator, dclient dlock.Client) *TriggerCron {
	return &TriggerCron{
		evaluator: evaluator,
		dclient:   dclient,
		logger:    elog.DefaultLogger.With(elog.String("task", lockKey)),
	}
}

// Do 执行一轮定时触发，注册到cron调度
func (t *TriggerCron) Do(ctx context.Context) error {
	lock, err := t.dclient.NewLock(ctx, lockKey, lockExpiry)
	if err != nil {
		t.logger.Error("初始化分布式锁失败", elog.FieldErr(err))
		return err
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	err = lock.Lock(lockCtx)
	cancel()
	if err != nil {
		// 没抢到锁说明有别的实例在跑，本轮放弃
		t.logger.Info("未获得分布式锁，跳过本轮触发", elog.Any("err", err))
		return nil
	}
	defer func() {
		// 解锁要摆脱ctx的控制，此时ctx可能已被取消
		unCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
		//nolint:contextcheck // 原始 ctx 可能已被取消，但仍需尝试解锁操作。
		if unErr := lock.Unlock(unCtx); unErr != nil {
			t.logger.Error("释放分布式锁失败", elog.Any("err", unErr))
		}
		cancel()
	}()

	return t.evaluator.TriggerScheduled(ctx)
}
