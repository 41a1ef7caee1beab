package dispatch

import (
	"context"

	"crm-notification/internal/domain"
)

// Dispatcher 派发协调器接口
// 一次调用把一批 (客户, 消息) 扇出到各渠道并发发送，聚合出汇总结果后返回；
// 单个客户的失败不会影响同批其他客户
//
//go:generate mockgen -source=./types.go -destination=./mocks/dispatch.mock.go -package=dispatchmocks -typed Dispatcher
type Dispatcher interface {
	// Dispatch 派发一批通知，仅在结构性失败(参数非法)时返回 error
	Dispatch(ctx context.Context, batch domain.DispatchBatch) (domain.DispatchSummary, error)
}
