package loyalty

import (
	"context"
	"time"
)

// Service 积分子系统边界接口
// 积分到期的计算归属积分子系统，本子系统只消费圈选结果
//
//go:generate mockgen -source=./types.go -destination=./mocks/loyalty.mock.go -package=loyaltymocks -typed Service
type Service interface {
	// FindCustomerIDsWithExpiringPoints 查找积分将在窗口内到期的客户ID
	FindCustomerIDsWithExpiringPoints(ctx context.Context, within time.Duration) ([]int64, error)
}
