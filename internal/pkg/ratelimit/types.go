package ratelimit

import (
	"time"

	"golang.org/x/net/context"
)

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Limit 判断是否应该限流
	Limit(ctx context.Context, key string) (bool, error)
	// LastLimitTime 获取最近一次触发限流的时间，没有触发过则返回零值
	LastLimitTime(ctx context.Context, key string) (time.Time, error)
}
