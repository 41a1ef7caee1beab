//go:build e2e

package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedisSlidingWindowLimiter(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSlidingWindowLimiterTestSuite))
}

type RedisSlidingWindowLimiterTestSuite struct {
	suite.Suite
	rdb redis.Cmdable
}

func (s *RedisSlidingWindowLimiterTestSuite) SetupSuite() {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	if err := client.Ping(s.T().Context()).Err(); err != nil {
		s.T().Skip("Redis不可用，跳过限流器测试")
	}
	s.rdb = client
}

func (s *RedisSlidingWindowLimiterTestSuite) newLimiter() *RedisSlidingWindowLimiter {
	return NewRedisSlidingWindowLimiter(s.rdb, 100*time.Millisecond, 5)
}

// 生成唯一的测试键，避免测试冲突
func (s *RedisSlidingWindowLimiterTestSuite) getUniqueKey(name string) string {
	return fmt.Sprintf("test:%s:%d", name, time.Now().UnixNano())
}

// TestLimit_SingleRequest 测试单个请求不触发限流
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_SingleRequest() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("single_request")

	limiter := s.newLimiter()

	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited, "第一个请求不应该被限流")

	cnt, err := s.rdb.ZCard(ctx, limiter.getCountKey(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt, "应该记录一个请求")

	s.rdb.Del(ctx, limiter.getCountKey(key))
}

// TestLimit_ExceedThreshold 测试超过阈值触发限流
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_ExceedThreshold() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("exceed_threshold")

	limiter := s.newLimiter()
	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, fmt.Sprintf("第%d个请求不应该被限流", i+1))
	}

	// 第6个请求应该被限流
	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited, "第6个请求应该被限流")

	// 验证Redis中记录了限流事件
	exists, err := s.rdb.Exists(ctx, limiter.getLimitedEventKey(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists, "应该存在限流记录")

	s.rdb.Del(ctx, limiter.getCountKey(key), limiter.getLimitedEventKey(key))
}

// TestLimit_DifferentKeys 测试不同key之间互不影响
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_DifferentKeys() {
	t := s.T()
	ctx := t.Context()
	key1 := s.getUniqueKey("key1")
	key2 := s.getUniqueKey("key2")

	// 填满key1的限流窗口
	limiter := s.newLimiter()
	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key1)
		require.NoError(t, err)
		assert.False(t, limited, "填充窗口的请求不应被限流")
	}

	limited, err := limiter.Limit(ctx, key1)
	require.NoError(t, err)
	assert.True(t, limited, "key1应该被限流")

	// key2应该不受影响
	limited, err = limiter.Limit(ctx, key2)
	require.NoError(t, err)
	assert.False(t, limited, "key2不应该被限流")

	s.rdb.Del(ctx, limiter.getCountKey(key1), limiter.getLimitedEventKey(key1))
	s.rdb.Del(ctx, limiter.getCountKey(key2), limiter.getLimitedEventKey(key2))
}

// TestLimit_WindowSliding 测试窗口滑动后限流恢复
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_WindowSliding() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("window_sliding")

	// 填满限流窗口
	limiter := s.newLimiter()
	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, "填充窗口的请求不应被限流")
	}

	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited, "窗口已满应该被限流")

	// 等待窗口滑动(100ms窗口 + 额外余量)
	time.Sleep(150 * time.Millisecond)

	limited, err = limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited, "窗口滑动后不应该被限流")

	s.rdb.Del(ctx, limiter.getCountKey(key), limiter.getLimitedEventKey(key))
}

// TestLastLimitTime_NoEvents 测试没有限流事件时的查询
func (s *RedisSlidingWindowLimiterTestSuite) TestLastLimitTime_NoEvents() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("no_limit_events")

	limiter := s.newLimiter()
	limitTime, err := limiter.LastLimitTime(ctx, key)
	require.NoError(t, err)
	assert.True(t, limitTime.IsZero(), "没有限流事件时应返回零值时间")
}

// TestLastLimitTime_WithEvents 测试有限流事件时的查询
func (s *RedisSlidingWindowLimiterTestSuite) TestLastLimitTime_WithEvents() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("with_limit_events")

	startTime := time.Now().Add(-time.Second)

	// 填满限流窗口并触发限流
	limiter := s.newLimiter()
	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, fmt.Sprintf("第%d个请求不应该被限流", i+1))
	}

	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited, "第6个请求应该被限流")

	limitTime, err := limiter.LastLimitTime(ctx, key)
	require.NoError(t, err)
	assert.False(t, limitTime.IsZero(), "应该有限流时间")

	assert.True(t, limitTime.After(startTime), "限流时间应该在测试开始之后")
	assert.True(t, limitTime.Before(time.Now().Add(1*time.Second)), "限流时间应该接近当前时间")

	s.rdb.Del(ctx, limiter.getCountKey(key), limiter.getLimitedEventKey(key))
}
