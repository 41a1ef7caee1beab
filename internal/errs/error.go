package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")

	ErrSendNotificationFailed = errors.New("发送通知失败")
	ErrNoAvailableChannel     = errors.New("无可用渠道")
	ErrChannelRateLimited     = errors.New("渠道触发限流")
	ErrCircuitBreaker         = errors.New("触发熔断")
	ErrDispatchTimeout        = errors.New("派发超时")
	ErrJobIDGenerateFailed    = errors.New("任务ID生成失败")

	ErrCustomerNotFound   = errors.New("客户记录不存在")
	ErrLoyaltyQueryFailed = errors.New("查询积分子系统失败")

	ErrCampaignNotFound           = errors.New("活动记录不存在")
	ErrCreateCampaignFailed       = errors.New("创建活动失败")
	ErrInvalidCampaignTransition  = errors.New("非法的活动状态变更")
	ErrCampaignNotActive          = errors.New("活动未处于进行中状态")
	ErrCampaignAlreadyTriggered   = errors.New("活动在当前周期内已触发")
	ErrCreateCampaignRunFailed    = errors.New("创建活动运行记录失败")
	ErrCampaignCandidatesRequired = errors.New("该活动类型需要调用方提供候选客户")
)
