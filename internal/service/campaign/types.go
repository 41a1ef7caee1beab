package campaign

import (
	"context"

	"crm-notification/internal/domain"
)

// Service 营销活动管理服务
//
//go:generate mockgen -source=./types.go -destination=./mocks/campaign.mock.go -package=campaignmocks -typed Service,TriggerEvaluator
type Service interface {
	// Create 创建活动，初始状态为草稿
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	// GetByID 根据ID获取活动
	GetByID(ctx context.Context, id int64) (domain.Campaign, error)
	// UpdateStatus 更新活动状态，非法的状态变更会被拒绝
	UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// ListRuns 查询活动的触发历史
	ListRuns(ctx context.Context, campaignID int64, limit int) ([]domain.CampaignRun, error)
}

// TriggerEvaluator 活动触发评估器
// 负责圈选候选客户并发起一次派发
type TriggerEvaluator interface {
	// Trigger 触发一次活动
	// 促销和自定义活动必须由调用方提供候选客户ID，定时触发类活动传空则自动圈选
	Trigger(ctx context.Context, campaignID int64, candidateIDs []int64) (domain.CampaignRun, error)
	// TriggerScheduled 扫描所有进行中的定时触发类活动并逐个触发
	// 同一活动在同一天内只会触发一次
	TriggerScheduled(ctx context.Context) error
}
