package domain

import (
	"fmt"
	"time"

	"crm-notification/internal/errs"
)

// CampaignType 营销活动类型
type CampaignType string

const (
	CampaignTypeBirthday        CampaignType = "BIRTHDAY"         // 生日关怀
	CampaignTypeReEngagement    CampaignType = "RE_ENGAGEMENT"    // 沉睡唤醒
	CampaignTypePointExpiration CampaignType = "POINT_EXPIRATION" // 积分到期提醒
	CampaignTypePromotion       CampaignType = "PROMOTION"        // 促销
	CampaignTypeCustom          CampaignType = "CUSTOM"           // 自定义
)

func (t CampaignType) String() string {
	return string(t)
}

// IsValid 是否为合法的活动类型
func (t CampaignType) IsValid() bool {
	switch t {
	case CampaignTypeBirthday, CampaignTypeReEngagement, CampaignTypePointExpiration,
		CampaignTypePromotion, CampaignTypeCustom:
		return true
	default:
		return false
	}
}

// IsScheduled 是否由定时触发自动圈选候选客户
// 促销和自定义活动的候选列表由调用方直接提供
func (t CampaignType) IsScheduled() bool {
	switch t {
	case CampaignTypeBirthday, CampaignTypeReEngagement, CampaignTypePointExpiration:
		return true
	default:
		return false
	}
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"     // 草稿
	CampaignStatusActive    CampaignStatus = "ACTIVE"    // 进行中
	CampaignStatusPaused    CampaignStatus = "PAUSED"    // 已暂停
	CampaignStatusCompleted CampaignStatus = "COMPLETED" // 已结束
)

func (s CampaignStatus) String() string {
	return string(s)
}

// CanTransitionTo 状态机：draft → active ⇄ paused → completed
// 定时触发反复执行不改变状态
func (s CampaignStatus) CanTransitionTo(target CampaignStatus) bool {
	switch s {
	case CampaignStatusDraft:
		return target == CampaignStatusActive
	case CampaignStatusActive:
		return target == CampaignStatusPaused || target == CampaignStatusCompleted
	case CampaignStatusPaused:
		return target == CampaignStatusActive || target == CampaignStatusCompleted
	default:
		return false
	}
}

// Campaign 营销活动领域模型
type Campaign struct {
	ID              int64          // 活动ID
	Name            string         // 活动名称
	Type            CampaignType   // 活动类型
	Status          CampaignStatus // 活动状态
	Template        string         // 消息模板
	Subject         string         // 邮件主题
	LinkURL         string         // 行动号召链接
	LinkText        string         // 行动号召文案
	LookaheadDays   int            // 生日类活动的提前天数窗口
	InactiveDays    int            // 沉睡唤醒的不活跃天数阈值
	ExpiringWithin  time.Duration  // 积分到期提醒的时间窗口
	Ctime           int64          // 创建时间
	Utime           int64          // 更新时间
}

// Validate 校验活动配置
func (c Campaign) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: 活动名称为空", errs.ErrInvalidParameter)
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: 活动类型 = %q", errs.ErrInvalidParameter, c.Type)
	}
	if c.Template == "" {
		return fmt.Errorf("%w: 消息模板为空", errs.ErrInvalidParameter)
	}
	if c.Type == CampaignTypeBirthday && c.LookaheadDays < 0 {
		return fmt.Errorf("%w: 生日窗口天数 = %d", errs.ErrInvalidParameter, c.LookaheadDays)
	}
	if c.Type == CampaignTypeReEngagement && c.InactiveDays <= 0 {
		return fmt.Errorf("%w: 不活跃天数 = %d", errs.ErrInvalidParameter, c.InactiveDays)
	}
	return nil
}

// CTA 取得活动配置的行动号召
func (c Campaign) CTA() CTA {
	return CTA{URL: c.LinkURL, Label: c.LinkText}
}

// CampaignRun 一次活动触发的执行记录，由调用方持久化用于审计
type CampaignRun struct {
	ID          uint64          // 运行记录ID
	CampaignID  int64           // 活动ID
	TriggeredAt time.Time       // 触发时间
	Summary     DispatchSummary // 派发聚合结果
}
