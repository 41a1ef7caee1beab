package campaign

import (
	"time"

	"crm-notification/internal/domain"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{Code: 501001, Msg: "系统错误"}

// CreateCampaignReq 创建活动请求
type CreateCampaignReq struct {
	Name           string `json:"name"`           // 活动名称
	Type           string `json:"type"`           // 活动类型
	Template       string `json:"template"`       // 消息模板
	Subject        string `json:"subject"`        // 邮件主题
	LinkURL        string `json:"linkUrl"`        // 行动号召链接
	LinkText       string `json:"linkText"`       // 行动号召文案
	LookaheadDays  int    `json:"lookaheadDays"`  // 生日窗口天数
	InactiveDays   int    `json:"inactiveDays"`   // 不活跃天数阈值
	ExpiringInDays int    `json:"expiringInDays"` // 积分到期窗口天数
}

// CreateCampaignResp 创建活动响应
type CreateCampaignResp struct {
	Campaign Campaign `json:"campaign"`
}

// Campaign 营销活动
type Campaign struct {
	ID             int64  `json:"id"`             // 活动ID
	Name           string `json:"name"`           // 活动名称
	Type           string `json:"type"`           // 活动类型
	Status         string `json:"status"`         // 活动状态
	Template       string `json:"template"`       // 消息模板
	Subject        string `json:"subject"`        // 邮件主题
	LinkURL        string `json:"linkUrl"`        // 行动号召链接
	LinkText       string `json:"linkText"`       // 行动号召文案
	LookaheadDays  int    `json:"lookaheadDays"`  // 生日窗口天数
	InactiveDays   int    `json:"inactiveDays"`   // 不活跃天数阈值
	ExpiringInDays int    `json:"expiringInDays"` // 积分到期窗口天数
	Ctime          int64  `json:"ctime"`          // 创建时间
	Utime          int64  `json:"utime"`          // 更新时间
}

// DetailReq 活动详情请求
type DetailReq struct {
	ID int64 `json:"id"` // 活动ID
}

// DetailResp 活动详情响应
type DetailResp struct {
	Campaign Campaign `json:"campaign"`
}

// UpdateStatusReq 更新活动状态请求
type UpdateStatusReq struct {
	ID     int64  `json:"id"`     // 活动ID
	Status string `json:"status"` // 目标状态
}

// TriggerReq 触发活动请求
type TriggerReq struct {
	ID           int64   `json:"id"`           // 活动ID
	CandidateIDs []int64 `json:"candidateIds"` // 候选客户ID，定时触发类活动可空
}

// TriggerResp 触发活动响应
type TriggerResp struct {
	Run CampaignRun `json:"run"`
}

// ListRunsReq 触发历史请求
type ListRunsReq struct {
	ID    int64 `json:"id"`    // 活动ID
	Limit int   `json:"limit"` // 返回条数上限
}

// ListRunsResp 触发历史响应
type ListRunsResp struct {
	Runs []CampaignRun `json:"runs"`
}

// CampaignRun 一次活动触发的执行记录
type CampaignRun struct {
	ID          uint64          `json:"id"`          // 运行记录ID
	CampaignID  int64           `json:"campaignId"`  // 活动ID
	TriggeredAt int64           `json:"triggeredAt"` // 触发时间
	Summary     DispatchSummary `json:"summary"`     // 派发聚合结果
}

// DispatchSummary 派发聚合结果
type DispatchSummary struct {
	Success bool `json:"success"` // 本次派发是否整体成功
	Total   int  `json:"total"`   // 候选客户总数
	Sent    int  `json:"sent"`    // 发送成功总数
	Failed  int  `json:"failed"`  // 发送失败总数
	Skipped int  `json:"skipped"` // 无可用渠道总数
}

func toCampaignVO(src domain.Campaign) Campaign {
	return Campaign{
		ID:             src.ID,
		Name:           src.Name,
		Type:           src.Type.String(),
		Status:         src.Status.String(),
		Template:       src.Template,
		Subject:        src.Subject,
		LinkURL:        src.LinkURL,
		LinkText:       src.LinkText,
		LookaheadDays:  src.LookaheadDays,
		InactiveDays:   src.InactiveDays,
		ExpiringInDays: int(src.ExpiringWithin / (24 * time.Hour)),
		Ctime:          src.Ctime,
		Utime:          src.Utime,
	}
}

func toRunVO(src domain.CampaignRun) CampaignRun {
	return CampaignRun{
		ID:          src.ID,
		CampaignID:  src.CampaignID,
		TriggeredAt: src.TriggeredAt.UnixMilli(),
		Summary: DispatchSummary{
			Success: src.Summary.Success,
			Total:   src.Summary.Total,
			Sent:    src.Summary.Sent,
			Failed:  src.Summary.Failed,
			Skipped: src.Summary.Skipped,
		},
	}
}
