package dispatch

import (
	"crm-notification/internal/domain"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{Code: 501001, Msg: "系统错误"}
	rateLimitedResult = ginx.Result{Code: 429001, Msg: "请求过于频繁，请稍后重试"}
)

// DispatchReq 批量派发请求
type DispatchReq struct {
	CustomerIDs     []int64 `json:"customerIds"`     // 候选客户ID列表
	MessageTemplate string  `json:"messageTemplate"` // 消息模板
	Subject         string  `json:"subject"`         // 邮件主题，可空
	LinkURL         string  `json:"linkUrl"`         // 行动号召链接，可空
	LinkText        string  `json:"linkText"`        // 行动号召文案
}

// DispatchResp 批量派发响应
type DispatchResp struct {
	Success  bool                      `json:"success"`  // 本次派发是否整体成功
	Total    int                       `json:"total"`    // 候选客户总数
	Sent     int                       `json:"sent"`     // 发送成功总数
	Failed   int                       `json:"failed"`   // 发送失败总数
	Skipped  int                       `json:"skipped"`  // 无可用渠道总数
	Channels map[string]ChannelCounter `json:"channels"` // 按渠道的计数
}

// ChannelCounter 单渠道的结果计数
type ChannelCounter struct {
	Sent    int `json:"sent"`    // 发送成功数
	Failed  int `json:"failed"`  // 发送失败数
	Skipped int `json:"skipped"` // 跳过数
}

func toDispatchResp(summary domain.DispatchSummary) DispatchResp {
	channels := make(map[string]ChannelCounter, len(summary.Channels))
	for ch, counter := range summary.Channels {
		channels[ch.String()] = ChannelCounter{
			Sent:    counter.Sent,
			Failed:  counter.Failed,
			Skipped: counter.Skipped,
		}
	}
	return DispatchResp{
		Success:  summary.Success,
		Total:    summary.Total,
		Sent:     summary.Sent,
		Failed:   summary.Failed,
		Skipped:  summary.Skipped,
		Channels: channels,
	}
}
