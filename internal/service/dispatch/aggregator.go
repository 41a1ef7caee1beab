package dispatch

import (
	"crm-notification/internal/domain"
)

// Aggregate 把单条结果归约成渠道级和总体计数
// 纯归约，对 outcomes 的顺序不敏感
// Success 规则：候选为空为 false；存在可触达候选且零成功为 false；
// 全部不可触达不算操作失败，仍为 true
func Aggregate(total int, outcomes []domain.DispatchOutcome) domain.DispatchSummary {
	summary := domain.DispatchSummary{
		Total:    total,
		Channels: make(map[domain.Channel]domain.ChannelCounter),
	}

	for _, o := range outcomes {
		counter := summary.Channels[o.Channel]
		switch o.Status {
		case domain.OutcomeStatusSent:
			summary.Sent++
			counter.Sent++
		case domain.OutcomeStatusFailed:
			summary.Failed++
			counter.Failed++
		case domain.OutcomeStatusSkipped:
			summary.Skipped++
			counter.Skipped++
		}
		summary.Channels[o.Channel] = counter
	}

	reachable := summary.Sent + summary.Failed
	summary.Success = summary.Sent > 0 || (total > 0 && reachable == 0)
	return summary
}
