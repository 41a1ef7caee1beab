package domain

import (
	"fmt"

	"crm-notification/internal/errs"
)

// Channel 触达渠道，按客户当前绑定状态推导，不落库
type Channel string

const (
	ChannelPlatform Channel = "PLATFORM" // 聊天平台推送
	ChannelEmail    Channel = "EMAIL"    // 邮件
	ChannelNone     Channel = "NONE"     // 无可用渠道
)

func (c Channel) String() string {
	return string(c)
}

// IsReachable 是否为可触达渠道
func (c Channel) IsReachable() bool {
	return c == ChannelPlatform || c == ChannelEmail
}

// CTA 行动号召链接，由各渠道自行决定展示方式
type CTA struct {
	URL   string // 链接地址
	Label string // 链接文案
}

// IsZero 是否未设置
func (c CTA) IsZero() bool {
	return c.URL == ""
}

// NotificationJob 单个客户的一次发送任务
// 仅在一次派发调用内存活，不持久化
type NotificationJob struct {
	ID         uint64  // 任务ID
	CustomerID int64   // 接收客户ID
	Channel    Channel // 已解析的发送渠道
	Recipient  string  // 渠道侧收件地址(平台用户ID或邮箱)
	Subject    string  // 邮件渠道使用的主题
	Body       string  // 渲染后的消息正文
	CTA        CTA     // 可选的行动号召
}

// OutcomeStatus 单条发送结果状态
type OutcomeStatus string

const (
	OutcomeStatusSent    OutcomeStatus = "SENT"    // 发送成功
	OutcomeStatusFailed  OutcomeStatus = "FAILED"  // 发送失败
	OutcomeStatusSkipped OutcomeStatus = "SKIPPED" // 无可用渠道，跳过
)

func (s OutcomeStatus) String() string {
	return string(s)
}

// DispatchOutcome 单个发送任务的结果
type DispatchOutcome struct {
	CustomerID  int64         // 接收客户ID
	Channel     Channel       // 实际使用的渠道
	Status      OutcomeStatus // 结果状态
	ErrorDetail string        // 失败时的错误详情
}

// ChannelCounter 单渠道的结果计数
type ChannelCounter struct {
	Sent    int // 发送成功数
	Failed  int // 发送失败数
	Skipped int // 跳过数
}

// DispatchSummary 一次派发调用的聚合结果，是派发调用唯一的长生命周期产物
type DispatchSummary struct {
	Total    int                        // 候选客户总数
	Sent     int                        // 发送成功总数
	Failed   int                        // 发送失败总数
	Skipped  int                        // 无可用渠道总数
	Channels map[Channel]ChannelCounter // 按渠道的计数
	// Success 规则：存在可触达候选且零成功时为 false；
	// 候选非空但全部不可触达不算操作失败，仍为 true；空候选为 false
	Success bool
}

// DispatchBatch 一次派发请求
type DispatchBatch struct {
	Customers []Customer // 候选客户
	Template  string     // 消息模板
	Subject   string     // 邮件主题，为空时渠道使用默认主题
	// Params 提供单个客户的模板参数，可为 nil
	Params func(Customer) map[string]string
	CTA    CTA // 可选的行动号召
}

// Validate 校验派发请求，空候选列表是合法的
func (b DispatchBatch) Validate() error {
	if b.Template == "" {
		return fmt.Errorf("%w: 消息模板为空", errs.ErrInvalidParameter)
	}
	if !b.CTA.IsZero() && b.CTA.Label == "" {
		return fmt.Errorf("%w: CTA 缺少文案", errs.ErrInvalidParameter)
	}
	return nil
}

// ParamsFor 取得单个客户的模板参数
func (b DispatchBatch) ParamsFor(c Customer) map[string]string {
	if b.Params == nil {
		return nil
	}
	return b.Params(c)
}
