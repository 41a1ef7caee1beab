package channel

import (
	"crm-notification/internal/domain"
)

// Resolver 渠道解析器，根据客户当前的绑定状态决定唯一的触达渠道
// 平台身份优先于邮箱，两者都绑定时固定选平台，不可配置
type Resolver struct{}

// NewResolver 创建渠道解析器
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve 纯函数，无副作用
func (r *Resolver) Resolve(customer domain.Customer) domain.Channel {
	if customer.HasPlatformIdentity() {
		return domain.ChannelPlatform
	}
	if customer.HasEmail() {
		return domain.ChannelEmail
	}
	return domain.ChannelNone
}

// Recipient 取得已解析渠道对应的收件地址
func (r *Resolver) Recipient(customer domain.Customer, ch domain.Channel) string {
	switch ch {
	case domain.ChannelPlatform:
		return customer.Platform.ExternalID
	case domain.ChannelEmail:
		return customer.Email
	default:
		return ""
	}
}
