package domain

import "time"

// LoyaltyTier 会员等级
type LoyaltyTier string

const (
	LoyaltyTierBronze LoyaltyTier = "BRONZE" // 普通会员
	LoyaltyTierSilver LoyaltyTier = "SILVER" // 银卡会员
	LoyaltyTierGold   LoyaltyTier = "GOLD"   // 金卡会员
)

// PlatformIdentity 客户在聊天平台上绑定的身份
// 一个客户在同一平台上至多绑定一个身份
type PlatformIdentity struct {
	Platform   string // 平台名称
	ExternalID string // 平台侧的用户标识
}

// Customer 客户领域模型，对本子系统只读
type Customer struct {
	ID           int64             // 客户唯一标识
	Name         string            // 显示名称
	Phone        string            // 手机号，可为空
	Email        string            // 邮箱地址，可为空
	Platform     *PlatformIdentity // 绑定的聊天平台身份，可为空
	Birthday     *time.Time        // 生日，可为空
	LoyaltyTier  LoyaltyTier       // 会员等级
	TotalSpend   int64             // 累计消费金额，单位分
	PointBalance int64             // 积分余额
	LastActiveAt time.Time         // 最近活跃时间
}

// HasPlatformIdentity 是否绑定了聊天平台身份
func (c Customer) HasPlatformIdentity() bool {
	return c.Platform != nil && c.Platform.ExternalID != ""
}

// HasEmail 是否有可用的邮箱地址
func (c Customer) HasEmail() bool {
	return c.Email != ""
}
