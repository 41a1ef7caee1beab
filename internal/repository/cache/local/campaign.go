package local

import (
	"fmt"
	"time"

	"crm-notification/internal/domain"
	"github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 5 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// CampaignCache 活动本地缓存
// 定时触发每个周期都会读活动配置，加一层进程内缓存挡掉重复查询
type CampaignCache struct {
	c *cache.Cache
}

// NewCampaignCache 创建活动本地缓存
func NewCampaignCache() *CampaignCache {
	return &CampaignCache{
		c: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get 获取缓存的活动
func (l *CampaignCache) Get(id int64) (domain.Campaign, bool) {
	val, ok := l.c.Get(l.key(id))
	if !ok {
		return domain.Campaign{}, false
	}
	campaign, ok := val.(domain.Campaign)
	return campaign, ok
}

// Set 写入缓存
func (l *CampaignCache) Set(campaign domain.Campaign) {
	l.c.SetDefault(l.key(campaign.ID), campaign)
}

// Del 删除缓存，状态变更后调用
func (l *CampaignCache) Del(id int64) {
	l.c.Delete(l.key(id))
}

func (l *CampaignCache) key(id int64) string {
	return fmt.Sprintf("campaign:%d", id)
}
