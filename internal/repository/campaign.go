package repository

import (
	"context"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/repository/cache/local"
	"crm-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// CampaignRepository 营销活动仓储接口
//
//go:generate mockgen -source=./campaign.go -destination=./mocks/campaign.mock.go -package=repomocks -typed CampaignRepository
type CampaignRepository interface {
	// Create 创建活动
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	// GetByID 根据ID获取活动
	GetByID(ctx context.Context, id int64) (domain.Campaign, error)
	// UpdateStatus 更新活动状态
	UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error
	// FindActiveScheduled 获取所有进行中的定时触发类活动
	FindActiveScheduled(ctx context.Context) ([]domain.Campaign, error)
}

// campaignRepository 营销活动仓储实现，读路径带进程内缓存
type campaignRepository struct {
	dao   dao.CampaignDAO
	cache *local.CampaignCache
}

// NewCampaignRepository 创建活动仓储实例
func NewCampaignRepository(d dao.CampaignDAO, c *local.CampaignCache) CampaignRepository {
	return &campaignRepository{
		dao:   d,
		cache: c,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Create(ctx, r.toEntity(campaign))
	if err != nil {
		return domain.Campaign{}, err
	}
	return r.toDomain(created), nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (domain.Campaign, error) {
	if campaign, ok := r.cache.Get(id); ok {
		return campaign, nil
	}
	entity, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	campaign := r.toDomain(entity)
	r.cache.Set(campaign)
	return campaign, nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, status.String()); err != nil {
		return err
	}
	r.cache.Del(id)
	return nil
}

func (r *campaignRepository) FindActiveScheduled(ctx context.Context) ([]domain.Campaign, error) {
	types := []string{
		domain.CampaignTypeBirthday.String(),
		domain.CampaignTypeReEngagement.String(),
		domain.CampaignTypePointExpiration.String(),
	}
	entities, err := r.dao.FindByStatusAndTypes(ctx, domain.CampaignStatusActive.String(), types)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Campaign) domain.Campaign {
		return r.toDomain(src)
	}), nil
}

func (r *campaignRepository) toEntity(campaign domain.Campaign) dao.Campaign {
	return dao.Campaign{
		ID:             campaign.ID,
		Name:           campaign.Name,
		Type:           campaign.Type.String(),
		Status:         campaign.Status.String(),
		Template:       campaign.Template,
		Subject:        campaign.Subject,
		LinkURL:        campaign.LinkURL,
		LinkText:       campaign.LinkText,
		LookaheadDays:  campaign.LookaheadDays,
		InactiveDays:   campaign.InactiveDays,
		ExpiringWithin: campaign.ExpiringWithin.Milliseconds(),
	}
}

func (r *campaignRepository) toDomain(entity dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:             entity.ID,
		Name:           entity.Name,
		Type:           domain.CampaignType(entity.Type),
		Status:         domain.CampaignStatus(entity.Status),
		Template:       entity.Template,
		Subject:        entity.Subject,
		LinkURL:        entity.LinkURL,
		LinkText:       entity.LinkText,
		LookaheadDays:  entity.LookaheadDays,
		InactiveDays:   entity.InactiveDays,
		ExpiringWithin: time.Duration(entity.ExpiringWithin) * time.Millisecond,
		Ctime:          entity.Ctime,
		Utime:          entity.Utime,
	}
}
