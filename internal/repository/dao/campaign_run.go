package dao

import (
	"context"
	"fmt"
	"time"

	"crm-notification/internal/errs"
	"github.com/ego-component/egorm"
)

// CampaignRunDAO 活动运行记录表接口，只追加，用于审计
type CampaignRunDAO interface {
	// Create 创建运行记录
	Create(ctx context.Context, data CampaignRun) (CampaignRun, error)
	// FindByCampaignID 查询某活动的运行历史，按触发时间倒序
	FindByCampaignID(ctx context.Context, campaignID int64, limit int) ([]CampaignRun, error)
}

// CampaignRun 活动运行记录表
type CampaignRun struct {
	ID          uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	CampaignID  int64  `gorm:"type:BIGINT;NOT NULL;index:idx_campaign_id;comment:'活动ID'"`
	TriggeredAt int64  `gorm:"NOT NULL;comment:'触发时间，毫秒时间戳'"`
	Summary     string `gorm:"type:TEXT;NOT NULL;comment:'派发汇总，JSON'"`
	Ctime       int64
}

type campaignRunDAO struct {
	db *egorm.Component
}

// NewCampaignRunDAO 创建运行记录DAO实例
func NewCampaignRunDAO(db *egorm.Component) CampaignRunDAO {
	return &campaignRunDAO{
		db: db,
	}
}

func (d *campaignRunDAO) Create(ctx context.Context, data CampaignRun) (CampaignRun, error) {
	data.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return CampaignRun{}, fmt.Errorf("%w: %w", errs.ErrCreateCampaignRunFailed, err)
	}
	return data, nil
}

func (d *campaignRunDAO) FindByCampaignID(ctx context.Context, campaignID int64, limit int) ([]CampaignRun, error) {
	var runs []CampaignRun
	err := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("triggered_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
