package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-notification/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// CampaignDAO 营销活动表接口
type CampaignDAO interface {
	// Create 创建活动记录
	Create(ctx context.Context, data Campaign) (Campaign, error)
	// GetByID 根据ID查询活动
	GetByID(ctx context.Context, id int64) (Campaign, error)
	// UpdateStatus 更新活动状态
	UpdateStatus(ctx context.Context, id int64, status string) error
	// FindByStatusAndTypes 按状态和类型查询活动列表
	FindByStatusAndTypes(ctx context.Context, status string, types []string) ([]Campaign, error)
}

// Campaign 营销活动表
type Campaign struct {
	ID             int64  `gorm:"primaryKey;autoIncrement;comment:'活动ID'"`
	Name           string `gorm:"type:VARCHAR(256);NOT NULL;comment:'活动名称'"`
	Type           string `gorm:"type:ENUM('BIRTHDAY','RE_ENGAGEMENT','POINT_EXPIRATION','PROMOTION','CUSTOM');NOT NULL;index:idx_status_type,priority:2;comment:'活动类型'"`
	Status         string `gorm:"type:ENUM('DRAFT','ACTIVE','PAUSED','COMPLETED');DEFAULT:'DRAFT';index:idx_status_type,priority:1;comment:'活动状态'"`
	Template       string `gorm:"type:TEXT;NOT NULL;comment:'消息模板'"`
	Subject        string `gorm:"type:VARCHAR(256);comment:'邮件主题'"`
	LinkURL        string `gorm:"type:VARCHAR(1024);comment:'行动号召链接'"`
	LinkText       string `gorm:"type:VARCHAR(128);comment:'行动号召文案'"`
	LookaheadDays  int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'生日活动的提前天数窗口'"`
	InactiveDays   int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'沉睡唤醒的不活跃天数阈值'"`
	ExpiringWithin int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'积分到期窗口，毫秒'"`
	Ctime          int64
	Utime          int64
}

type campaignDAO struct {
	db *egorm.Component
}

// NewCampaignDAO 创建活动DAO实例
func NewCampaignDAO(db *egorm.Component) CampaignDAO {
	return &campaignDAO{
		db: db,
	}
}

func (d *campaignDAO) Create(ctx context.Context, data Campaign) (Campaign, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return Campaign{}, fmt.Errorf("%w: %w", errs.ErrCreateCampaignFailed, err)
	}
	return data, nil
}

func (d *campaignDAO) GetByID(ctx context.Context, id int64) (Campaign, error) {
	var data Campaign
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Campaign{}, fmt.Errorf("%w: id = %d", errs.ErrCampaignNotFound, id)
		}
		return Campaign{}, err
	}
	return data, nil
}

func (d *campaignDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	result := d.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrCampaignNotFound, id)
	}
	return nil
}

func (d *campaignDAO) FindByStatusAndTypes(ctx context.Context, status string, types []string) ([]Campaign, error) {
	var campaigns []Campaign
	query := d.db.WithContext(ctx).Where("status = ?", status)
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}
	err := query.Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}
