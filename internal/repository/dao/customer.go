package dao

import (
	"context"
	"fmt"
	"time"

	"crm-notification/internal/errs"
	"github.com/ego-component/egorm"
)

// CustomerDAO 客户表读接口，客户数据归属会员子系统，本子系统只读
type CustomerDAO interface {
	// BatchGetByIDs 根据ID列表查询客户
	BatchGetByIDs(ctx context.Context, ids []int64) ([]Customer, error)
	// FindWithBirthday 查询填写了生日的客户
	FindWithBirthday(ctx context.Context) ([]Customer, error)
	// FindInactiveSince 查询最近活跃时间早于指定时间的客户
	FindInactiveSince(ctx context.Context, before time.Time) ([]Customer, error)
}

// Customer 客户表
type Customer struct {
	ID           int64      `gorm:"primaryKey;comment:'客户ID'"`
	Name         string     `gorm:"type:VARCHAR(128);NOT NULL;comment:'显示名称'"`
	Phone        string     `gorm:"type:VARCHAR(32);comment:'手机号'"`
	Email        string     `gorm:"type:VARCHAR(256);comment:'邮箱地址'"`
	Platform     string     `gorm:"type:VARCHAR(32);comment:'绑定的聊天平台名称'"`
	PlatformUID  string     `gorm:"type:VARCHAR(128);index:idx_platform_uid;comment:'平台侧用户标识，同一平台至多绑定一个'"`
	Birthday     *time.Time `gorm:"type:DATE;comment:'生日'"`
	LoyaltyTier  string     `gorm:"type:ENUM('BRONZE','SILVER','GOLD');DEFAULT:'BRONZE';comment:'会员等级'"`
	TotalSpend   int64      `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'累计消费金额，单位分'"`
	PointBalance int64      `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;comment:'积分余额'"`
	LastActiveAt int64      `gorm:"index:idx_last_active;comment:'最近活跃时间，毫秒时间戳'"`
	Ctime        int64
	Utime        int64
}

type customerDAO struct {
	db *egorm.Component
}

// NewCustomerDAO 创建客户DAO实例
func NewCustomerDAO(db *egorm.Component) CustomerDAO {
	return &customerDAO{
		db: db,
	}
}

func (d *customerDAO) BatchGetByIDs(ctx context.Context, ids []int64) ([]Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var customers []Customer
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCustomerNotFound, err)
	}
	return customers, nil
}

func (d *customerDAO) FindWithBirthday(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := d.db.WithContext(ctx).Where("birthday IS NOT NULL").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (d *customerDAO) FindInactiveSince(ctx context.Context, before time.Time) ([]Customer, error) {
	var customers []Customer
	err := d.db.WithContext(ctx).Where("last_active_at < ?", before.UnixMilli()).Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
