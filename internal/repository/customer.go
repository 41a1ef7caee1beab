package repository

import (
	"context"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// CustomerRepository 客户仓储接口，对本子系统只读
//
//go:generate mockgen -source=./customer.go -destination=./mocks/customer.mock.go -package=repomocks -typed CustomerRepository
type CustomerRepository interface {
	// GetByIDs 根据ID列表获取客户
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Customer, error)
	// FindWithBirthday 获取填写了生日的客户
	FindWithBirthday(ctx context.Context) ([]domain.Customer, error)
	// FindInactiveSince 获取最近活跃时间早于指定时间的客户
	FindInactiveSince(ctx context.Context, before time.Time) ([]domain.Customer, error)
}

// customerRepository 客户仓储实现
type customerRepository struct {
	dao dao.CustomerDAO
}

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(d dao.CustomerDAO) CustomerRepository {
	return &customerRepository{
		dao: d,
	}
}

func (r *customerRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Customer, error) {
	customers, err := r.dao.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(customers), nil
}

func (r *customerRepository) FindWithBirthday(ctx context.Context) ([]domain.Customer, error) {
	customers, err := r.dao.FindWithBirthday(ctx)
	if err != nil {
		return nil, err
	}
	return r.toDomains(customers), nil
}

func (r *customerRepository) FindInactiveSince(ctx context.Context, before time.Time) ([]domain.Customer, error) {
	customers, err := r.dao.FindInactiveSince(ctx, before)
	if err != nil {
		return nil, err
	}
	return r.toDomains(customers), nil
}

func (r *customerRepository) toDomains(entities []dao.Customer) []domain.Customer {
	return slice.Map(entities, func(_ int, src dao.Customer) domain.Customer {
		return r.toDomain(src)
	})
}

func (r *customerRepository) toDomain(entity dao.Customer) domain.Customer {
	customer := domain.Customer{
		ID:           entity.ID,
		Name:         entity.Name,
		Phone:        entity.Phone,
		Email:        entity.Email,
		Birthday:     entity.Birthday,
		LoyaltyTier:  domain.LoyaltyTier(entity.LoyaltyTier),
		TotalSpend:   entity.TotalSpend,
		PointBalance: entity.PointBalance,
		LastActiveAt: time.UnixMilli(entity.LastActiveAt),
	}
	if entity.PlatformUID != "" {
		customer.Platform = &domain.PlatformIdentity{
			Platform:   entity.Platform,
			ExternalID: entity.PlatformUID,
		}
	}
	return customer
}
