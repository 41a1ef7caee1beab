package repository

import (
	"context"
	"encoding/json"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

// CampaignRunRepository 活动运行记录仓储接口
//
//go:generate mockgen -source=./campaign_run.go -destination=./mocks/campaign_run.mock.go -package=repomocks -typed CampaignRunRepository
type CampaignRunRepository interface {
	// Create 创建一条运行记录
	Create(ctx context.Context, run domain.CampaignRun) (domain.CampaignRun, error)
	// ListByCampaignID 查询某活动的运行历史
	ListByCampaignID(ctx context.Context, campaignID int64, limit int) ([]domain.CampaignRun, error)
}

// campaignRunRepository 活动运行记录仓储实现
type campaignRunRepository struct {
	dao dao.CampaignRunDAO
}

// NewCampaignRunRepository 创建运行记录仓储实例
func NewCampaignRunRepository(d dao.CampaignRunDAO) CampaignRunRepository {
	return &campaignRunRepository{
		dao: d,
	}
}

func (r *campaignRunRepository) Create(ctx context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
	summary, err := json.Marshal(run.Summary)
	if err != nil {
		return domain.CampaignRun{}, err
	}
	created, err := r.dao.Create(ctx, dao.CampaignRun{
		ID:          run.ID,
		CampaignID:  run.CampaignID,
		TriggeredAt: run.TriggeredAt.UnixMilli(),
		Summary:     string(summary),
	})
	if err != nil {
		return domain.CampaignRun{}, err
	}
	run.ID = created.ID
	return run, nil
}

func (r *campaignRunRepository) ListByCampaignID(ctx context.Context, campaignID int64, limit int) ([]domain.CampaignRun, error) {
	entities, err := r.dao.FindByCampaignID(ctx, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.CampaignRun) domain.CampaignRun {
		var summary domain.DispatchSummary
		// 历史记录里的汇总解析失败不阻断查询
		_ = json.Unmarshal([]byte(src.Summary), &summary)
		return domain.CampaignRun{
			ID:          src.ID,
			CampaignID:  src.CampaignID,
			TriggeredAt: time.UnixMilli(src.TriggeredAt),
			Summary:     summary,
		}
	}), nil
}
