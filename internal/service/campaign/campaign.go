package campaign

import (
	"context"
	"fmt"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/repository"
)

// campaignService 营销活动管理实现
type campaignService struct {
	repo    repository.CampaignRepository
	runRepo repository.CampaignRunRepository
}

// NewService 创建活动管理服务
func NewService(repo repository.CampaignRepository, runRepo repository.CampaignRunRepository) Service {
	return &campaignService{
		repo:    repo,
		runRepo: runRepo,
	}
}

func (s *campaignService) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if err := campaign.Validate(); err != nil {
		return domain.Campaign{}, err
	}
	campaign.Status = domain.CampaignStatusDraft
	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %w", errs.ErrCreateCampaignFailed, err)
	}
	return created, nil
}

func (s *campaignService) GetByID(ctx context.Context, id int64) (domain.Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *campaignService) UpdateStatus(ctx context.Context, id int64, status domain.CampaignStatus) error {
	campaign, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !campaign.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidCampaignTransition, campaign.Status, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *campaignService) ListRuns(ctx context.Context, campaignID int64, limit int) ([]domain.CampaignRun, error) {
	if _, err := s.repo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.runRepo.ListByCampaignID(ctx, campaignID, limit)
}
