package campaign

import (
	"context"
	"testing"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	repomocks "crm-notification/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("创建成功_初始状态为草稿", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		repo := repomocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, campaign domain.Campaign) (domain.Campaign, error) {
				assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
				campaign.ID = 1
				return campaign, nil
			})

		svc := NewService(repo, repomocks.NewMockCampaignRunRepository(ctrl))
		created, err := svc.Create(t.Context(), domain.Campaign{
			Name:     "夏季セール",
			Type:     domain.CampaignTypePromotion,
			Status:   domain.CampaignStatusActive, // 调用方传入的状态会被忽略
			Template: "{{name}}様、セール開催中",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, domain.CampaignStatusDraft, created.Status)
	})

	t.Run("配置非法拒绝创建", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		svc := NewService(
			repomocks.NewMockCampaignRepository(ctrl),
			repomocks.NewMockCampaignRunRepository(ctrl),
		)
		_, err := svc.Create(t.Context(), domain.Campaign{
			Name: "夏季セール",
			Type: domain.CampaignTypePromotion,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		current domain.CampaignStatus
		target  domain.CampaignStatus
		wantErr error
	}{
		{
			name:    "草稿启用成功",
			current: domain.CampaignStatusDraft,
			target:  domain.CampaignStatusActive,
			wantErr: nil,
		},
		{
			name:    "进行中暂停成功",
			current: domain.CampaignStatusActive,
			target:  domain.CampaignStatusPaused,
			wantErr: nil,
		},
		{
			name:    "草稿直接结束被拒绝",
			current: domain.CampaignStatusDraft,
			target:  domain.CampaignStatusCompleted,
			wantErr: errs.ErrInvalidCampaignTransition,
		},
		{
			name:    "已结束不能恢复",
			current: domain.CampaignStatusCompleted,
			target:  domain.CampaignStatusActive,
			wantErr: errs.ErrInvalidCampaignTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			repo := repomocks.NewMockCampaignRepository(ctrl)
			repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(domain.Campaign{
				ID:     1,
				Status: tc.current,
			}, nil)
			if tc.wantErr == nil {
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), tc.target).Return(nil)
			}

			svc := NewService(repo, repomocks.NewMockCampaignRunRepository(ctrl))
			err := svc.UpdateStatus(t.Context(), 1, tc.target)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestService_ListRuns(t *testing.T) {
	t.Parallel()

	t.Run("活动不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		repo := repomocks.NewMockCampaignRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), int64(404)).
			Return(domain.Campaign{}, errs.ErrCampaignNotFound)

		svc := NewService(repo, repomocks.NewMockCampaignRunRepository(ctrl))
		_, err := svc.ListRuns(t.Context(), 404, 10)
		assert.ErrorIs(t, err, errs.ErrCampaignNotFound)
	})
}
