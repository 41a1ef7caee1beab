package campaign

import (
	"context"
	"testing"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	idempotentmocks "crm-notification/internal/pkg/idempotent/mocks"
	"crm-notification/internal/pkg/idgenerator"
	repomocks "crm-notification/internal/repository/mocks"
	dispatchmocks "crm-notification/internal/service/dispatch/mocks"
	loyaltymocks "crm-notification/internal/service/loyalty/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evaluatorDeps struct {
	campaignRepo *repomocks.MockCampaignRepository
	runRepo      *repomocks.MockCampaignRunRepository
	customerRepo *repomocks.MockCustomerRepository
	loyaltySvc   *loyaltymocks.MockService
	dispatcher   *dispatchmocks.MockDispatcher
	idempotency  *idempotentmocks.MockIdempotencyService
}

func newTestEvaluator(t *testing.T, ctrl *gomock.Controller, now time.Time) (*triggerEvaluator, evaluatorDeps) {
	t.Helper()
	deps := evaluatorDeps{
		campaignRepo: repomocks.NewMockCampaignRepository(ctrl),
		runRepo:      repomocks.NewMockCampaignRunRepository(ctrl),
		customerRepo: repomocks.NewMockCustomerRepository(ctrl),
		loyaltySvc:   loyaltymocks.NewMockService(ctrl),
		dispatcher:   dispatchmocks.NewMockDispatcher(ctrl),
		idempotency:  idempotentmocks.NewMockIdempotencyService(ctrl),
	}
	evaluator := NewTriggerEvaluator(
		deps.campaignRepo,
		deps.runRepo,
		deps.customerRepo,
		deps.loyaltySvc,
		deps.dispatcher,
		deps.idempotency,
		idgenerator.New(1),
	).(*triggerEvaluator)
	evaluator.now = func() time.Time { return now }
	return evaluator, deps
}

func birthdayOn(month time.Month, day int) *time.Time {
	birthday := time.Date(1990, month, day, 0, 0, 0, 0, time.UTC)
	return &birthday
}

func TestTriggerEvaluator_Trigger(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 28, 10, 0, 0, 0, time.UTC)

	t.Run("生日窗口跨年圈选", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		campaign := domain.Campaign{
			ID:            1,
			Name:          "誕生日キャンペーン",
			Type:          domain.CampaignTypeBirthday,
			Status:        domain.CampaignStatusActive,
			Template:      "{{name}}様、お誕生日おめでとうございます",
			LookaheadDays: 7,
		}
		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(campaign, nil)
		deps.customerRepo.EXPECT().FindWithBirthday(gomock.Any()).Return([]domain.Customer{
			{ID: 1, Name: "当日", Birthday: birthdayOn(time.December, 28)},
			{ID: 2, Name: "跨年窗口内", Birthday: birthdayOn(time.January, 2)},
			{ID: 3, Name: "窗口边界", Birthday: birthdayOn(time.January, 4)},
			{ID: 4, Name: "已经过了", Birthday: birthdayOn(time.December, 20)},
			{ID: 5, Name: "窗口外", Birthday: birthdayOn(time.January, 5)},
		}, nil)
		deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch domain.DispatchBatch) (domain.DispatchSummary, error) {
				ids := make([]int64, 0, len(batch.Customers))
				for _, c := range batch.Customers {
					ids = append(ids, c.ID)
				}
				assert.Equal(t, []int64{1, 2, 3}, ids)
				return domain.DispatchSummary{Total: 3, Sent: 3, Success: true}, nil
			})
		deps.runRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
				assert.Equal(t, int64(1), run.CampaignID)
				assert.NotZero(t, run.ID)
				assert.Equal(t, 3, run.Summary.Sent)
				return run, nil
			})

		run, err := evaluator.Trigger(t.Context(), 1, nil)
		require.NoError(t, err)
		assert.True(t, run.Summary.Success)
		assert.Equal(t, now, run.TriggeredAt)
	})

	t.Run("沉睡唤醒按不活跃天数圈选", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		campaign := domain.Campaign{
			ID:           2,
			Type:         domain.CampaignTypeReEngagement,
			Status:       domain.CampaignStatusActive,
			Template:     "お久しぶりです",
			InactiveDays: 90,
		}
		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(campaign, nil)
		deps.customerRepo.EXPECT().FindInactiveSince(gomock.Any(), now.Add(-90*24*time.Hour)).
			Return([]domain.Customer{{ID: 10, Email: "a@example.com"}}, nil)
		deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(domain.DispatchSummary{Total: 1, Sent: 1, Success: true}, nil)
		deps.runRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
				return run, nil
			})

		_, err := evaluator.Trigger(t.Context(), 2, nil)
		require.NoError(t, err)
	})

	t.Run("积分到期经积分子系统圈选", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		campaign := domain.Campaign{
			ID:             3,
			Type:           domain.CampaignTypePointExpiration,
			Status:         domain.CampaignStatusActive,
			Template:       "{{points}}ポイントがまもなく失効します",
			ExpiringWithin: 30 * 24 * time.Hour,
		}
		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(campaign, nil)
		deps.loyaltySvc.EXPECT().FindCustomerIDsWithExpiringPoints(gomock.Any(), 30*24*time.Hour).
			Return([]int64{21, 22}, nil)
		deps.customerRepo.EXPECT().GetByIDs(gomock.Any(), []int64{21, 22}).
			Return([]domain.Customer{{ID: 21}, {ID: 22}}, nil)
		deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(domain.DispatchSummary{Total: 2, Sent: 2, Success: true}, nil)
		deps.runRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
				return run, nil
			})

		_, err := evaluator.Trigger(t.Context(), 3, nil)
		require.NoError(t, err)
	})

	t.Run("促销活动必须提供候选", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(domain.Campaign{
			ID:       4,
			Type:     domain.CampaignTypePromotion,
			Status:   domain.CampaignStatusActive,
			Template: "セール開催中",
		}, nil)

		_, err := evaluator.Trigger(t.Context(), 4, nil)
		assert.ErrorIs(t, err, errs.ErrCampaignCandidatesRequired)
	})

	t.Run("促销活动使用调用方候选", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(domain.Campaign{
			ID:       4,
			Type:     domain.CampaignTypePromotion,
			Status:   domain.CampaignStatusActive,
			Template: "セール開催中",
		}, nil)
		deps.customerRepo.EXPECT().GetByIDs(gomock.Any(), []int64{1, 2}).
			Return([]domain.Customer{{ID: 1}, {ID: 2}}, nil)
		deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(domain.DispatchSummary{Total: 2, Sent: 2, Success: true}, nil)
		deps.runRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
				return run, nil
			})

		_, err := evaluator.Trigger(t.Context(), 4, []int64{1, 2})
		require.NoError(t, err)
	})

	t.Run("非进行中活动拒绝触发", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(domain.Campaign{
			ID:     5,
			Type:   domain.CampaignTypePromotion,
			Status: domain.CampaignStatusPaused,
		}, nil)

		_, err := evaluator.Trigger(t.Context(), 5, []int64{1})
		assert.ErrorIs(t, err, errs.ErrCampaignNotActive)
	})
}

func TestTriggerEvaluator_TriggerScheduled(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC)

	t.Run("当天已触发过的活动跳过", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().FindActiveScheduled(gomock.Any()).Return([]domain.Campaign{
			{ID: 1, Type: domain.CampaignTypeReEngagement, Status: domain.CampaignStatusActive, Template: "t", InactiveDays: 90},
		}, nil)
		deps.idempotency.EXPECT().Exists(gomock.Any(), "campaign:trigger:1:2025-12-28").Return(true, nil)

		err := evaluator.TriggerScheduled(t.Context())
		assert.NoError(t, err)
	})

	t.Run("单个活动失败不影响其他活动", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().FindActiveScheduled(gomock.Any()).Return([]domain.Campaign{
			{ID: 1, Type: domain.CampaignTypeReEngagement, Status: domain.CampaignStatusActive, Template: "t", InactiveDays: 90},
			{ID: 2, Type: domain.CampaignTypeReEngagement, Status: domain.CampaignStatusActive, Template: "t", InactiveDays: 30},
		}, nil)
		deps.idempotency.EXPECT().Exists(gomock.Any(), "campaign:trigger:1:2025-12-28").Return(false, nil)
		deps.idempotency.EXPECT().Exists(gomock.Any(), "campaign:trigger:2:2025-12-28").Return(false, nil)

		// 活动1圈选失败
		deps.customerRepo.EXPECT().FindInactiveSince(gomock.Any(), now.Add(-90*24*time.Hour)).
			Return(nil, context.DeadlineExceeded)
		// 活动2正常完成
		deps.customerRepo.EXPECT().FindInactiveSince(gomock.Any(), now.Add(-30*24*time.Hour)).
			Return([]domain.Customer{{ID: 10, Email: "a@example.com"}}, nil)
		deps.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			Return(domain.DispatchSummary{Total: 1, Sent: 1, Success: true}, nil)
		deps.runRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, run domain.CampaignRun) (domain.CampaignRun, error) {
				return run, nil
			})

		err := evaluator.TriggerScheduled(t.Context())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("没有进行中的定时活动", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		evaluator, deps := newTestEvaluator(t, ctrl, now)

		deps.campaignRepo.EXPECT().FindActiveScheduled(gomock.Any()).Return(nil, nil)

		err := evaluator.TriggerScheduled(t.Context())
		assert.NoError(t, err)
	})
}

func TestBirthdayInWindow(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		birthday      time.Time
		now           time.Time
		lookaheadDays int
		want          bool
	}{
		{
			name:          "当天生日",
			birthday:      time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 0,
			want:          true,
		},
		{
			name:          "窗口最后一天",
			birthday:      time.Date(1990, 6, 22, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 7,
			want:          true,
		},
		{
			name:          "窗口外一天",
			birthday:      time.Date(1990, 6, 23, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 7,
			want:          false,
		},
		{
			name:          "昨天的生日不算",
			birthday:      time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 7,
			want:          false,
		},
		{
			name:          "跨年窗口命中元旦后",
			birthday:      time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 12, 28, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 7,
			want:          true,
		},
		{
			name:          "二月末窗口覆盖三月初",
			birthday:      time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC),
			now:           time.Date(2025, 2, 26, 12, 0, 0, 0, time.UTC),
			lookaheadDays: 5,
			want:          true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, birthdayInWindow(tc.birthday, tc.now, tc.lookaheadDays))
		})
	}
}
