package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/pkg/idgenerator"
	"crm-notification/internal/service/channel"
	channelmocks "crm-notification/internal/service/channel/mocks"
	"crm-notification/internal/service/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatcher(t *testing.T, channelDispatcher channel.Channel, cfg Config) Dispatcher {
	t.Helper()
	return NewDispatcher(
		channel.NewResolver(),
		template.NewComposer(),
		channelDispatcher,
		idgenerator.New(1),
		cfg,
	)
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	platformCustomer := domain.Customer{
		ID:   1,
		Name: "田中",
		Platform: &domain.PlatformIdentity{
			Platform:   "line",
			ExternalID: "U0001",
		},
	}
	emailCustomer := domain.Customer{
		ID:    2,
		Name:  "鈴木",
		Email: "suzuki@example.com",
	}
	unreachableCustomer := domain.Customer{
		ID:    3,
		Name:  "佐藤",
		Phone: "090-0000-0000",
	}

	t.Run("混合批次_失败跳过互不影响", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)
		// 平台客户发送失败
		ch.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
				switch job.Channel {
				case domain.ChannelPlatform:
					return domain.DispatchOutcome{}, errors.New("推送接口超时")
				default:
					return domain.DispatchOutcome{
						CustomerID: job.CustomerID,
						Channel:    job.Channel,
						Status:     domain.OutcomeStatusSent,
					}, nil
				}
			}).Times(2)

		dispatcher := newTestDispatcher(t, ch, Config{})
		summary, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: []domain.Customer{platformCustomer, emailCustomer, unreachableCustomer},
			Template:  "{{name}}様、お知らせです",
			Params:    template.CustomerParams,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 1, summary.Sent)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 1, summary.Skipped)
		assert.True(t, summary.Success)
		assert.Equal(t, domain.ChannelCounter{Failed: 1}, summary.Channels[domain.ChannelPlatform])
		assert.Equal(t, domain.ChannelCounter{Sent: 1}, summary.Channels[domain.ChannelEmail])
		assert.Equal(t, domain.ChannelCounter{Skipped: 1}, summary.Channels[domain.ChannelNone])
	})

	t.Run("正文按客户逐个渲染", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)
		ch.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
				assert.Equal(t, "田中様、お知らせです", job.Body)
				assert.Equal(t, "U0001", job.Recipient)
				assert.NotZero(t, job.ID)
				return domain.DispatchOutcome{
					CustomerID: job.CustomerID,
					Channel:    job.Channel,
					Status:     domain.OutcomeStatusSent,
				}, nil
			})

		dispatcher := newTestDispatcher(t, ch, Config{})
		summary, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: []domain.Customer{platformCustomer},
			Template:  "{{name}}様、お知らせです",
			Params:    template.CustomerParams,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Sent)
	})

	t.Run("空候选列表不调用渠道", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)

		dispatcher := newTestDispatcher(t, ch, Config{})
		summary, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: nil,
			Template:  "お知らせです",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Total)
		assert.False(t, summary.Success)
	})

	t.Run("模板为空拒绝整批", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)

		dispatcher := newTestDispatcher(t, ch, Config{})
		_, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: []domain.Customer{platformCustomer},
		})
		assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	})

	t.Run("全部不可触达仍算成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)

		dispatcher := newTestDispatcher(t, ch, Config{})
		summary, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: []domain.Customer{unreachableCustomer},
			Template:  "お知らせです",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Skipped)
		assert.True(t, summary.Success)
	})

	t.Run("超过截止时间的任务记为超时失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		ch := channelmocks.NewMockChannel(ctrl)
		// 第一个任务阻塞到超时，邮件渠道并发为1时第二个任务轮不到发送
		ch.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job domain.NotificationJob) (domain.DispatchOutcome, error) {
				time.Sleep(100 * time.Millisecond)
				return domain.DispatchOutcome{}, context.DeadlineExceeded
			}).MinTimes(1)

		dispatcher := newTestDispatcher(t, ch, Config{
			EmailConcurrency: 1,
			Timeout:          50 * time.Millisecond,
		})
		summary, err := dispatcher.Dispatch(t.Context(), domain.DispatchBatch{
			Customers: []domain.Customer{
				emailCustomer,
				{ID: 4, Name: "高橋", Email: "takahashi@example.com"},
			},
			Template: "お知らせです",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Failed)
		assert.False(t, summary.Success)
	})
}
