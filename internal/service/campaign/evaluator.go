package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/pkg/idempotent"
	"crm-notification/internal/repository"
	"crm-notification/internal/service/dispatch"
	"crm-notification/internal/service/loyalty"
	"crm-notification/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/sony/sonyflake"
)

// triggerEvaluator 活动触发评估器实现
// 圈选逻辑按活动类型分派，派发和聚合交给dispatcher
type triggerEvaluator struct {
	campaignRepo repository.CampaignRepository
	runRepo      repository.CampaignRunRepository
	customerRepo repository.CustomerRepository
	loyaltySvc   loyalty.Service
	dispatcher   dispatch.Dispatcher
	idempotency  idempotent.IdempotencyService
	idGenerator  *sonyflake.Sonyflake
	logger       *elog.Component
	// now 便于测试时固定时间
	now func() time.Time
}

// NewTriggerEvaluator 创建活动触发评估器
func NewTriggerEvaluator(
	campaignRepo repository.CampaignRepository,
	runRepo repository.CampaignRunRepository,
	customerRepo repository.CustomerRepository,
	loyaltySvc loyalty.Service,
	dispatcher dispatch.Dispatcher,
	idempotency idempotent.IdempotencyService,
	idGenerator *sonyflake.Sonyflake,
) TriggerEvaluator {
	return &triggerEvaluator{
		campaignRepo: campaignRepo,
		runRepo:      runRepo,
		customerRepo: customerRepo,
		loyaltySvc:   loyaltySvc,
		dispatcher:   dispatcher,
		idempotency:  idempotency,
		idGenerator:  idGenerator,
		logger:       elog.DefaultLogger,
		now:          time.Now,
	}
}

func (e *triggerEvaluator) Trigger(ctx context.Context, campaignID int64, candidateIDs []int64) (domain.CampaignRun, error) {
	campaign, err := e.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return domain.CampaignRun{}, err
	}
	if campaign.Status != domain.CampaignStatusActive {
		return domain.CampaignRun{}, fmt.Errorf("%w: id = %d, status = %s",
			errs.ErrCampaignNotActive, campaignID, campaign.Status)
	}

	customers, err := e.selectCandidates(ctx, campaign, candidateIDs)
	if err != nil {
		return domain.CampaignRun{}, err
	}
	return e.dispatchAndRecord(ctx, campaign, customers)
}

func (e *triggerEvaluator) TriggerScheduled(ctx context.Context) error {
	campaigns, err := e.campaignRepo.FindActiveScheduled(ctx)
	if err != nil {
		return err
	}
	var errorList error
	for _, campaign := range campaigns {
		if err := e.triggerScheduledOne(ctx, campaign); err != nil {
			if errors.Is(err, errs.ErrCampaignAlreadyTriggered) {
				continue
			}
			e.logger.Error("定时触发活动失败",
				elog.Any("campaignID", campaign.ID),
				elog.String("type", campaign.Type.String()),
				elog.FieldErr(err))
			errorList = multierror.Append(errorList, err)
		}
	}
	return errorList
}

func (e *triggerEvaluator) triggerScheduledOne(ctx context.Context, campaign domain.Campaign) error {
	// 同一活动当天只触发一次，多实例部署下靠Redis去重
	key := e.dedupeKey(campaign.ID)
	exists, err := e.idempotency.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: id = %d, key = %s", errs.ErrCampaignAlreadyTriggered, campaign.ID, key)
	}

	customers, err := e.selectCandidates(ctx, campaign, nil)
	if err != nil {
		return err
	}
	run, err := e.dispatchAndRecord(ctx, campaign, customers)
	if err != nil {
		return err
	}
	e.logger.Info("定时触发活动完成",
		elog.Any("campaignID", campaign.ID),
		elog.String("type", campaign.Type.String()),
		elog.Any("total", run.Summary.Total),
		elog.Any("sent", run.Summary.Sent))
	return nil
}

func (e *triggerEvaluator) selectCandidates(ctx context.Context, campaign domain.Campaign, candidateIDs []int64) ([]domain.Customer, error) {
	// 调用方显式给出候选时直接使用
	if len(candidateIDs) > 0 {
		return e.customerRepo.GetByIDs(ctx, candidateIDs)
	}
	switch campaign.Type {
	case domain.CampaignTypeBirthday:
		return e.selectBirthdayCandidates(ctx, campaign)
	case domain.CampaignTypeReEngagement:
		before := e.now().Add(-time.Duration(campaign.InactiveDays) * 24 * time.Hour)
		return e.customerRepo.FindInactiveSince(ctx, before)
	case domain.CampaignTypePointExpiration:
		ids, err := e.loyaltySvc.FindCustomerIDsWithExpiringPoints(ctx, campaign.ExpiringWithin)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return nil, nil
		}
		return e.customerRepo.GetByIDs(ctx, ids)
	default:
		return nil, fmt.Errorf("%w: id = %d, type = %s",
			errs.ErrCampaignCandidatesRequired, campaign.ID, campaign.Type)
	}
}

func (e *triggerEvaluator) selectBirthdayCandidates(ctx context.Context, campaign domain.Campaign) ([]domain.Customer, error) {
	customers, err := e.customerRepo.FindWithBirthday(ctx)
	if err != nil {
		return nil, err
	}
	now := e.now()
	res := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.Birthday == nil {
			continue
		}
		if birthdayInWindow(*customer.Birthday, now, campaign.LookaheadDays) {
			res = append(res, customer)
		}
	}
	return res, nil
}

// birthdayInWindow 判断生日是否落在 [today, today+lookaheadDays] 内
// 逐天比较月和日，天然覆盖跨年场景(如12月28日查询1月2日的生日)
func birthdayInWindow(birthday, now time.Time, lookaheadDays int) bool {
	for offset := 0; offset <= lookaheadDays; offset++ {
		day := now.AddDate(0, 0, offset)
		if birthday.Month() == day.Month() && birthday.Day() == day.Day() {
			return true
		}
	}
	return false
}

func (e *triggerEvaluator) dispatchAndRecord(ctx context.Context, campaign domain.Campaign, customers []domain.Customer) (domain.CampaignRun, error) {
	summary, err := e.dispatcher.Dispatch(ctx, domain.DispatchBatch{
		Customers: customers,
		Template:  campaign.Template,
		Subject:   campaign.Subject,
		Params:    template.CustomerParams,
		CTA:       campaign.CTA(),
	})
	if err != nil {
		return domain.CampaignRun{}, err
	}

	id, err := e.idGenerator.NextID()
	if err != nil {
		return domain.CampaignRun{}, fmt.Errorf("%w: %w", errs.ErrCreateCampaignRunFailed, err)
	}
	run, err := e.runRepo.Create(ctx, domain.CampaignRun{
		ID:          id,
		CampaignID:  campaign.ID,
		TriggeredAt: e.now(),
		Summary:     summary,
	})
	if err != nil {
		// 派发已经完成，记录失败不应掩盖结果，只告警
		e.logger.Error("活动运行记录写入失败",
			elog.Any("campaignID", campaign.ID),
			elog.FieldErr(err))
		return domain.CampaignRun{
			CampaignID:  campaign.ID,
			TriggeredAt: e.now(),
			Summary:     summary,
		}, nil
	}
	return run, nil
}

func (e *triggerEvaluator) dedupeKey(campaignID int64) string {
	return fmt.Sprintf("campaign:trigger:%d:%s", campaignID, e.now().Format(time.DateOnly))
}
