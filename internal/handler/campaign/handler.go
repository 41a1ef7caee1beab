package campaign

import (
	"errors"
	"time"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	campaignsvc "crm-notification/internal/service/campaign"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const defaultRunsLimit = 20

var _ ginx.Handler = &Handler{}

// Handler 营销活动管理接口
type Handler struct {
	svc       campaignsvc.Service
	evaluator campaignsvc.TriggerEvaluator
}

// NewHandler 创建活动管理接口处理器
func NewHandler(svc campaignsvc.Service, evaluator campaignsvc.TriggerEvaluator) *Handler {
	return &Handler{
		svc:       svc,
		evaluator: evaluator,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/campaigns")
	group.POST("/create", ginx.B(h.Create))
	group.POST("/detail", ginx.B(h.Detail))
	group.POST("/status", ginx.B(h.UpdateStatus))
	group.POST("/trigger", ginx.B(h.Trigger))
	group.POST("/runs/list", ginx.B(h.ListRuns))
}

// Create 创建活动
func (h *Handler) Create(ctx *ginx.Context, req CreateCampaignReq) (ginx.Result, error) {
	campaign, err := h.svc.Create(ctx.Request.Context(), domain.Campaign{
		Name:           req.Name,
		Type:           domain.CampaignType(req.Type),
		Template:       req.Template,
		Subject:        req.Subject,
		LinkURL:        req.LinkURL,
		LinkText:       req.LinkText,
		LookaheadDays:  req.LookaheadDays,
		InactiveDays:   req.InactiveDays,
		ExpiringWithin: time.Duration(req.ExpiringInDays) * 24 * time.Hour,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidParameter) {
			return ginx.Result{
				Code: 400001,
				Msg:  err.Error(),
			}, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateCampaignResp{
			Campaign: toCampaignVO(campaign),
		},
	}, nil
}

// Detail 获取活动详情
func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	campaign, err := h.svc.GetByID(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, errs.ErrCampaignNotFound) {
			return ginx.Result{
				Code: 404001,
				Msg:  err.Error(),
			}, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DetailResp{
			Campaign: toCampaignVO(campaign),
		},
	}, nil
}

// UpdateStatus 更新活动状态
func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.ID, domain.CampaignStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCampaignNotFound):
			return ginx.Result{
				Code: 404001,
				Msg:  err.Error(),
			}, err
		case errors.Is(err, errs.ErrInvalidCampaignTransition):
			return ginx.Result{
				Code: 400002,
				Msg:  err.Error(),
			}, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

// Trigger 手动触发一次活动
func (h *Handler) Trigger(ctx *ginx.Context, req TriggerReq) (ginx.Result, error) {
	run, err := h.evaluator.Trigger(ctx.Request.Context(), req.ID, req.CandidateIDs)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCampaignNotFound):
			return ginx.Result{
				Code: 404001,
				Msg:  err.Error(),
			}, err
		case errors.Is(err, errs.ErrCampaignNotActive),
			errors.Is(err, errs.ErrCampaignCandidatesRequired):
			return ginx.Result{
				Code: 400003,
				Msg:  err.Error(),
			}, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{
		Data: TriggerResp{
			Run: toRunVO(run),
		},
	}, nil
}

// ListRuns 查询活动的触发历史
func (h *Handler) ListRuns(ctx *ginx.Context, req ListRunsReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultRunsLimit
	}
	runs, err := h.svc.ListRuns(ctx.Request.Context(), req.ID, limit)
	if err != nil {
		if errors.Is(err, errs.ErrCampaignNotFound) {
			return ginx.Result{
				Code: 404001,
				Msg:  err.Error(),
			}, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListRunsResp{
			Runs: slice.Map(runs, func(_ int, src domain.CampaignRun) CampaignRun {
				return toRunVO(src)
			}),
		},
	}, nil
}
