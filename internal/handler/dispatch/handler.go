package dispatch

import (
	"errors"

	"crm-notification/internal/domain"
	"crm-notification/internal/errs"
	"crm-notification/internal/pkg/ratelimit"
	"crm-notification/internal/repository"
	"crm-notification/internal/service/dispatch"
	"crm-notification/internal/service/template"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const rateLimitKey = "api:dispatch"

var _ ginx.Handler = &Handler{}

// Handler 批量派发接口
type Handler struct {
	svc          dispatch.Dispatcher
	customerRepo repository.CustomerRepository
	limiter      ratelimit.Limiter
}

// NewHandler 创建派发接口处理器
func NewHandler(svc dispatch.Dispatcher, customerRepo repository.CustomerRepository, limiter ratelimit.Limiter) *Handler {
	return &Handler{
		svc:          svc,
		customerRepo: customerRepo,
		limiter:      limiter,
	}
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	group := server.Group("/notifications")
	group.POST("/dispatch", ginx.B(h.Dispatch))
}

// Dispatch 对一批客户派发一条消息
func (h *Handler) Dispatch(ctx *ginx.Context, req DispatchReq) (ginx.Result, error) {
	limited, err := h.limiter.Limit(ctx.Request.Context(), rateLimitKey)
	if err != nil {
		// 限流器故障不拦截业务请求
		limited = false
	}
	if limited {
		return rateLimitedResult, errs.ErrChannelRateLimited
	}

	customers, err := h.customerRepo.GetByIDs(ctx.Request.Context(), req.CustomerIDs)
	if err != nil {
		return systemErrorResult, err
	}

	summary, err := h.svc.Dispatch(ctx.Request.Context(), domain.DispatchBatch{
		Customers: customers,
		Template:  req.MessageTemplate,
		Subject:   req.Subject,
		Params:    template.CustomerParams,
		CTA: domain.CTA{
			URL:   req.LinkURL,
			Label: req.LinkText,
		},
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
		Data: toDispatchResp(summary),
	}, nil
}
