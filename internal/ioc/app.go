package ioc

import (
	"time"

	campaignweb "crm-notification/internal/handler/campaign"
	dispatchweb "crm-notification/internal/handler/dispatch"
	"crm-notification/internal/pkg/idempotent"
	"crm-notification/internal/pkg/ratelimit"
	"crm-notification/internal/repository"
	"crm-notification/internal/repository/cache/local"
	"crm-notification/internal/repository/dao"
	campaignsvc "crm-notification/internal/service/campaign"
	"crm-notification/internal/service/campaign/task"
	"crm-notification/internal/service/loyalty"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

const (
	apiRateLimitWindow = time.Second
	apiRateLimitRate   = 100
)

// App 应用组件集合
type App struct {
	GinServer *egin.Component
	Crons     []ecron.Ecron
}

// InitApp 手工组装整个应用
func InitApp() *App {
	db := InitDB()
	rdb := InitRedisClient()
	idGenerator := InitIDGenerator()

	customerRepo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db), local.NewCampaignCache())
	runRepo := repository.NewCampaignRunRepository(dao.NewCampaignRunDAO(db))

	dispatcher := InitDispatcher(
		InitChannelDispatcher(InitPushClient(), InitEmailClient()),
		idGenerator,
	)

	loyaltySvc := loyalty.NewHTTPService(ehttp.Load("http.loyalty").Build())
	campaignSvc := campaignsvc.NewService(campaignRepo, runRepo)
	evaluator := campaignsvc.NewTriggerEvaluator(
		campaignRepo,
		runRepo,
		customerRepo,
		loyaltySvc,
		dispatcher,
		idempotent.NewRedisIdempotencyService(rdb),
		idGenerator,
	)

	limiter := ratelimit.NewRedisSlidingWindowLimiter(rdb, apiRateLimitWindow, apiRateLimitRate)
	server := InitGinServer(
		dispatchweb.NewHandler(dispatcher, customerRepo, limiter),
		campaignweb.NewHandler(campaignSvc, evaluator),
	)

	trigger := task.NewTriggerCron(evaluator, InitDistributedLock(rdb))
	return &App{
		GinServer: server,
		Crons:     Crons(trigger),
	}
}
