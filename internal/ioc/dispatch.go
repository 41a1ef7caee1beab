package ioc

import (
	"time"

	"crm-notification/internal/service/channel"
	"crm-notification/internal/service/dispatch"
	"crm-notification/internal/service/template"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

// InitDispatcher 组装派发协调器，从内到外依次叠加指标和链路追踪装饰器
func InitDispatcher(channelDispatcher channel.Channel, idGenerator *sonyflake.Sonyflake) dispatch.Dispatcher {
	type Config struct {
		PlatformConcurrency int
		EmailConcurrency    int
		TimeoutSeconds      int
	}
	var cfg Config
	if econf.Get("dispatch") != nil {
		if err := econf.UnmarshalKey("dispatch", &cfg); err != nil {
			panic(err)
		}
	}
	base := dispatch.NewDispatcher(
		channel.NewResolver(),
		template.NewComposer(),
		channelDispatcher,
		idGenerator,
		dispatch.Config{
			PlatformConcurrency: cfg.PlatformConcurrency,
			EmailConcurrency:    cfg.EmailConcurrency,
			Timeout:             time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	)
	return dispatch.NewObservabilityDispatcher(dispatch.NewMetricsDispatcher(base))
}
