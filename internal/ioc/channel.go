package ioc

import (
	"crm-notification/internal/domain"
	"crm-notification/internal/service/channel"
	"crm-notification/internal/service/channel/client"
	"github.com/go-kratos/aegis/circuitbreaker/sre"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

func InitPushClient() client.PushClient {
	type Config struct {
		AccessToken string
	}
	var cfg Config
	if err := econf.UnmarshalKey("platform", &cfg); err != nil {
		panic(err)
	}
	cli := ehttp.Load("http.platform").Build()
	return client.NewHTTPPushClient(cli, cfg.AccessToken)
}

func InitEmailClient() client.EmailClient {
	type Config struct {
		FromName    string
		FromAddress string
		Host        string
		Port        string
		Username    string
		Password    string
	}
	var cfg Config
	if err := econf.UnmarshalKey("email", &cfg); err != nil {
		panic(err)
	}
	return client.NewSMTPEmailClient(cfg.FromName, cfg.FromAddress,
		cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

// InitChannelDispatcher 组装渠道路由，每个渠道独立熔断
func InitChannelDispatcher(pushClient client.PushClient, emailClient client.EmailClient) channel.Channel {
	return channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelPlatform: channel.NewBreakerChannel(
			channel.NewPlatformChannel(pushClient), sre.NewBreaker()),
		domain.ChannelEmail: channel.NewBreakerChannel(
			channel.NewEmailChannel(emailClient), sre.NewBreaker()),
	})
}
