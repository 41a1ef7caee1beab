package ioc

import (
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/server/egin"
)

// InitGinServer 初始化HTTP服务并注册路由
func InitGinServer(handlers ...ginx.Handler) *egin.Component {
	server := egin.Load("server").Build()
	for _, h := range handlers {
		h.PublicRoutes(server.Engine)
	}
	return server
}
