package main

import (
	"crm-notification/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
)

func main() {
	app := ioc.InitApp()
	if err := ego.New().
		Serve(app.GinServer).
		Cron(app.Crons...).
		Run(); err != nil {
		elog.Panic("startup", elog.Any("err", err))
	}
}
