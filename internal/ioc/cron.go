package ioc

import (
	"crm-notification/internal/service/campaign/task"
	"github.com/gotomicro/ego/task/ecron"
)

func Crons(t *task.TriggerCron) []ecron.Ecron {
	c1 := ecron.Load("cron.campaignTrigger").Build(ecron.WithJob(t.Do))
	return []ecron.Ecron{c1}
}
