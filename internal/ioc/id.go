package ioc

import (
	"crm-notification/internal/pkg/idgenerator"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16
	}
	cfg := Config{MachineID: 1}
	if econf.Get("snowflake") != nil {
		if err := econf.UnmarshalKey("snowflake", &cfg); err != nil {
			panic(err)
		}
	}
	return idgenerator.New(cfg.MachineID)
}
