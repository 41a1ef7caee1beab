package idgenerator

import (
	"time"

	"github.com/sony/sonyflake"
)

// 基准时间 - 2024年1月1日
var startTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// New 创建雪花ID生成器，machineID用于多实例部署时区分节点
func New(machineID uint16) *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: startTime,
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
}
