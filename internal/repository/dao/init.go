package dao

import (
	"gorm.io/gorm"
)

// InitTables 初始化本子系统使用的表
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Campaign{},
		&CampaignRun{},
	)
}
