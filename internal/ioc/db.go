package ioc

import (
	"crm-notification/internal/repository/dao"
	"github.com/ego-component/egorm"
)

// InitDB 初始化数据库连接，DSN等配置取自配置文件的mysql段
func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
