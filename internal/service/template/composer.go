package template

import (
	"regexp"
	"strconv"

	"crm-notification/internal/domain"
)

// 占位符形如 {{name}}，允许字母数字下划线
var placeholderRegexp = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Composer 消息合成器，做字面量占位符替换
// 渲染失败开放处理：缺失变量的占位符原样保留，绝不因此中断发送
type Composer struct{}

// NewComposer 创建消息合成器
func NewComposer() *Composer {
	return &Composer{}
}

// Render 纯函数，输出与渠道无关的纯文本
func (c *Composer) Render(tpl string, params map[string]string) string {
	return placeholderRegexp.ReplaceAllStringFunc(tpl, func(match string) string {
		name := placeholderRegexp.FindStringSubmatch(match)[1]
		if v, ok := params[name]; ok {
			return v
		}
		// 缺失变量，原样保留
		return match
	})
}

// CustomerParams 客户的标准模板参数
func CustomerParams(customer domain.Customer) map[string]string {
	return map[string]string{
		"name":   customer.Name,
		"tier":   string(customer.LoyaltyTier),
		"points": strconv.FormatInt(customer.PointBalance, 10),
		"spend":  strconv.FormatInt(customer.TotalSpend, 10),
	}
}
