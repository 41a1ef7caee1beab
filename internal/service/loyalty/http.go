package loyalty

import (
	"context"
	"fmt"
	"time"

	"crm-notification/internal/errs"
	"github.com/gotomicro/ego/client/ehttp"
)

const expiringPointsPath = "/loyalty/points/expiring"

// httpService 通过HTTP调用积分子系统
type httpService struct {
	cli *ehttp.Component
}

// NewHTTPService 创建积分子系统HTTP客户端
func NewHTTPService(cli *ehttp.Component) Service {
	return &httpService{
		cli: cli,
	}
}

func (s *httpService) FindCustomerIDsWithExpiringPoints(ctx context.Context, within time.Duration) ([]int64, error) {
	type expiringPointsReq struct {
		WithinDays int `json:"withinDays"`
	}
	type expiringPointsResp struct {
		CustomerIDs []int64 `json:"customerIds"`
	}
	var res expiringPointsResp
	resp, err := s.cli.R().
		SetContext(ctx).
		SetBody(expiringPointsReq{
			WithinDays: int(within / (24 * time.Hour)),
		}).
		SetResult(&res).
		Post(expiringPointsPath)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: 响应码 = %d", errs.ErrLoyaltyQueryFailed, resp.StatusCode())
	}
	return res.CustomerIDs, nil
}
