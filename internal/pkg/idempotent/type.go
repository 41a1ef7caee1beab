package idempotent

import "context"

//go:generate mockgen -source=./type.go -package=idempotentmocks -destination=./mocks/idempotent.mock.go -typed IdempotencyService
type IdempotencyService interface {
	Exists(ctx context.Context, keys string) (bool, error)
	MExists(ctx context.Context, key ...string) ([]bool, error)
}
