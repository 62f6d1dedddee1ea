package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conditions map[string]any, dest any) error
	GetAllBy(ctx context.Context, conditions map[string]any, dest any, preloads ...string) error
	GetAll(ctx context.Context, dest any, preloads ...string) error
	UpdateBy(ctx context.Context, model any, conditions map[string]any, values map[string]any) (int64, error)
	DeleteBy(ctx context.Context, model any, conditions map[string]any) (int64, error)
	Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
