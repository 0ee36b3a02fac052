package activity

import (
	"context"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateActivity(ctx context.Context, arg Activity) (Activity, error)
	ListActivities(ctx context.Context) ([]Activity, error)
}

type Repository struct {
	Table *database.Table[Activity]
}

func NewActivityRepository(seed []Activity) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateActivity(_ context.Context, arg Activity) (Activity, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Activity{}, err
	}
	return arg, nil
}

func (r *Repository) ListActivities(_ context.Context) ([]Activity, error) {
	return r.Table.List(nil), nil
}
