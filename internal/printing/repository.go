package printing

import (
	"context"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateImpression(ctx context.Context, arg Impression) (Impression, error)
	ListImpressions(ctx context.Context) ([]Impression, error)
}

type Repository struct {
	Table *database.Table[Impression]
}

func NewPrintingRepository(seed []Impression) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateImpression(_ context.Context, arg Impression) (Impression, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Impression{}, err
	}
	return arg, nil
}

func (r *Repository) ListImpressions(_ context.Context) ([]Impression, error) {
	return r.Table.List(nil), nil
}
