package license

import (
	"context"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateLicense(ctx context.Context, arg License) (License, error)
	GetLicenseByNumber(ctx context.Context, number string) (License, error)
	ListLicenses(ctx context.Context) ([]License, error)
}

type Repository struct {
	Table *database.Table[License]
}

func NewLicenseRepository(seed []License) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateLicense(_ context.Context, arg License) (License, error) {
	if err := r.Table.Insert(arg); err != nil {
		return License{}, err
	}
	return arg, nil
}

func (r *Repository) GetLicenseByNumber(_ context.Context, number string) (License, error) {
	return r.Table.Get(number)
}

func (r *Repository) ListLicenses(_ context.Context) ([]License, error) {
	return r.Table.List(nil), nil
}
