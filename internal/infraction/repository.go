package infraction

import (
	"context"
	"strings"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateInfraction(ctx context.Context, arg Infraction) (Infraction, error)
	UpdateInfraction(ctx context.Context, id string, fn func(*Infraction) error) (Infraction, error)
	DeleteInfraction(ctx context.Context, id string) error
	GetInfractionById(ctx context.Context, id string) (Infraction, error)
	GetInfractionByCode(ctx context.Context, code string) (Infraction, error)
	ListInfractions(ctx context.Context) ([]Infraction, error)
}

type Repository struct {
	Table *database.Table[Infraction]
}

func NewInfractionRepository(seed []Infraction) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateInfraction(_ context.Context, arg Infraction) (Infraction, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Infraction{}, err
	}
	return arg, nil
}

func (r *Repository) UpdateInfraction(_ context.Context, id string, fn func(*Infraction) error) (Infraction, error) {
	return r.Table.Update(id, fn)
}

func (r *Repository) DeleteInfraction(_ context.Context, id string) error {
	return r.Table.Delete(id)
}

func (r *Repository) GetInfractionById(_ context.Context, id string) (Infraction, error) {
	return r.Table.Get(id)
}

func (r *Repository) GetInfractionByCode(_ context.Context, code string) (Infraction, error) {
	return r.Table.Find(func(i Infraction) bool {
		return strings.EqualFold(i.Code, strings.TrimSpace(code))
	})
}

func (r *Repository) ListInfractions(_ context.Context) ([]Infraction, error) {
	return r.Table.List(nil), nil
}
