package motorcycle

import (
	"context"

	"tambua/infra/database"
	"tambua/validation"
)

type InterfaceRepository interface {
	CreateMotorcycle(ctx context.Context, arg Motorcycle) (Motorcycle, error)
	UpdateMotorcycle(ctx context.Context, id string, fn func(*Motorcycle) error) (Motorcycle, error)
	DeleteMotorcycle(ctx context.Context, id string) error
	GetMotorcycleById(ctx context.Context, id string) (Motorcycle, error)
	GetMotorcycleByPlate(ctx context.Context, plate string) (Motorcycle, error)
	ListMotorcycles(ctx context.Context) ([]Motorcycle, error)
}

type Repository struct {
	Table *database.Table[Motorcycle]
}

func NewMotorcycleRepository(seed []Motorcycle) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateMotorcycle(_ context.Context, arg Motorcycle) (Motorcycle, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Motorcycle{}, err
	}
	return arg, nil
}

func (r *Repository) UpdateMotorcycle(_ context.Context, id string, fn func(*Motorcycle) error) (Motorcycle, error) {
	return r.Table.Update(id, fn)
}

func (r *Repository) DeleteMotorcycle(_ context.Context, id string) error {
	return r.Table.Delete(id)
}

func (r *Repository) GetMotorcycleById(_ context.Context, id string) (Motorcycle, error) {
	return r.Table.Get(id)
}

func (r *Repository) GetMotorcycleByPlate(_ context.Context, plate string) (Motorcycle, error) {
	return r.Table.Find(func(m Motorcycle) bool {
		return validation.PlatesMatch(m.Plate, plate)
	})
}

func (r *Repository) ListMotorcycles(_ context.Context) ([]Motorcycle, error) {
	return r.Table.List(nil), nil
}
