package vehicle

import (
	"context"

	"tambua/infra/database"
	"tambua/validation"
)

type InterfaceRepository interface {
	CreateVehicle(ctx context.Context, arg Vehicle) (Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, fn func(*Vehicle) error) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	GetVehicleById(ctx context.Context, id string) (Vehicle, error)
	GetVehicleByPlate(ctx context.Context, plate string) (Vehicle, error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
}

type Repository struct {
	Table *database.Table[Vehicle]
}

func NewVehicleRepository(seed []Vehicle) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateVehicle(_ context.Context, arg Vehicle) (Vehicle, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Vehicle{}, err
	}
	return arg, nil
}

func (r *Repository) UpdateVehicle(_ context.Context, id string, fn func(*Vehicle) error) (Vehicle, error) {
	return r.Table.Update(id, fn)
}

func (r *Repository) DeleteVehicle(_ context.Context, id string) error {
	return r.Table.Delete(id)
}

func (r *Repository) GetVehicleById(_ context.Context, id string) (Vehicle, error) {
	return r.Table.Get(id)
}

func (r *Repository) GetVehicleByPlate(_ context.Context, plate string) (Vehicle, error) {
	return r.Table.Find(func(v Vehicle) bool {
		return validation.PlatesMatch(v.Plate, plate)
	})
}

func (r *Repository) ListVehicles(_ context.Context) ([]Vehicle, error) {
	return r.Table.List(nil), nil
}
