package fine

import (
	"context"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateFine(ctx context.Context, arg Fine) (Fine, error)
	UpdateFine(ctx context.Context, id string, fn func(*Fine) error) (Fine, error)
	DeleteFine(ctx context.Context, id string) error
	GetFineById(ctx context.Context, id string) (Fine, error)
	ListFines(ctx context.Context, filter func(Fine) bool) ([]Fine, error)
	CreateReceipt(ctx context.Context, arg Receipt) (Receipt, error)
	GetReceipt(ctx context.Context, transactionID string) (Receipt, error)
}

type Repository struct {
	Fines    *database.Table[Fine]
	Receipts *database.Table[Receipt]
}

func NewFineRepository(seed []Fine) *Repository {
	return &Repository{
		Fines:    database.NewTable(seed...),
		Receipts: database.NewTable[Receipt](),
	}
}

func (r *Repository) CreateFine(_ context.Context, arg Fine) (Fine, error) {
	if err := r.Fines.Insert(arg); err != nil {
		return Fine{}, err
	}
	return arg, nil
}

func (r *Repository) UpdateFine(_ context.Context, id string, fn func(*Fine) error) (Fine, error) {
	return r.Fines.Update(id, fn)
}

func (r *Repository) DeleteFine(_ context.Context, id string) error {
	return r.Fines.Delete(id)
}

func (r *Repository) GetFineById(_ context.Context, id string) (Fine, error) {
	return r.Fines.Get(id)
}

func (r *Repository) ListFines(_ context.Context, filter func(Fine) bool) ([]Fine, error) {
	return r.Fines.List(filter), nil
}

func (r *Repository) CreateReceipt(_ context.Context, arg Receipt) (Receipt, error) {
	if err := r.Receipts.Insert(arg); err != nil {
		return Receipt{}, err
	}
	return arg, nil
}

func (r *Repository) GetReceipt(_ context.Context, transactionID string) (Receipt, error) {
	return r.Receipts.Get(transactionID)
}
