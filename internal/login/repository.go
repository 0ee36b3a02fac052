package login

import (
	"context"
	"strings"

	"tambua/infra/database"
)

type RepositoryInterface interface {
	GetAccount(ctx context.Context, email string) (Account, error)
}

type Repository struct {
	Table *database.Table[Account]
}

func NewRepository(accounts []Account) *Repository {
	return &Repository{Table: database.NewTable(accounts...)}
}

func (r *Repository) GetAccount(_ context.Context, email string) (Account, error) {
	return r.Table.Get(strings.ToLower(strings.TrimSpace(email)))
}
