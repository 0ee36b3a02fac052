package agent

import (
	"context"
	"strings"

	"tambua/infra/database"
)

type InterfaceRepository interface {
	CreateAgent(ctx context.Context, arg Agent) (Agent, error)
	UpdateAgent(ctx context.Context, id string, fn func(*Agent) error) (Agent, error)
	DeleteAgent(ctx context.Context, id string) error
	GetAgentById(ctx context.Context, id string) (Agent, error)
	GetAgentByEmail(ctx context.Context, email string) (Agent, error)
	ListAgents(ctx context.Context) ([]Agent, error)
}

type Repository struct {
	Table *database.Table[Agent]
}

func NewAgentRepository(seed []Agent) *Repository {
	return &Repository{Table: database.NewTable(seed...)}
}

func (r *Repository) CreateAgent(_ context.Context, arg Agent) (Agent, error) {
	if err := r.Table.Insert(arg); err != nil {
		return Agent{}, err
	}
	return arg, nil
}

func (r *Repository) UpdateAgent(_ context.Context, id string, fn func(*Agent) error) (Agent, error) {
	return r.Table.Update(id, fn)
}

func (r *Repository) DeleteAgent(_ context.Context, id string) error {
	return r.Table.Delete(id)
}

func (r *Repository) GetAgentById(_ context.Context, id string) (Agent, error) {
	return r.Table.Get(id)
}

func (r *Repository) GetAgentByEmail(_ context.Context, email string) (Agent, error) {
	return r.Table.Find(func(a Agent) bool {
		return strings.EqualFold(a.Email, strings.TrimSpace(email))
	})
}

func (r *Repository) ListAgents(_ context.Context) ([]Agent, error) {
	return r.Table.List(nil), nil
}
