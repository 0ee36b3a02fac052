package login

import (
	"strings"

	"tambua/infra/token"
)

// Home routes returned to the client after login.
const (
	HomeSupervisor = "/dashboard"
	HomeAgent      = "/agent-dashboard"
)

type Account struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"-"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Avatar       string `yaml:"avatar"`
}

func (a Account) Key() string { return strings.ToLower(a.Email) }

type RequestLogin struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResponseUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar"`
	AgentID string `json:"agent_id,omitempty"`
}

type ResponseLogin struct {
	Token string       `json:"token"`
	User  ResponseUser `json:"user"`
	Home  string       `json:"home"`
}

func HomeFor(role string) string {
	if role == token.RoleAgent {
		return HomeAgent
	}
	return HomeSupervisor
}
