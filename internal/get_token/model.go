package get_token

import (
	"time"

	"github.com/google/uuid"
)

type PayloadDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Avatar   string    `json:"avatar"`
	AgentID  string    `json:"agent_id"`
	ExpiryAt time.Time `json:"expiry_at"`
}

// Actor is the operator name stamped on activities and print logs.
func (p PayloadDTO) Actor() string {
	if p.Name == "" {
		return "Inconnu"
	}
	return p.Name
}
