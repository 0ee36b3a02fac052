package infraction

import (
	"strings"
	"time"

	"tambua/validation"
)

type Infraction struct {
	ID          string    `json:"id" yaml:"id"`
	Code        string    `json:"code" yaml:"code"`
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description" yaml:"description"`
	Severity    string    `json:"severity" yaml:"severity"`
	Amount      int64     `json:"amount" yaml:"amount"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func (i Infraction) Key() string { return i.ID }

type InfractionResponse struct {
	Infraction
	SeverityLabel string `json:"severity_label"`
}

func (i Infraction) Response() InfractionResponse {
	return InfractionResponse{Infraction: i, SeverityLabel: validation.SeverityLabel(i.Severity)}
}

type CreateInfractionRequest struct {
	Code        string `json:"code" validate:"required"`
	Label       string `json:"label" validate:"required"`
	Description string `json:"description"`
	Severity    string `json:"severity" validate:"required,severity"`
	Amount      int64  `json:"amount" validate:"gte=0"`
}

type UpdateInfractionRequest struct {
	ID string `param:"id" json:"-"`
	CreateInfractionRequest
}

func (p *CreateInfractionRequest) ParseCreateToInfraction(id string, now time.Time) Infraction {
	return Infraction{
		ID:          id,
		Code:        strings.ToUpper(strings.TrimSpace(p.Code)),
		Label:       strings.TrimSpace(p.Label),
		Description: strings.TrimSpace(p.Description),
		Severity:    p.Severity,
		Amount:      p.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
