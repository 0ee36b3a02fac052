package fine

import (
	"strings"
	"time"

	"tambua/validation"
)

const Currency = "CDF"

type Fine struct {
	ID            string     `json:"id" yaml:"id"`
	Plate         string     `json:"plate" yaml:"plate"`
	Reason        string     `json:"reason" yaml:"reason"`
	Driver        string     `json:"driver" yaml:"driver"`
	Location      string     `json:"location" yaml:"location"`
	Date          time.Time  `json:"date" yaml:"date"`
	Amount        int64      `json:"amount" yaml:"amount"`
	Currency      string     `json:"currency" yaml:"currency"`
	Status        string     `json:"status" yaml:"status"`
	Zone          string     `json:"zone" yaml:"zone"`
	PaidAt        *time.Time `json:"paid_at,omitempty" yaml:"paid_at,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty" yaml:"transaction_id,omitempty"`
}

func (f Fine) Key() string { return f.ID }

func (f Fine) IsPaid() bool { return f.Status == validation.FineStatusPaid }

type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Plate         string    `json:"plate"`
	Fines         []Fine    `json:"fines"`
	Total         int64     `json:"total"`
	Method        string    `json:"method"`
	Date          time.Time `json:"date"`
	AgentName     string    `json:"agent_name"`
}

func (r Receipt) Key() string { return r.TransactionID }

type CreateFineRequest struct {
	Plate    string `json:"plate" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
	Driver   string `json:"driver"`
	Location string `json:"location"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Zone     string `json:"zone"`
}

type UpdateFineRequest struct {
	ID     string `param:"id" json:"-"`
	Reason string `json:"reason" validate:"required"`
	Amount int64  `json:"amount" validate:"gte=0"`
	Status string `json:"status" validate:"required,fine_status"`
}

type ListFinesRequest struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

type UnpaidFinesRequest struct {
	Plate string `query:"plate" validate:"required"`
}

type PayFinesRequest struct {
	Plate   string   `json:"plate" validate:"required"`
	FineIDs []string `json:"fine_ids"`
	Method  string   `json:"method" validate:"required,payment_method"`
}

type PlateFinesResponse struct {
	Fines   []Fine `json:"fines"`
	Total   int64  `json:"total"`
	Pending int64  `json:"pending"`
}

func (p *CreateFineRequest) ParseCreateToFine(id string, now time.Time) Fine {
	return Fine{
		ID:       id,
		Plate:    validation.NormalizePlate(p.Plate),
		Reason:   strings.TrimSpace(p.Reason),
		Driver:   strings.TrimSpace(p.Driver),
		Location: strings.TrimSpace(p.Location),
		Date:     now,
		Amount:   p.Amount,
		Currency: Currency,
		Status:   validation.FineStatusPending,
		Zone:     p.Zone,
	}
}

// Summarize totals a plate's fines; pending covers every fine not yet paid.
func Summarize(fines []Fine) PlateFinesResponse {
	out := PlateFinesResponse{Fines: fines}
	for _, f := range fines {
		out.Total += f.Amount
		if !f.IsPaid() {
			out.Pending += f.Amount
		}
	}
	return out
}
