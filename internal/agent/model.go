package agent

import (
	"strings"
	"time"
	"unicode"

	"tambua/internal/activity"
	"tambua/validation"
)

type Agent struct {
	ID                  string `json:"id" yaml:"id"`
	Name                string `json:"name" yaml:"name"`
	Email               string `json:"email" yaml:"email"`
	Avatar              string `json:"avatar" yaml:"avatar"`
	Status              string `json:"status" yaml:"status"`
	RegistrationsToday  int    `json:"registrations_today" yaml:"registrations_today"`
	FinesCollectedToday int64  `json:"fines_collected_today" yaml:"fines_collected_today"`
	CountersDay         string `json:"-" yaml:"counters_day"`
}

func (a Agent) Key() string { return a.ID }

// CountersOn returns the agent with both daily counters zeroed unless they
// were last bumped on day.
func (a Agent) CountersOn(day time.Time) Agent {
	if a.CountersDay != day.Format(validation.DateLayout) {
		a.RegistrationsToday = 0
		a.FinesCollectedToday = 0
	}
	return a
}

type CreateAgentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"required,agent_status"`
}

type UpdateAgentRequest struct {
	ID     string `param:"id" json:"-"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"required,agent_status"`
}

type ListAgentsRequest struct {
	Search string `query:"search"`
}

type AgentDetailResponse struct {
	Agent
	Activities []activity.Activity `json:"activities"`
}

func (p *CreateAgentRequest) ParseCreateToAgent(id string, now time.Time) Agent {
	return Agent{
		ID:          id,
		Name:        strings.TrimSpace(p.Name),
		Email:       strings.TrimSpace(p.Email),
		Avatar:      Initials(p.Name),
		Status:      p.Status,
		CountersDay: now.Format(validation.DateLayout),
	}
}

// Initials is the first letter of the name and of its second word, upper case.
func Initials(name string) string {
	words := strings.Fields(name)
	var b strings.Builder
	for i, w := range words {
		if i > 1 {
			break
		}
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	return b.String()
}
