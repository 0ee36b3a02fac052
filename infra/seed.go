package infra

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"tambua/internal/activity"
	"tambua/internal/agent"
	"tambua/internal/fine"
	"tambua/internal/infraction"
	"tambua/internal/license"
	"tambua/internal/login"
	"tambua/internal/motorcycle"
	"tambua/internal/printing"
	"tambua/internal/vehicle"
	"tambua/validation"
)

//go:embed seed.yaml
var seedYAML []byte

type seedAccount struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Avatar   string `yaml:"avatar"`
}

// Seed is the data every repository starts from.
type Seed struct {
	Accounts    []login.Account         `yaml:"-"`
	Agents      []agent.Agent           `yaml:"agents"`
	Activities  []activity.Activity     `yaml:"activities"`
	Vehicles    []vehicle.Vehicle       `yaml:"vehicles"`
	Motorcycles []motorcycle.Motorcycle `yaml:"motorcycles"`
	Licenses    []license.License       `yaml:"licenses"`
	Fines       []fine.Fine             `yaml:"fines"`
	Infractions []infraction.Infraction `yaml:"infractions"`
	Impressions []printing.Impression   `yaml:"impressions"`
}

// LoadSeed decodes the embedded seed file and hashes the account passwords.
func LoadSeed(now time.Time) (Seed, error) {
	return ParseSeed(seedYAML, now)
}

func ParseSeed(b []byte, now time.Time) (Seed, error) {
	var raw struct {
		Seed     `yaml:",inline"`
		Accounts []seedAccount `yaml:"accounts"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Seed{}, fmt.Errorf("seed: %w", err)
	}

	seed := raw.Seed
	for _, a := range raw.Accounts {
		hash, err := login.HashPassword(a.Password)
		if err != nil {
			return Seed{}, fmt.Errorf("seed account %s: %w", a.Email, err)
		}
		seed.Accounts = append(seed.Accounts, login.Account{
			Email:        a.Email,
			PasswordHash: hash,
			Name:         a.Name,
			Role:         a.Role,
			Avatar:       a.Avatar,
		})
	}

	for i := range seed.Agents {
		if seed.Agents[i].CountersDay == "" {
			seed.Agents[i].CountersDay = now.Format(validation.DateLayout)
		}
	}
	for i := range seed.Infractions {
		if seed.Infractions[i].CreatedAt.IsZero() {
			seed.Infractions[i].CreatedAt = now
		}
		if seed.Infractions[i].UpdatedAt.IsZero() {
			seed.Infractions[i].UpdatedAt = now
		}
	}
	for i := range seed.Fines {
		if seed.Fines[i].Currency == "" {
			seed.Fines[i].Currency = fine.Currency
		}
	}
	return seed, nil
}
