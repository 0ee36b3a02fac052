package license

import (
	"sort"
	"strings"
	"time"

	"tambua/validation"
)

const (
	DefaultNationality  = "Congolaise (RDC)"
	DefaultAuthority    = "CNPC/RDC"
	DefaultRestrictions = "Aucune"
	DefaultZone         = "Goma"
)

type License struct {
	LicenseNumber string   `json:"license_number" yaml:"license_number"`
	LastName      string   `json:"last_name" yaml:"last_name"`
	FirstName     string   `json:"first_name" yaml:"first_name"`
	DateOfBirth   string   `json:"dob" yaml:"dob"`
	IssueDate     string   `json:"issue_date" yaml:"issue_date"`
	ExpiryDate    string   `json:"expiry_date" yaml:"expiry_date"`
	Categories    []string `json:"categories" yaml:"categories"`
	Photo         string   `json:"photo_url" yaml:"photo_url"`
	Nationality   string   `json:"nationality" yaml:"nationality"`
	Authority     string   `json:"authority" yaml:"authority"`
	Restrictions  string   `json:"restrictions" yaml:"restrictions"`
	Address       string   `json:"address,omitempty" yaml:"address,omitempty"`
	Phone         string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email         string   `json:"email,omitempty" yaml:"email,omitempty"`
	NIN           string   `json:"nin,omitempty" yaml:"nin,omitempty"`
	Zone          string   `json:"zone" yaml:"zone"`
	RegisteredBy  string   `json:"registered_by,omitempty" yaml:"registered_by,omitempty"`
}

func (l License) Key() string { return l.LicenseNumber }

type RegisterLicenseRequest struct {
	Nom           string   `json:"nom" validate:"required"`
	Prenom        string   `json:"prenom" validate:"required"`
	DateNaissance string   `json:"date_naissance" validate:"required"`
	Adresse       string   `json:"adresse"`
	Tel           string   `json:"tel"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Nin           string   `json:"nin"`
	Autorite      string   `json:"autorite"`
	Restrictions  string   `json:"restrictions"`
	Categories    []string `json:"categories" validate:"dive,license_category"`
	Zone          string   `json:"zone"`
	Photo         string   `json:"photo"`
}

type ListLicensesRequest struct {
	Search string `query:"search"`
}

// ExpiryFor is the last valid day of a five year license.
func ExpiryFor(issue time.Time) time.Time {
	return issue.AddDate(5, 0, -1)
}

func (p *RegisterLicenseRequest) ParseRegisterToLicense(number, photo, registeredBy string, dob, issue time.Time) License {
	authority := strings.TrimSpace(p.Autorite)
	if authority == "" {
		authority = DefaultAuthority
	}
	restrictions := strings.TrimSpace(p.Restrictions)
	if restrictions == "" {
		restrictions = DefaultRestrictions
	}
	zone := p.Zone
	if zone == "" {
		zone = DefaultZone
	}
	return License{
		LicenseNumber: number,
		LastName:      strings.TrimSpace(p.Nom),
		FirstName:     strings.TrimSpace(p.Prenom),
		DateOfBirth:   dob.Format(validation.DateLayout),
		IssueDate:     issue.Format(validation.DateLayout),
		ExpiryDate:    ExpiryFor(issue).Format(validation.DateLayout),
		Categories:    normalizeCategories(p.Categories),
		Photo:         photo,
		Nationality:   DefaultNationality,
		Authority:     authority,
		Restrictions:  restrictions,
		Address:       strings.TrimSpace(p.Adresse),
		Phone:         strings.TrimSpace(p.Tel),
		Email:         strings.TrimSpace(p.Email),
		NIN:           strings.TrimSpace(p.Nin),
		Zone:          zone,
		RegisteredBy:  registeredBy,
	}
}

func normalizeCategories(cats []string) []string {
	seen := make(map[string]bool, len(cats))
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
