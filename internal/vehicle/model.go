package vehicle

import (
	"strings"
	"time"

	"tambua/internal/fine"
	"tambua/validation"
)

type Vehicle struct {
	ID              string         `json:"id" yaml:"id"`
	Photo           string         `json:"photo" yaml:"photo"`
	Owner           string         `json:"owner" yaml:"owner"`
	Address         string         `json:"address" yaml:"address"`
	TaxID           string         `json:"tax_id" yaml:"tax_id"`
	Plate           string         `json:"plate" yaml:"plate"`
	MakeModel       string         `json:"make_model" yaml:"make_model"`
	Type            string         `json:"type,omitempty" yaml:"type,omitempty"`
	Year            int            `json:"year" yaml:"year"`
	Color           string         `json:"color" yaml:"color"`
	Chassis         string         `json:"chassis" yaml:"chassis"`
	IssueDate       string         `json:"issue_date" yaml:"issue_date"`
	DocumentStatus  string         `json:"document_status" yaml:"document_status"`
	InsuranceStatus string         `json:"insurance_status" yaml:"insurance_status"`
	Zone            string         `json:"zone" yaml:"zone"`
	RegisteredBy    string         `json:"registered_by,omitempty" yaml:"registered_by,omitempty"`
	OwnerContact    *OwnerContact  `json:"owner_contact,omitempty" yaml:"owner_contact,omitempty"`
	DriverLicense   *DriverLicense `json:"driver_license,omitempty" yaml:"driver_license,omitempty"`
}

func (v Vehicle) Key() string { return v.ID }

// Make is the first word of MakeModel, Model the rest.
func (v Vehicle) Make() string {
	m, _, _ := strings.Cut(strings.TrimSpace(v.MakeModel), " ")
	return m
}

func (v Vehicle) Model() string {
	_, model, _ := strings.Cut(strings.TrimSpace(v.MakeModel), " ")
	return strings.TrimSpace(model)
}

type OwnerContact struct {
	LastName  string `json:"last_name" yaml:"last_name"`
	FirstName string `json:"first_name" yaml:"first_name"`
	NIN       string `json:"nin" yaml:"nin"`
	Phone     string `json:"phone" yaml:"phone"`
	Email     string `json:"email" yaml:"email"`
}

type DriverLicense struct {
	Number       string   `json:"number" yaml:"number"`
	DateOfBirth  string   `json:"date_of_birth" yaml:"date_of_birth"`
	IssueDate    string   `json:"issue_date" yaml:"issue_date"`
	ExpiryDate   string   `json:"expiry_date" yaml:"expiry_date"`
	Authority    string   `json:"authority" yaml:"authority"`
	Restrictions string   `json:"restrictions" yaml:"restrictions"`
	Categories   []string `json:"categories" yaml:"categories"`
}

type OwnerRequest struct {
	Nom     string `json:"nom" validate:"required"`
	Prenom  string `json:"prenom"`
	Nin     string `json:"nin"`
	Adresse string `json:"adresse"`
	Tel     string `json:"tel"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type LicenseSectionRequest struct {
	DateNaissance  string   `json:"date_naissance"`
	DateEmission   string   `json:"date_emission"`
	Autorite       string   `json:"autorite"`
	NumeroLicence  string   `json:"numero_licence"`
	DateExpiration string   `json:"date_expiration"`
	Restrictions   string   `json:"restrictions"`
	Categories     []string `json:"categories" validate:"dive,license_category"`
}

type RegisterVehicleRequest struct {
	Plaque  string                 `json:"plaque" validate:"required"`
	Type    string                 `json:"type"`
	Annee   int                    `json:"annee" validate:"omitempty,gte=1900,lte=2100"`
	Marque  string                 `json:"marque" validate:"required"`
	Modele  string                 `json:"modele" validate:"required"`
	Statut  string                 `json:"statut"`
	Couleur string                 `json:"couleur"`
	Chassis string                 `json:"chassis"`
	Zone    string                 `json:"zone"`
	Owner   OwnerRequest           `json:"owner"`
	License *LicenseSectionRequest `json:"license"`
	Photo   string                 `json:"photo"`
}

type UpdateVehicleRequest struct {
	ID              string `param:"id" json:"-"`
	Photo           string `json:"photo"`
	Owner           string `json:"owner" validate:"required"`
	Address         string `json:"address"`
	TaxID           string `json:"tax_id"`
	Plate           string `json:"plate" validate:"required"`
	MakeModel       string `json:"make_model" validate:"required"`
	Year            int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Color           string `json:"color"`
	Chassis         string `json:"chassis"`
	IssueDate       string `json:"issue_date"`
	DocumentStatus  string `json:"document_status" validate:"required,validity"`
	InsuranceStatus string `json:"insurance_status" validate:"required,validity"`
	Zone            string `json:"zone"`
}

type ListVehiclesRequest struct {
	Search string `query:"search"`
}

type VehicleDetailResponse struct {
	Vehicle
	Fines        []fine.Fine `json:"fines"`
	FinesTotal   int64       `json:"fines_total"`
	FinesPending int64       `json:"fines_pending"`
}

const DefaultZone = "Goma"

func (p *RegisterVehicleRequest) ParseRegisterToVehicle(id, photo, registeredBy string, now time.Time) Vehicle {
	owner := strings.TrimSpace(strings.TrimSpace(p.Owner.Prenom) + " " + strings.TrimSpace(p.Owner.Nom))
	zone := p.Zone
	if zone == "" {
		zone = DefaultZone
	}
	v := Vehicle{
		ID:              id,
		Photo:           photo,
		Owner:           owner,
		Address:         strings.TrimSpace(p.Owner.Adresse),
		TaxID:           strings.TrimSpace(p.Owner.Nin),
		Plate:           validation.NormalizePlate(p.Plaque),
		MakeModel:       strings.TrimSpace(strings.TrimSpace(p.Marque) + " " + strings.TrimSpace(p.Modele)),
		Type:            strings.TrimSpace(p.Type),
		Year:            p.Annee,
		Color:           strings.TrimSpace(p.Couleur),
		Chassis:         strings.ToUpper(strings.TrimSpace(p.Chassis)),
		IssueDate:       now.Format(validation.DateLayout),
		DocumentStatus:  validation.ValidityValid,
		InsuranceStatus: validation.ValidityValid,
		Zone:            zone,
		RegisteredBy:    registeredBy,
		OwnerContact: &OwnerContact{
			LastName:  strings.TrimSpace(p.Owner.Nom),
			FirstName: strings.TrimSpace(p.Owner.Prenom),
			NIN:       strings.TrimSpace(p.Owner.Nin),
			Phone:     strings.TrimSpace(p.Owner.Tel),
			Email:     strings.TrimSpace(p.Owner.Email),
		},
	}
	if l := p.License; l != nil && (l.NumeroLicence != "" || len(l.Categories) > 0) {
		v.DriverLicense = &DriverLicense{
			Number:       validation.NormalizeLicenseNumber(l.NumeroLicence),
			DateOfBirth:  l.DateNaissance,
			IssueDate:    l.DateEmission,
			ExpiryDate:   l.DateExpiration,
			Authority:    l.Autorite,
			Restrictions: l.Restrictions,
			Categories:   l.Categories,
		}
	}
	return v
}

func (p *UpdateVehicleRequest) Apply(v *Vehicle) {
	v.Photo = p.Photo
	v.Owner = strings.TrimSpace(p.Owner)
	v.Address = strings.TrimSpace(p.Address)
	v.TaxID = strings.TrimSpace(p.TaxID)
	v.Plate = validation.NormalizePlate(p.Plate)
	v.MakeModel = strings.TrimSpace(p.MakeModel)
	v.Year = p.Year
	v.Color = strings.TrimSpace(p.Color)
	v.Chassis = strings.ToUpper(strings.TrimSpace(p.Chassis))
	v.IssueDate = p.IssueDate
	v.DocumentStatus = p.DocumentStatus
	v.InsuranceStatus = p.InsuranceStatus
	if p.Zone != "" {
		v.Zone = p.Zone
	}
}
