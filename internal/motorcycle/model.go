package motorcycle

import (
	"strings"
	"time"

	"tambua/internal/fine"
	"tambua/validation"
)

const DefaultZone = "Goma"

type Motorcycle struct {
	ID              string `json:"id" yaml:"id"`
	Photo           string `json:"photo" yaml:"photo"`
	Owner           string `json:"owner" yaml:"owner"`
	Address         string `json:"address" yaml:"address"`
	Phone           string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Plate           string `json:"plate" yaml:"plate"`
	MakeModel       string `json:"make_model" yaml:"make_model"`
	Year            int    `json:"year" yaml:"year"`
	Color           string `json:"color" yaml:"color"`
	Chassis         string `json:"chassis" yaml:"chassis"`
	QRCode          string `json:"qr_code" yaml:"qr_code"`
	Province        string `json:"province,omitempty" yaml:"province,omitempty"`
	Zone            string `json:"zone" yaml:"zone"`
	DocumentStatus  string `json:"document_status" yaml:"document_status"`
	InsuranceStatus string `json:"insurance_status" yaml:"insurance_status"`
	RegisteredBy    string `json:"registered_by,omitempty" yaml:"registered_by,omitempty"`
	RegisteredAt    string `json:"registered_at,omitempty" yaml:"registered_at,omitempty"`
}

func (m Motorcycle) Key() string { return m.ID }

type RegisterMotorcycleRequest struct {
	NomDetenteur     string `json:"nom_detenteur" validate:"required"`
	AdresseDetenteur string `json:"adresse_detenteur"`
	TelDetenteur     string `json:"tel_detenteur"`
	PlaqueNumero     string `json:"plaque_numero" validate:"required"`
	MarqueModele     string `json:"marque_modele" validate:"required"`
	QrNumero         string `json:"qr_numero"`
	AnneeFabrication int    `json:"annee_fabrication" validate:"omitempty,gte=1900,lte=2100"`
	Couleur          string `json:"couleur"`
	NumeroChassis    string `json:"numero_chassis"`
	Province         string `json:"province"`
	Zone             string `json:"zone"`
	Photo            string `json:"photo"`
}

type UpdateMotorcycleRequest struct {
	ID              string `param:"id" json:"-"`
	Photo           string `json:"photo"`
	Owner           string `json:"owner" validate:"required"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Plate           string `json:"plate" validate:"required"`
	MakeModel       string `json:"make_model" validate:"required"`
	Year            int    `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Color           string `json:"color"`
	Chassis         string `json:"chassis"`
	QRCode          string `json:"qr_code"`
	Province        string `json:"province"`
	Zone            string `json:"zone"`
	DocumentStatus  string `json:"document_status" validate:"required,validity"`
	InsuranceStatus string `json:"insurance_status" validate:"required,validity"`
}

type ListMotorcyclesRequest struct {
	Search string `query:"search"`
}

type MotorcycleDetailResponse struct {
	Motorcycle
	Fines        []fine.Fine `json:"fines"`
	FinesTotal   int64       `json:"fines_total"`
	FinesPending int64       `json:"fines_pending"`
}

func (p *RegisterMotorcycleRequest) ParseRegisterToMotorcycle(id, photo, qr, registeredBy string, now time.Time) Motorcycle {
	zone := p.Zone
	if zone == "" {
		zone = DefaultZone
	}
	return Motorcycle{
		ID:              id,
		Photo:           photo,
		Owner:           strings.TrimSpace(p.NomDetenteur),
		Address:         strings.TrimSpace(p.AdresseDetenteur),
		Phone:           strings.TrimSpace(p.TelDetenteur),
		Plate:           validation.NormalizePlate(p.PlaqueNumero),
		MakeModel:       strings.TrimSpace(p.MarqueModele),
		Year:            p.AnneeFabrication,
		Color:           strings.TrimSpace(p.Couleur),
		Chassis:         strings.ToUpper(strings.TrimSpace(p.NumeroChassis)),
		QRCode:          qr,
		Province:        strings.TrimSpace(p.Province),
		Zone:            zone,
		DocumentStatus:  validation.ValidityValid,
		InsuranceStatus: validation.ValidityValid,
		RegisteredBy:    registeredBy,
		RegisteredAt:    now.Format(validation.DateLayout),
	}
}

func (p *UpdateMotorcycleRequest) Apply(m *Motorcycle) {
	m.Photo = p.Photo
	m.Owner = strings.TrimSpace(p.Owner)
	m.Address = strings.TrimSpace(p.Address)
	m.Phone = strings.TrimSpace(p.Phone)
	m.Plate = validation.NormalizePlate(p.Plate)
	m.MakeModel = strings.TrimSpace(p.MakeModel)
	m.Year = p.Year
	m.Color = strings.TrimSpace(p.Color)
	m.Chassis = strings.ToUpper(strings.TrimSpace(p.Chassis))
	if p.QRCode != "" {
		m.QRCode = strings.TrimSpace(p.QRCode)
	}
	m.Province = strings.TrimSpace(p.Province)
	if p.Zone != "" {
		m.Zone = p.Zone
	}
	m.DocumentStatus = p.DocumentStatus
	m.InsuranceStatus = p.InsuranceStatus
}
