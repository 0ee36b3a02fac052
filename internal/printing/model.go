package printing

import (
	"strconv"
	"strings"
	"time"

	"tambua/internal/activity"
	"tambua/internal/license"
	"tambua/internal/motorcycle"
	"tambua/internal/vehicle"
)

// Values of Impression.DocumentType.
const (
	TypeLicense     = "Permis"
	TypePinkCard    = "Carte Rose"
	TypeAttestation = "Attestation"
)

var DocumentTypes = []string{TypeLicense, TypePinkCard, TypeAttestation}

// Path values accepted by the printing routes.
const (
	KindLicense     = "license"
	KindPinkCard    = "pink-card"
	KindAttestation = "attestation"
)

type kind struct {
	documentType string
	action       string
	title        string
	filePrefix   string
}

var kinds = map[string]kind{
	KindLicense:     {TypeLicense, activity.ActionLicensePrint, "PERMIS DE CONDUIRE", "permis"},
	KindPinkCard:    {TypePinkCard, activity.ActionPinkCardPrint, "CERTIFICAT D'IMMATRICULATION", "carte_rose"},
	KindAttestation: {TypeAttestation, activity.ActionAttestationPrint, "ATTESTATION DE PROPRIÉTÉ - MOTO", "attestation"},
}

type Impression struct {
	ID           string    `json:"id" yaml:"id"`
	DocumentType string    `json:"document_type" yaml:"document_type"`
	AgentName    string    `json:"agent_name" yaml:"agent_name"`
	Date         time.Time `json:"date" yaml:"date"`
	Identifier   string    `json:"identifier" yaml:"identifier"`
	Zone         string    `json:"zone" yaml:"zone"`
}

func (i Impression) Key() string { return i.ID }

type PrintRequest struct {
	Document   string `param:"document" validate:"required,oneof=license pink-card attestation"`
	Identifier string `query:"id" validate:"required"`
}

type PreviewResponse struct {
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
	Payload      any    `json:"payload"`
	QRCode       string `json:"qr_code"`
}

type LicensePayload struct {
	LicenseNumber string   `json:"license_number"`
	LastName      string   `json:"last_name"`
	FirstName     string   `json:"first_name"`
	DateOfBirth   string   `json:"dob"`
	IssueDate     string   `json:"issue_date"`
	ExpiryDate    string   `json:"expiry_date"`
	Categories    []string `json:"categories"`
	PhotoURL      string   `json:"photo_url"`
	Nationality   string   `json:"nationality"`
}

type PinkCardPayload struct {
	Plate     string `json:"plate"`
	Owner     string `json:"owner"`
	Address   string `json:"address"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year"`
	Chassis   string `json:"chassis"`
	Color     string `json:"color"`
	IssueDate string `json:"issue_date"`
}

type AttestationPayload struct {
	Plate     string `json:"plate"`
	Owner     string `json:"owner"`
	Address   string `json:"address"`
	MakeModel string `json:"make_model"`
	Year      string `json:"year"`
	Chassis   string `json:"chassis"`
	Color     string `json:"color"`
	QRCode    string `json:"qr_code"`
}

func ParseLicenseToPayload(l license.License) LicensePayload {
	return LicensePayload{
		LicenseNumber: upper(l.LicenseNumber),
		LastName:      upper(l.LastName),
		FirstName:     upper(l.FirstName),
		DateOfBirth:   l.DateOfBirth,
		IssueDate:     l.IssueDate,
		ExpiryDate:    l.ExpiryDate,
		Categories:    l.Categories,
		PhotoURL:      photoURL(l.Photo),
		Nationality:   upper(l.Nationality),
	}
}

func ParseVehicleToPayload(v vehicle.Vehicle) PinkCardPayload {
	return PinkCardPayload{
		Plate:     upper(v.Plate),
		Owner:     upper(v.Owner),
		Address:   postalAddress(v.Address),
		Make:      upper(v.Make()),
		Model:     upper(v.Model()),
		Year:      year(v.Year),
		Chassis:   upper(v.Chassis),
		Color:     upper(v.Color),
		IssueDate: v.IssueDate,
	}
}

func ParseMotorcycleToPayload(m motorcycle.Motorcycle) AttestationPayload {
	return AttestationPayload{
		Plate:     upper(m.Plate),
		Owner:     upper(m.Owner),
		Address:   postalAddress(m.Address),
		MakeModel: upper(m.MakeModel),
		Year:      year(m.Year),
		Chassis:   upper(m.Chassis),
		Color:     upper(m.Color),
		QRCode:    upper(m.QRCode),
	}
}

// photoURL drops inline data URLs, which do not fit in a level H QR code.
func photoURL(s string) string {
	if strings.HasPrefix(s, "data:") {
		return ""
	}
	return s
}

func upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// postalAddress upper-cases the address and appends the country once.
func postalAddress(s string) string {
	a := upper(s)
	if a == "" || strings.HasSuffix(a, ", RDC") {
		return a
	}
	return a + ", RDC"
}

func year(y int) string {
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y)
}

// FileName turns an identifier into a download name such as permis_P123456789.pdf.
func FileName(prefix, identifier string) string {
	id := strings.Join(strings.Fields(upper(identifier)), "_")
	return prefix + "_" + id + ".pdf"
}
