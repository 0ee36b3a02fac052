package printing

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/infra/metrics"
	"tambua/internal/activity"
	"tambua/internal/license"
	"tambua/internal/motorcycle"
	"tambua/internal/vehicle"
	"tambua/pkg/cache"
	"tambua/pkg/dataurl"
	"tambua/pkg/pdf"
	"tambua/pkg/qrcode"
	"tambua/validation"
)

// RenderTTL bounds how long a rendered card stays in the cache.
const RenderTTL = 24 * time.Hour

var ErrUnknownDocument = errors.New("Type de document inconnu.")

type LicenseLookup interface {
	GetLicenseService(ctx context.Context, number string) (license.License, error)
}

type VehicleLookup interface {
	GetVehicleByPlateService(ctx context.Context, plate string) (vehicle.Vehicle, error)
}

type MotorcycleLookup interface {
	GetMotorcycleByPlateService(ctx context.Context, plate string) (motorcycle.Motorcycle, error)
}

type InterfaceService interface {
	PreviewService(ctx context.Context, data PrintRequest) (PreviewResponse, error)
	PrintService(ctx context.Context, data PrintRequest, actor activity.Actor) (string, []byte, error)
	ListImpressionsService(ctx context.Context) ([]Impression, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Licenses            LicenseLookup
	Vehicles            VehicleLookup
	Motorcycles         MotorcycleLookup
	Activities          activity.InterfaceService
	Cache               cache.Cache
	Metrics             *metrics.Metrics
	Logger              *log.Logger
	Now                 func() time.Time
}

func NewPrintingService(repo InterfaceRepository, licenses LicenseLookup, vehicles VehicleLookup, motorcycles MotorcycleLookup,
	activities activity.InterfaceService, c cache.Cache, m *metrics.Metrics, logger *log.Logger) *Service {
	return &Service{
		InterfaceRepository: repo,
		Licenses:            licenses,
		Vehicles:            vehicles,
		Motorcycles:         motorcycles,
		Activities:          activities,
		Cache:               c,
		Metrics:             m,
		Logger:              logger,
		Now:                 time.Now,
	}
}

type document struct {
	kind       kind
	identifier string
	zone       string
	payload    any
	qrText     string
	card       pdf.Card
	photo      string
}

func (d document) fileName() string { return FileName(d.kind.filePrefix, d.identifier) }

// cacheKey includes the render day, the card carries it as its issue date.
func (d document) cacheKey(day time.Time) string {
	sum := sha256.Sum256([]byte(d.qrText + "\x00" + d.photo + "\x00" + d.card.Footer + "\x00" + day.Format(validation.DateLayout)))
	return "print:" + d.kind.filePrefix + ":" + hex.EncodeToString(sum[:])
}

func (s *Service) build(ctx context.Context, data PrintRequest) (document, error) {
	if err := validation.Validate(data); err != nil {
		return document{}, err
	}
	k, ok := kinds[data.Document]
	if !ok {
		return document{}, ErrUnknownDocument
	}

	var d document
	switch data.Document {
	case KindLicense:
		l, err := s.Licenses.GetLicenseService(ctx, data.Identifier)
		if err != nil {
			return document{}, err
		}
		p := ParseLicenseToPayload(l)
		d = document{identifier: p.LicenseNumber, zone: l.Zone, payload: p, photo: l.Photo}
		d.card = pdf.Card{
			Fields: []pdf.Field{
				{Label: "1. Nom", Value: p.LastName},
				{Label: "2. Prénom", Value: p.FirstName},
				{Label: "3. Date de Naissance", Value: validation.FormatDateStringFR(p.DateOfBirth)},
				{Label: "4a. Délivré le", Value: validation.FormatDateStringFR(p.IssueDate)},
				{Label: "4b. Expire le", Value: validation.FormatDateStringFR(p.ExpiryDate)},
				{Label: "9. Catégories", Value: strings.Join(p.Categories, ", ")},
				{Label: "Nationalité", Value: p.Nationality},
				{Label: "N° Permis", Value: p.LicenseNumber},
			},
			Photo: photoImage(l.Photo),
		}
	case KindPinkCard:
		v, err := s.Vehicles.GetVehicleByPlateService(ctx, data.Identifier)
		if err != nil {
			return document{}, err
		}
		p := ParseVehicleToPayload(v)
		d = document{identifier: p.Plate, zone: v.Zone, payload: p}
		d.card = pdf.Card{
			Fields: []pdf.Field{
				{Label: "A. N° IMMATRICULATION", Value: p.Plate},
				{Label: "C.1 NOM & ADRESSE", Value: p.Owner + ", " + p.Address},
				{Label: "D.1 MARQUE", Value: p.Make},
				{Label: "D.3 MODÈLE", Value: p.Model},
				{Label: "E. N° CHÂSSIS", Value: p.Chassis},
				{Label: "F.1 ANNÉE", Value: p.Year},
				{Label: "J. COULEUR", Value: p.Color},
				{Label: "B. DATE ÉMISSION", Value: validation.FormatDateStringFR(p.IssueDate)},
			},
		}
	case KindAttestation:
		m, err := s.Motorcycles.GetMotorcycleByPlateService(ctx, data.Identifier)
		if err != nil {
			return document{}, err
		}
		p := ParseMotorcycleToPayload(m)
		d = document{identifier: p.Plate, zone: m.Zone, payload: p}
		d.card = pdf.Card{
			Fields: []pdf.Field{
				{Label: "N° PLAQUE", Value: p.Plate},
				{Label: "PROPRIÉTAIRE", Value: p.Owner},
				{Label: "MARQUE / MODÈLE", Value: p.MakeModel},
				{Label: "N° CHÂSSIS", Value: p.Chassis},
				{Label: "ANNÉE", Value: p.Year},
				{Label: "COULEUR", Value: p.Color},
				{Label: "QR CODE", Value: p.QRCode},
			},
			Footer: fmt.Sprintf("Fait à Goma, le %s. Pour TAMBUA RDC.", validation.FormatDateFR(s.Now())),
		}
	}

	text, err := qrcode.Payload(d.payload)
	if err != nil {
		return document{}, err
	}
	d.kind = k
	d.qrText = text
	d.card.Title = k.title
	return d, nil
}

// photoImage embeds decodable PNG and JPEG data URLs; anything else gets the placeholder frame.
func photoImage(photo string) *pdf.Image {
	mime, b, err := dataurl.Decode(photo)
	if err != nil {
		return &pdf.Image{}
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(b)); err != nil {
		return &pdf.Image{}
	}
	switch dataurl.Extension(mime) {
	case "png":
		return &pdf.Image{Data: b, Type: "PNG"}
	case "jpg":
		return &pdf.Image{Data: b, Type: "JPG"}
	}
	return &pdf.Image{}
}

func (s *Service) PreviewService(ctx context.Context, data PrintRequest) (PreviewResponse, error) {
	d, err := s.build(ctx, data)
	if err != nil {
		return PreviewResponse{}, err
	}
	qr, err := qrcode.DataURL(d.qrText)
	if err != nil {
		return PreviewResponse{}, err
	}
	return PreviewResponse{
		DocumentType: d.kind.documentType,
		FileName:     d.fileName(),
		Payload:      d.payload,
		QRCode:       qr,
	}, nil
}

func (s *Service) PrintService(ctx context.Context, data PrintRequest, actor activity.Actor) (string, []byte, error) {
	d, err := s.build(ctx, data)
	if err != nil {
		return "", nil, err
	}

	b, err := s.render(ctx, d)
	if err != nil {
		return "", nil, err
	}

	now := s.Now()
	_, err = s.InterfaceRepository.CreateImpression(ctx, Impression{
		ID:           uuid.NewString(),
		DocumentType: d.kind.documentType,
		AgentName:    actor.Name,
		Date:         now,
		Identifier:   d.identifier,
		Zone:         d.zone,
	})
	if err != nil {
		return "", nil, err
	}

	_, err = s.Activities.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:   actor,
		Action:  d.kind.action,
		Details: fmt.Sprintf("%s %s", d.kind.documentType, d.identifier),
	})
	if err != nil {
		s.Logger.WithError(err).Warn("print activity not recorded")
	}
	if s.Metrics != nil {
		s.Metrics.Prints.WithLabelValues(d.kind.documentType).Inc()
	}

	s.Logger.WithFields(log.Fields{
		"document_type": d.kind.documentType,
		"identifier":    d.identifier,
		"agent":         actor.Name,
	}).Info("document printed")
	return d.fileName(), b, nil
}

// render serves the card from the cache when the same payload was already rendered.
// Cache failures degrade to a fresh render.
func (s *Service) render(ctx context.Context, d document) ([]byte, error) {
	now := s.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	key := d.cacheKey(day)
	if s.Cache != nil {
		b, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			s.Logger.WithError(err).Warn("render cache read failed")
		}
		if ok {
			s.countCache("hit")
			return b, nil
		}
		s.countCache("miss")
	}

	qr, err := qrcode.PNG(d.qrText)
	if err != nil {
		return nil, err
	}
	d.card.QR = qr
	d.card.IssuedAt = day

	b, err := pdf.Bytes(d.card)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", d.kind.filePrefix, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, b, RenderTTL); err != nil {
			s.Logger.WithError(err).Warn("render cache write failed")
		}
	}
	return b, nil
}

func (s *Service) countCache(result string) {
	if s.Metrics != nil {
		s.Metrics.RenderCache.WithLabelValues(result).Inc()
	}
}

func (s *Service) ListImpressionsService(ctx context.Context) ([]Impression, error) {
	return s.InterfaceRepository.ListImpressions(ctx)
}
