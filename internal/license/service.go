package license

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tambua/infra/database"
	"tambua/infra/metrics"
	"tambua/internal/activity"
	bucket "tambua/pkg/s3"
	"tambua/validation"
)

var (
	ErrLicenseNotFound = errors.New("Permis introuvable.")
	ErrNoCategory      = errors.New("Veuillez sélectionner au moins une catégorie de permis.")
	ErrBadBirthDate    = errors.New("Date de naissance invalide.")
	ErrNumberExhausted = errors.New("no free license number")
)

// NumberNotFoundError matches ErrLicenseNotFound with errors.Is.
type NumberNotFoundError struct {
	Number string
}

func (e NumberNotFoundError) Error() string {
	return fmt.Sprintf("Aucun permis trouvé pour le numéro \"%s\".", e.Number)
}

func (e NumberNotFoundError) Is(target error) bool { return target == ErrLicenseNotFound }

type InterfaceService interface {
	RegisterLicenseService(ctx context.Context, data RegisterLicenseRequest, actor activity.Actor) (License, error)
	GetLicenseService(ctx context.Context, number string) (License, error)
	ListLicensesService(ctx context.Context, data ListLicensesRequest) ([]License, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Activities          activity.InterfaceService
	Photos              bucket.PhotoStore
	Metrics             *metrics.Metrics
	Logger              *log.Logger
	Now                 func() time.Time
	NewNumber           func() string
}

func NewLicenseService(repo InterfaceRepository, activities activity.InterfaceService, photos bucket.PhotoStore, m *metrics.Metrics, logger *log.Logger) *Service {
	return &Service{
		InterfaceRepository: repo,
		Activities:          activities,
		Photos:              photos,
		Metrics:             m,
		Logger:              logger,
		Now:                 time.Now,
		NewNumber:           RandomNumber,
	}
}

// RandomNumber is P followed by nine digits.
func RandomNumber() string {
	return fmt.Sprintf("P%09d", rand.IntN(1000000000))
}

func (s *Service) RegisterLicenseService(ctx context.Context, data RegisterLicenseRequest, actor activity.Actor) (License, error) {
	if len(normalizeCategories(data.Categories)) == 0 {
		return License{}, ErrNoCategory
	}
	if err := validation.Validate(data); err != nil {
		return License{}, err
	}
	dob, err := validation.ParseDate(data.DateNaissance)
	if err != nil {
		return License{}, fmt.Errorf("%w %v", ErrBadBirthDate, err)
	}

	number, err := s.freeNumber(ctx)
	if err != nil {
		return License{}, err
	}

	photo, err := s.Photos.Save(ctx, "licenses", data.Photo)
	if err != nil {
		return License{}, fmt.Errorf("photo: %w", err)
	}

	now := s.Now()
	issue := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	result, err := s.InterfaceRepository.CreateLicense(ctx, data.ParseRegisterToLicense(number, photo, actor.Name, dob, issue))
	if err != nil {
		return License{}, err
	}

	_, err = s.Activities.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:   actor,
		Action:  activity.ActionLicenseApplication,
		Details: fmt.Sprintf("Permis %s, %s %s", result.LicenseNumber, result.LastName, result.FirstName),
	})
	if err != nil {
		s.Logger.WithError(err).Warn("license activity not recorded")
	}
	if s.Metrics != nil {
		s.Metrics.Registrations.WithLabelValues("license").Inc()
	}

	s.Logger.WithFields(log.Fields{"license_number": result.LicenseNumber, "agent": actor.Name}).Info("license registered")
	return result, nil
}

func (s *Service) freeNumber(ctx context.Context) (string, error) {
	for i := 0; i < 100; i++ {
		n := s.NewNumber()
		_, err := s.InterfaceRepository.GetLicenseByNumber(ctx, n)
		if errors.Is(err, database.ErrNotFound) {
			return n, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", ErrNumberExhausted
}

func (s *Service) GetLicenseService(ctx context.Context, number string) (License, error) {
	normalized := validation.NormalizeLicenseNumber(number)
	l, err := s.InterfaceRepository.GetLicenseByNumber(ctx, normalized)
	if errors.Is(err, database.ErrNotFound) {
		return License{}, NumberNotFoundError{Number: normalized}
	}
	return l, err
}

func (s *Service) ListLicensesService(ctx context.Context, data ListLicensesRequest) ([]License, error) {
	licenses, err := s.InterfaceRepository.ListLicenses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]License, 0, len(licenses))
	for _, l := range licenses {
		name := strings.Join([]string{l.LastName, l.FirstName}, " ")
		if validation.ContainsFold(l.LicenseNumber, data.Search) || validation.ContainsFold(name, data.Search) {
			out = append(out, l)
		}
	}
	return out, nil
}
