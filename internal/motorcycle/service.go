package motorcycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/infra/database"
	"tambua/infra/metrics"
	"tambua/internal/activity"
	"tambua/internal/fine"
	"tambua/pkg/pdf"
	bucket "tambua/pkg/s3"
	"tambua/validation"
)

var (
	ErrMotorcycleNotFound = errors.New("Moto introuvable.")
	ErrPlateTaken         = errors.New("Une moto avec cette plaque existe déjà.")
	ErrQRTaken            = errors.New("Ce numéro QR est déjà attribué à une moto.")
)

// PlateNotFoundError matches ErrMotorcycleNotFound with errors.Is.
type PlateNotFoundError struct {
	Plate string
}

func (e PlateNotFoundError) Error() string {
	return fmt.Sprintf("Aucune moto trouvée pour la plaque \"%s\".", e.Plate)
}

func (e PlateNotFoundError) Is(target error) bool { return target == ErrMotorcycleNotFound }

type FineLookup interface {
	FinesByPlateService(ctx context.Context, plate string) (fine.PlateFinesResponse, error)
}

type InterfaceService interface {
	RegisterMotorcycleService(ctx context.Context, data RegisterMotorcycleRequest, actor activity.Actor) (Motorcycle, error)
	UpdateMotorcycleService(ctx context.Context, data UpdateMotorcycleRequest) (Motorcycle, error)
	DeleteMotorcycleService(ctx context.Context, id string) error
	GetMotorcycleService(ctx context.Context, id string) (MotorcycleDetailResponse, error)
	GetMotorcycleByPlateService(ctx context.Context, plate string) (Motorcycle, error)
	ListMotorcyclesService(ctx context.Context, data ListMotorcyclesRequest) ([]Motorcycle, error)
	ExportMotorcyclesPdfService(ctx context.Context, data ListMotorcyclesRequest) ([]byte, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Fines               FineLookup
	Activities          activity.InterfaceService
	Photos              bucket.PhotoStore
	Metrics             *metrics.Metrics
	Logger              *log.Logger
	Now                 func() time.Time

	// mu serialises the plate and QR uniqueness checks with the write.
	mu sync.Mutex
}

func NewMotorcycleService(repo InterfaceRepository, fines FineLookup, activities activity.InterfaceService, photos bucket.PhotoStore, m *metrics.Metrics, logger *log.Logger) *Service {
	return &Service{
		InterfaceRepository: repo,
		Fines:               fines,
		Activities:          activities,
		Photos:              photos,
		Metrics:             m,
		Logger:              logger,
		Now:                 time.Now,
	}
}

func (s *Service) RegisterMotorcycleService(ctx context.Context, data RegisterMotorcycleRequest, actor activity.Actor) (Motorcycle, error) {
	if err := validation.Validate(data); err != nil {
		return Motorcycle{}, err
	}
	if _, err := s.InterfaceRepository.GetMotorcycleByPlate(ctx, data.PlaqueNumero); err == nil {
		return Motorcycle{}, ErrPlateTaken
	}

	photo, err := s.Photos.Save(ctx, "motorcycles", data.Photo)
	if err != nil {
		return Motorcycle{}, fmt.Errorf("photo: %w", err)
	}

	result, err := s.create(ctx, data, photo, actor.Name)
	if err != nil {
		if rerr := s.Photos.Remove(ctx, photo); rerr != nil {
			s.Logger.WithError(rerr).Warn("motorcycle photo not removed")
		}
		return Motorcycle{}, err
	}

	_, err = s.Activities.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:   actor,
		Action:  activity.ActionMotorcycleRegistration,
		Details: "Plaque " + result.Plate,
	})
	if err != nil {
		s.Logger.WithError(err).Warn("registration activity not recorded")
	}
	if s.Metrics != nil {
		s.Metrics.Registrations.WithLabelValues("motorcycle").Inc()
	}

	s.Logger.WithFields(log.Fields{"motorcycle_id": result.ID, "plate": result.Plate, "agent": actor.Name}).Info("motorcycle registered")
	return result, nil
}

func (s *Service) create(ctx context.Context, data RegisterMotorcycleRequest, photo, agentName string) (Motorcycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.InterfaceRepository.GetMotorcycleByPlate(ctx, data.PlaqueNumero); err == nil {
		return Motorcycle{}, ErrPlateTaken
	}

	all, err := s.InterfaceRepository.ListMotorcycles(ctx)
	if err != nil {
		return Motorcycle{}, err
	}
	used := make(map[string]bool, len(all))
	for _, m := range all {
		used[strings.ToUpper(m.QRCode)] = true
	}

	now := s.Now()
	qr := strings.ToUpper(strings.TrimSpace(data.QrNumero))
	switch {
	case qr == "":
		qr = freeQR(used, now)
	case used[qr]:
		return Motorcycle{}, ErrQRTaken
	}
	return s.InterfaceRepository.CreateMotorcycle(ctx, data.ParseRegisterToMotorcycle(uuid.NewString(), photo, qr, agentName, now))
}

// freeQR derives a TAMBUA-MOTO number from the clock and steps past numbers
// already in use.
func freeQR(used map[string]bool, now time.Time) string {
	n := now.UnixMilli() % 100000
	qr := fmt.Sprintf("TAMBUA-MOTO-%05d", n)
	for i := 0; used[qr] && i < 100000; i++ {
		n = (n + 1) % 100000
		qr = fmt.Sprintf("TAMBUA-MOTO-%05d", n)
	}
	return qr
}

func (s *Service) UpdateMotorcycleService(ctx context.Context, data UpdateMotorcycleRequest) (Motorcycle, error) {
	if err := validation.Validate(data); err != nil {
		return Motorcycle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if other, err := s.InterfaceRepository.GetMotorcycleByPlate(ctx, data.Plate); err == nil && other.ID != data.ID {
		return Motorcycle{}, ErrPlateTaken
	}

	result, err := s.InterfaceRepository.UpdateMotorcycle(ctx, data.ID, func(m *Motorcycle) error {
		data.Apply(m)
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return Motorcycle{}, ErrMotorcycleNotFound
	}
	return result, err
}

func (s *Service) DeleteMotorcycleService(ctx context.Context, id string) error {
	m, err := s.InterfaceRepository.GetMotorcycleById(ctx, id)
	if err == nil {
		err = s.InterfaceRepository.DeleteMotorcycle(ctx, id)
	}
	if errors.Is(err, database.ErrNotFound) {
		return ErrMotorcycleNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Photos.Remove(ctx, m.Photo); err != nil {
		s.Logger.WithError(err).Warn("motorcycle photo not removed")
	}
	return nil
}

func (s *Service) GetMotorcycleService(ctx context.Context, id string) (MotorcycleDetailResponse, error) {
	m, err := s.InterfaceRepository.GetMotorcycleById(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return MotorcycleDetailResponse{}, ErrMotorcycleNotFound
	}
	if err != nil {
		return MotorcycleDetailResponse{}, err
	}

	fines, err := s.Fines.FinesByPlateService(ctx, m.Plate)
	if err != nil {
		return MotorcycleDetailResponse{}, err
	}
	return MotorcycleDetailResponse{
		Motorcycle:   m,
		Fines:        fines.Fines,
		FinesTotal:   fines.Total,
		FinesPending: fines.Pending,
	}, nil
}

func (s *Service) GetMotorcycleByPlateService(ctx context.Context, plate string) (Motorcycle, error) {
	m, err := s.InterfaceRepository.GetMotorcycleByPlate(ctx, plate)
	if errors.Is(err, database.ErrNotFound) {
		return Motorcycle{}, PlateNotFoundError{Plate: validation.NormalizePlate(plate)}
	}
	return m, err
}

func (s *Service) ListMotorcyclesService(ctx context.Context, data ListMotorcyclesRequest) ([]Motorcycle, error) {
	motorcycles, err := s.InterfaceRepository.ListMotorcycles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Motorcycle, 0, len(motorcycles))
	for _, m := range motorcycles {
		if validation.ContainsFold(m.Plate, data.Search) ||
			validation.ContainsFold(m.Owner, data.Search) ||
			validation.ContainsFold(m.MakeModel, data.Search) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Service) ExportMotorcyclesPdfService(ctx context.Context, data ListMotorcyclesRequest) ([]byte, error) {
	motorcycles, err := s.ListMotorcyclesService(ctx, data)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(motorcycles))
	for _, m := range motorcycles {
		rows = append(rows, []string{m.Owner, m.Plate, m.MakeModel, m.DocumentStatus, m.InsuranceStatus})
	}
	return pdf.Bytes(pdf.Table{
		Title:       "Rapport des Motos",
		Headers:     []string{"Propriétaire", "Plaque", "Modèle", "Documents", "Assurance"},
		Rows:        rows,
		GeneratedAt: s.Now(),
	})
}
