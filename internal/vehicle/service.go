package vehicle

import (
	"context"
	"errors"
	"fmt"
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
	ErrVehicleNotFound = errors.New("Véhicule introuvable.")
	ErrPlateTaken      = errors.New("Un véhicule avec cette plaque existe déjà.")
)

// PlateNotFoundError matches ErrVehicleNotFound with errors.Is.
type PlateNotFoundError struct {
	Plate string
}

func (e PlateNotFoundError) Error() string {
	return fmt.Sprintf("Aucun véhicule trouvé pour la plaque \"%s\".", e.Plate)
}

func (e PlateNotFoundError) Is(target error) bool { return target == ErrVehicleNotFound }

// FineLookup is the part of the fine service the vehicle detail needs.
type FineLookup interface {
	FinesByPlateService(ctx context.Context, plate string) (fine.PlateFinesResponse, error)
}

type InterfaceService interface {
	RegisterVehicleService(ctx context.Context, data RegisterVehicleRequest, actor activity.Actor) (Vehicle, error)
	UpdateVehicleService(ctx context.Context, data UpdateVehicleRequest) (Vehicle, error)
	DeleteVehicleService(ctx context.Context, id string) error
	GetVehicleService(ctx context.Context, id string) (VehicleDetailResponse, error)
	GetVehicleByPlateService(ctx context.Context, plate string) (Vehicle, error)
	ListVehiclesService(ctx context.Context, data ListVehiclesRequest) ([]Vehicle, error)
	ExportVehiclesPdfService(ctx context.Context, data ListVehiclesRequest) ([]byte, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Fines               FineLookup
	Activities          activity.InterfaceService
	Photos              bucket.PhotoStore
	Metrics             *metrics.Metrics
	Logger              *log.Logger
	Now                 func() time.Time

	// mu serialises the plate uniqueness check with the write.
	mu sync.Mutex
}

func NewVehicleService(repo InterfaceRepository, fines FineLookup, activities activity.InterfaceService, photos bucket.PhotoStore, m *metrics.Metrics, logger *log.Logger) *Service {
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

func (s *Service) RegisterVehicleService(ctx context.Context, data RegisterVehicleRequest, actor activity.Actor) (Vehicle, error) {
	if err := validation.Validate(data); err != nil {
		return Vehicle{}, err
	}
	if _, err := s.InterfaceRepository.GetVehicleByPlate(ctx, data.Plaque); err == nil {
		return Vehicle{}, ErrPlateTaken
	}

	photo, err := s.Photos.Save(ctx, "vehicles", data.Photo)
	if err != nil {
		return Vehicle{}, fmt.Errorf("photo: %w", err)
	}

	v := data.ParseRegisterToVehicle(uuid.NewString(), photo, actor.Name, s.Now())
	result, err := s.create(ctx, v)
	if err != nil {
		s.removePhoto(ctx, photo)
		return Vehicle{}, err
	}

	_, err = s.Activities.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:   actor,
		Action:  activity.ActionVehicleRegistration,
		Details: "Plaque " + result.Plate,
	})
	if err != nil {
		s.Logger.WithError(err).Warn("registration activity not recorded")
	}
	if s.Metrics != nil {
		s.Metrics.Registrations.WithLabelValues("vehicle").Inc()
	}

	s.Logger.WithFields(log.Fields{"vehicle_id": result.ID, "plate": result.Plate, "agent": actor.Name}).Info("vehicle registered")
	return result, nil
}

func (s *Service) create(ctx context.Context, v Vehicle) (Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.InterfaceRepository.GetVehicleByPlate(ctx, v.Plate); err == nil {
		return Vehicle{}, ErrPlateTaken
	}
	return s.InterfaceRepository.CreateVehicle(ctx, v)
}

func (s *Service) removePhoto(ctx context.Context, url string) {
	if err := s.Photos.Remove(ctx, url); err != nil {
		s.Logger.WithError(err).Warn("vehicle photo not removed")
	}
}

func (s *Service) UpdateVehicleService(ctx context.Context, data UpdateVehicleRequest) (Vehicle, error) {
	if err := validation.Validate(data); err != nil {
		return Vehicle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if other, err := s.InterfaceRepository.GetVehicleByPlate(ctx, data.Plate); err == nil && other.ID != data.ID {
		return Vehicle{}, ErrPlateTaken
	}

	result, err := s.InterfaceRepository.UpdateVehicle(ctx, data.ID, func(v *Vehicle) error {
		data.Apply(v)
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return Vehicle{}, ErrVehicleNotFound
	}
	return result, err
}

func (s *Service) DeleteVehicleService(ctx context.Context, id string) error {
	v, err := s.InterfaceRepository.GetVehicleById(ctx, id)
	if err == nil {
		err = s.InterfaceRepository.DeleteVehicle(ctx, id)
	}
	if errors.Is(err, database.ErrNotFound) {
		return ErrVehicleNotFound
	}
	if err != nil {
		return err
	}
	s.removePhoto(ctx, v.Photo)
	return nil
}

func (s *Service) GetVehicleService(ctx context.Context, id string) (VehicleDetailResponse, error) {
	v, err := s.InterfaceRepository.GetVehicleById(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return VehicleDetailResponse{}, ErrVehicleNotFound
	}
	if err != nil {
		return VehicleDetailResponse{}, err
	}

	fines, err := s.Fines.FinesByPlateService(ctx, v.Plate)
	if err != nil {
		return VehicleDetailResponse{}, err
	}
	return VehicleDetailResponse{
		Vehicle:      v,
		Fines:        fines.Fines,
		FinesTotal:   fines.Total,
		FinesPending: fines.Pending,
	}, nil
}

func (s *Service) GetVehicleByPlateService(ctx context.Context, plate string) (Vehicle, error) {
	v, err := s.InterfaceRepository.GetVehicleByPlate(ctx, plate)
	if errors.Is(err, database.ErrNotFound) {
		return Vehicle{}, PlateNotFoundError{Plate: validation.NormalizePlate(plate)}
	}
	return v, err
}

func (s *Service) ListVehiclesService(ctx context.Context, data ListVehiclesRequest) ([]Vehicle, error) {
	vehicles, err := s.InterfaceRepository.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if validation.ContainsFold(v.Plate, data.Search) ||
			validation.ContainsFold(v.Owner, data.Search) ||
			validation.ContainsFold(v.MakeModel, data.Search) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Service) ExportVehiclesPdfService(ctx context.Context, data ListVehiclesRequest) ([]byte, error) {
	vehicles, err := s.ListVehiclesService(ctx, data)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, []string{v.Owner, v.Plate, v.MakeModel, v.DocumentStatus, v.InsuranceStatus})
	}
	return pdf.Bytes(pdf.Table{
		Title:       "Rapport des Véhicules",
		Headers:     []string{"Propriétaire", "Plaque", "Modèle", "Documents", "Assurance"},
		Rows:        rows,
		GeneratedAt: s.Now(),
	})
}
