package infraction

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/infra/database"
	"tambua/validation"
)

var (
	ErrInfractionNotFound = errors.New("Infraction introuvable.")
	ErrCodeTaken          = errors.New("Une infraction avec ce code existe déjà.")
)

type InterfaceService interface {
	CreateInfractionService(ctx context.Context, data CreateInfractionRequest) (InfractionResponse, error)
	UpdateInfractionService(ctx context.Context, data UpdateInfractionRequest) (InfractionResponse, error)
	DeleteInfractionService(ctx context.Context, id string) error
	GetInfractionService(ctx context.Context, id string) (InfractionResponse, error)
	ListInfractionsService(ctx context.Context) ([]InfractionResponse, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Logger              *log.Logger
	Now                 func() time.Time

	// mu serialises the code uniqueness check with the write.
	mu sync.Mutex
}

func NewInfractionService(repo InterfaceRepository, logger *log.Logger) *Service {
	return &Service{InterfaceRepository: repo, Logger: logger, Now: time.Now}
}

func (s *Service) CreateInfractionService(ctx context.Context, data CreateInfractionRequest) (InfractionResponse, error) {
	if err := validation.Validate(data); err != nil {
		return InfractionResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.InterfaceRepository.GetInfractionByCode(ctx, data.Code); err == nil {
		return InfractionResponse{}, ErrCodeTaken
	}

	result, err := s.InterfaceRepository.CreateInfraction(ctx, data.ParseCreateToInfraction(uuid.NewString(), s.Now()))
	if err != nil {
		return InfractionResponse{}, err
	}
	s.Logger.WithFields(log.Fields{"code": result.Code, "severity": result.Severity}).Info("infraction created")
	return result.Response(), nil
}

func (s *Service) UpdateInfractionService(ctx context.Context, data UpdateInfractionRequest) (InfractionResponse, error) {
	if err := validation.Validate(data); err != nil {
		return InfractionResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if other, err := s.InterfaceRepository.GetInfractionByCode(ctx, data.Code); err == nil && other.ID != data.ID {
		return InfractionResponse{}, ErrCodeTaken
	}

	result, err := s.InterfaceRepository.UpdateInfraction(ctx, data.ID, func(i *Infraction) error {
		i.Code = strings.ToUpper(strings.TrimSpace(data.Code))
		i.Label = strings.TrimSpace(data.Label)
		i.Description = strings.TrimSpace(data.Description)
		i.Severity = data.Severity
		i.Amount = data.Amount
		i.UpdatedAt = s.Now()
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return InfractionResponse{}, ErrInfractionNotFound
	}
	if err != nil {
		return InfractionResponse{}, err
	}
	return result.Response(), nil
}

func (s *Service) DeleteInfractionService(ctx context.Context, id string) error {
	err := s.InterfaceRepository.DeleteInfraction(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrInfractionNotFound
	}
	return err
}

func (s *Service) GetInfractionService(ctx context.Context, id string) (InfractionResponse, error) {
	i, err := s.InterfaceRepository.GetInfractionById(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return InfractionResponse{}, ErrInfractionNotFound
	}
	if err != nil {
		return InfractionResponse{}, err
	}
	return i.Response(), nil
}

func (s *Service) ListInfractionsService(ctx context.Context) ([]InfractionResponse, error) {
	list, err := s.InterfaceRepository.ListInfractions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InfractionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, i.Response())
	}
	return out, nil
}
