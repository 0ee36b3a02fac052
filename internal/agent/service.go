package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"tambua/infra/database"
	"tambua/internal/activity"
	"tambua/pkg/money"
	"tambua/pkg/pdf"
	"tambua/validation"
)

var (
	ErrAgentNotFound = errors.New("Agent introuvable.")
	ErrEmailTaken    = errors.New("Un agent avec cet e-mail existe déjà.")
)

type InterfaceService interface {
	CreateAgentService(ctx context.Context, data CreateAgentRequest) (Agent, error)
	UpdateAgentService(ctx context.Context, data UpdateAgentRequest) (Agent, error)
	DeleteAgentService(ctx context.Context, id string) error
	GetAgentService(ctx context.Context, id string) (AgentDetailResponse, error)
	GetAgentByEmailService(ctx context.Context, email string) (Agent, error)
	ListAgentsService(ctx context.Context, data ListAgentsRequest) ([]Agent, error)
	ExportAgentsPdfService(ctx context.Context, data ListAgentsRequest) ([]byte, error)
	BumpCounters(ctx context.Context, agentID string, registrations int, collected int64) error
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Activities          activity.InterfaceService
	Logger              *log.Logger
	Now                 func() time.Time

	// mu serialises the email check with the write, and guards lastSeq.
	mu      sync.Mutex
	lastSeq int
}

func NewAgentService(repo InterfaceRepository, activities activity.InterfaceService, logger *log.Logger) *Service {
	s := &Service{
		InterfaceRepository: repo,
		Activities:          activities,
		Logger:              logger,
		Now:                 time.Now,
	}
	if agents, err := repo.ListAgents(context.Background()); err == nil {
		s.lastSeq = highestSeq(agents)
	}
	return s
}

func (s *Service) CreateAgentService(ctx context.Context, data CreateAgentRequest) (Agent, error) {
	if err := validation.Validate(data); err != nil {
		return Agent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.InterfaceRepository.GetAgentByEmail(ctx, data.Email); err == nil {
		return Agent{}, ErrEmailTaken
	}

	id, err := s.nextID(ctx)
	if err != nil {
		return Agent{}, err
	}
	result, err := s.InterfaceRepository.CreateAgent(ctx, data.ParseCreateToAgent(id, s.Now()))
	if err != nil {
		return Agent{}, err
	}

	s.Logger.WithFields(log.Fields{"agent_id": result.ID, "email": result.Email}).Info("agent created")
	return result, nil
}

// nextID continues the agent-<n> sequence. Numbers of deleted agents are
// never handed out again, their activities still carry the old id.
// Callers hold s.mu.
func (s *Service) nextID(ctx context.Context) (string, error) {
	agents, err := s.InterfaceRepository.ListAgents(ctx)
	if err != nil {
		return "", err
	}
	if n := highestSeq(agents); n > s.lastSeq {
		s.lastSeq = n
	}
	s.lastSeq++
	return fmt.Sprintf("agent-%d", s.lastSeq), nil
}

func highestSeq(agents []Agent) int {
	max := 0
	for _, a := range agents {
		n, err := strconv.Atoi(strings.TrimPrefix(a.ID, "agent-"))
		if err == nil && n > max {
			max = n
		}
	}
	return max
}

func (s *Service) UpdateAgentService(ctx context.Context, data UpdateAgentRequest) (Agent, error) {
	if err := validation.Validate(data); err != nil {
		return Agent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if other, err := s.InterfaceRepository.GetAgentByEmail(ctx, data.Email); err == nil && other.ID != data.ID {
		return Agent{}, ErrEmailTaken
	}

	result, err := s.InterfaceRepository.UpdateAgent(ctx, data.ID, func(a *Agent) error {
		a.Name = strings.TrimSpace(data.Name)
		a.Email = strings.TrimSpace(data.Email)
		a.Status = data.Status
		a.Avatar = Initials(a.Name)
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return Agent{}, ErrAgentNotFound
	}
	return result.CountersOn(s.Now()), err
}

func (s *Service) DeleteAgentService(ctx context.Context, id string) error {
	err := s.InterfaceRepository.DeleteAgent(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrAgentNotFound
	}
	return err
}

func (s *Service) GetAgentService(ctx context.Context, id string) (AgentDetailResponse, error) {
	a, err := s.InterfaceRepository.GetAgentById(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return AgentDetailResponse{}, ErrAgentNotFound
	}
	if err != nil {
		return AgentDetailResponse{}, err
	}

	today, err := s.Activities.AgentActivitiesService(ctx, id, s.Now())
	if err != nil {
		return AgentDetailResponse{}, err
	}
	return AgentDetailResponse{Agent: a.CountersOn(s.Now()), Activities: today}, nil
}

func (s *Service) GetAgentByEmailService(ctx context.Context, email string) (Agent, error) {
	a, err := s.InterfaceRepository.GetAgentByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return Agent{}, ErrAgentNotFound
	}
	return a, err
}

func (s *Service) ListAgentsService(ctx context.Context, data ListAgentsRequest) ([]Agent, error) {
	agents, err := s.InterfaceRepository.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	out := make([]Agent, 0, len(agents))
	for _, a := range agents {
		if validation.ContainsFold(a.Name, data.Search) || validation.ContainsFold(a.Email, data.Search) {
			out = append(out, a.CountersOn(now))
		}
	}
	return out, nil
}

func (s *Service) ExportAgentsPdfService(ctx context.Context, data ListAgentsRequest) ([]byte, error) {
	agents, err := s.ListAgentsService(ctx, data)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(agents))
	for _, a := range agents {
		rows = append(rows, []string{
			a.Name,
			a.Email,
			a.Status,
			strconv.Itoa(a.RegistrationsToday),
			money.Group(a.FinesCollectedToday),
		})
	}
	return pdf.Bytes(pdf.Table{
		Title:       "Rapport des Agents",
		Headers:     []string{"Agent", "Email", "Statut", "Enreg. (jour)", "Amendes (jour, CDF)"},
		Rows:        rows,
		GeneratedAt: s.Now(),
	})
}

// BumpCounters adds to the agent's daily counters, starting them over when
// the last bump was on an earlier day.
func (s *Service) BumpCounters(ctx context.Context, agentID string, registrations int, collected int64) error {
	now := s.Now()
	_, err := s.InterfaceRepository.UpdateAgent(ctx, agentID, func(a *Agent) error {
		*a = a.CountersOn(now)
		a.RegistrationsToday += registrations
		a.FinesCollectedToday += collected
		a.CountersDay = now.Format(validation.DateLayout)
		return nil
	})
	if errors.Is(err, database.ErrNotFound) {
		return ErrAgentNotFound
	}
	return err
}
