package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/validation"
)

// AgentLedger keeps the per-agent daily counters.
type AgentLedger interface {
	BumpCounters(ctx context.Context, agentID string, registrations int, collected int64) error
}

// Publisher pushes recorded activities to live subscribers.
type Publisher interface {
	Publish(v any)
}

type InterfaceService interface {
	RecordActivityService(ctx context.Context, data RecordActivityDto) (Activity, error)
	ListActivitiesService(ctx context.Context, data ListActivitiesRequest) ([]Activity, error)
	AgentActivitiesService(ctx context.Context, agentID string, day time.Time) ([]Activity, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Ledger              AgentLedger
	Publisher           Publisher
	Logger              *log.Logger
	Now                 func() time.Time
}

func NewActivityService(repo InterfaceRepository, publisher Publisher, logger *log.Logger) *Service {
	return &Service{
		InterfaceRepository: repo,
		Publisher:           publisher,
		Logger:              logger,
		Now:                 time.Now,
	}
}

// SetLedger is called once the agent service exists, the two depend on each other.
func (s *Service) SetLedger(ledger AgentLedger) {
	s.Ledger = ledger
}

func (s *Service) RecordActivityService(ctx context.Context, data RecordActivityDto) (Activity, error) {
	if !validation.Contains(Actions, data.Action) {
		return Activity{}, fmt.Errorf("action inconnue %q", data.Action)
	}

	a := Activity{
		ID:        uuid.NewString(),
		AgentID:   data.Actor.AgentID,
		AgentName: data.Actor.Name,
		Date:      s.Now(),
		Action:    data.Action,
		Details:   data.Details,
		Amount:    data.Amount,
	}
	a, err := s.InterfaceRepository.CreateActivity(ctx, a)
	if err != nil {
		return Activity{}, err
	}

	if s.Ledger != nil && a.AgentID != "" {
		registrations := 0
		if IsRegistration(a.Action) {
			registrations = 1
		}
		var collected int64
		if a.Action == ActionFinePayment && a.Amount != nil {
			collected = *a.Amount
		}
		if registrations > 0 || collected > 0 {
			if err := s.Ledger.BumpCounters(ctx, a.AgentID, registrations, collected); err != nil {
				s.Logger.WithError(err).WithField("agent_id", a.AgentID).Warn("agent counters not updated")
			}
		}
	}

	if s.Publisher != nil {
		s.Publisher.Publish(a)
	}

	s.Logger.WithFields(log.Fields{
		"action":   a.Action,
		"agent_id": a.AgentID,
		"agent":    a.AgentName,
	}).Info("activity recorded")
	return a, nil
}

func (s *Service) ListActivitiesService(ctx context.Context, data ListActivitiesRequest) ([]Activity, error) {
	var day time.Time
	if data.Date != "" {
		d, err := validation.ParseDate(data.Date)
		if err != nil {
			return nil, err
		}
		day = d
	}

	all, err := s.InterfaceRepository.ListActivities(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Activity, 0, len(all))
	for _, a := range all {
		if data.AgentID != "" && a.AgentID != data.AgentID {
			continue
		}
		if data.Action != "" && a.Action != data.Action {
			continue
		}
		if !day.IsZero() && !SameDay(a.Date, day) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) AgentActivitiesService(ctx context.Context, agentID string, day time.Time) ([]Activity, error) {
	all, err := s.InterfaceRepository.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Activity, 0)
	for _, a := range all {
		if a.AgentID == agentID && (day.IsZero() || SameDay(a.Date, day)) {
			out = append(out, a)
		}
	}
	return out, nil
}

// SameDay compares calendar dates in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
