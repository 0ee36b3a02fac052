package login

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"tambua/infra/database"
	"tambua/infra/token"
	"tambua/internal/agent"
	"tambua/validation"
)

var ErrInvalidCredentials = errors.New("Adresse e-mail ou mot de passe incorrect.")

type AgentLookup interface {
	GetAgentByEmailService(ctx context.Context, email string) (agent.Agent, error)
}

type ServiceInterface interface {
	Login(context.Context, RequestLogin) (ResponseLogin, error)
}

type Service struct {
	repository RepositoryInterface
	agents     AgentLookup
	maker      token.Maker
	ttl        time.Duration
	logger     *log.Logger
}

func NewService(repository RepositoryInterface, agents AgentLookup, maker token.Maker, ttl time.Duration, logger *log.Logger) *Service {
	return &Service{repository, agents, maker, ttl, logger}
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *Service) Login(ctx context.Context, data RequestLogin) (ResponseLogin, error) {
	if err := validation.Validate(data); err != nil {
		return ResponseLogin{}, ErrInvalidCredentials
	}

	account, err := s.repository.GetAccount(ctx, data.Email)
	if errors.Is(err, database.ErrNotFound) {
		return ResponseLogin{}, ErrInvalidCredentials
	}
	if err != nil {
		return ResponseLogin{}, err
	}
	if !CheckPasswordHash(data.Password, account.PasswordHash) {
		return ResponseLogin{}, ErrInvalidCredentials
	}

	user := token.User{
		Name:   account.Name,
		Email:  account.Email,
		Role:   account.Role,
		Avatar: account.Avatar,
	}
	if account.Role == token.RoleAgent && s.agents != nil {
		a, err := s.agents.GetAgentByEmailService(ctx, account.Email)
		switch {
		case err == nil:
			user.AgentID = a.ID
		case errors.Is(err, agent.ErrAgentNotFound):
			s.logger.WithField("email", account.Email).Warn("agent account has no agent record")
		default:
			return ResponseLogin{}, err
		}
	}

	tokenStr, _, err := s.maker.CreateToken(user, s.ttl)
	if err != nil {
		return ResponseLogin{}, err
	}

	s.logger.WithFields(log.Fields{"email": account.Email, "role": account.Role}).Info("user logged in")
	return ResponseLogin{
		Token: tokenStr,
		User: ResponseUser{
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role,
			Avatar:  user.Avatar,
			AgentID: user.AgentID,
		},
		Home: HomeFor(user.Role),
	}, nil
}
