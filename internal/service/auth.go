package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/uchoabruno/bgls/internal/db"
	"github.com/uchoabruno/bgls/internal/repository"
)

var (
	ErrLoginUserNotFound         = errors.New("user not found")
	ErrLoginPasswordDoesNotMatch = errors.New("password does not match")
)

// AuthService manages users and their API tokens. Admin users are
// provisioned directly in the database; registration never grants the
// admin role.
type AuthService struct {
	users  repository.UserStor
	logger *zap.SugaredLogger
}

func NewAuthService(users repository.UserStor, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

func (s *AuthService) Register(login, email, pass string) (string, error) {
	hash, err := s.bcryptGen(pass)
	if err != nil {
		return "", errors.Wrap(err, "bcryptGen")
	}
	token := uuid.New().String()
	err = s.users.Create(&db.User{
		Login:    login,
		Email:    email,
		Password: hash,
		Token:    token,
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) Login(login, pass string) (string, error) {
	user, err := s.users.GetByLogin(login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrLoginUserNotFound
		}
		return "", err
	}

	if err := s.bcryptCheck(user.Password, pass); err != nil {
		return "", ErrLoginPasswordDoesNotMatch
	}

	token := uuid.New().String()
	if err := s.users.UpdateToken(user.ID, token); err != nil {
		return "", errors.Wrap(err, "update token")
	}

	return token, nil
}

func (s *AuthService) Authenticate(token string) (*db.User, error) {
	return s.users.GetByToken(token)
}

func (s *AuthService) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), 14)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (s *AuthService) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
