package repository

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uchoabruno/bgls/internal/db"
)

type GormUserStor struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewGormUserStor(db *gorm.DB, logger *zap.SugaredLogger) *GormUserStor {
	return &GormUserStor{db: db, logger: logger}
}

func (s *GormUserStor) GetByToken(token string) (*db.User, error) {
	user := db.User{}
	res := s.db.Where("token = ?", token).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "get user by token")
	}
	return &user, nil
}

func (s *GormUserStor) GetByLogin(login string) (*db.User, error) {
	user := db.User{}
	res := s.db.Where("login = ?", login).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "get user by login")
	}
	return &user, nil
}

func (s *GormUserStor) Create(user *db.User) error {
	res := s.db.Create(user)
	if res.Error != nil {
		return errors.Wrap(res.Error, "create user")
	}
	return nil
}

func (s *GormUserStor) UpdateToken(id uint64, token string) error {
	res := s.db.Model(&db.User{ID: id}).Update("token", token)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update token")
	}
	return nil
}
