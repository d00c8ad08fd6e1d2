package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uchoabruno/bgls/internal/db"
)

var consoleSortColumns = map[string]string{
	"id":   "e.id",
	"name": "e.name",
}

type GormConsoleStor struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewGormConsoleStor(db *gorm.DB, logger *zap.SugaredLogger) *GormConsoleStor {
	return &GormConsoleStor{db: db, logger: logger}
}

func (s *GormConsoleStor) Get(id uint64) (*db.Console, error) {
	console := db.Console{}
	res := s.db.Where("id = ?", id).First(&console)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(res.Error, "get console")
	}
	return &console, nil
}

func (s *GormConsoleStor) List(page Pageable) ([]db.Console, error) {
	qb := squirrel.
		Select("e.id", "e.name", "e.image", "e.image_content_type").
		From("console e")
	qb = applySort(qb, page, consoleSortColumns)
	qb = applyPaging(qb, page)

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	consoles := make([]db.Console, 0)
	res := s.db.Raw(sql, args...).Scan(&consoles)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}
	return consoles, nil
}

func (s *GormConsoleStor) Count() (int64, error) {
	var count int64
	res := s.db.Model(&db.Console{}).Count(&count)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "count consoles")
	}
	return count, nil
}

func (s *GormConsoleStor) Exists(id uint64) (bool, error) {
	var count int64
	res := s.db.Model(&db.Console{}).Where("id = ?", id).Count(&count)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "console exists")
	}
	return count > 0, nil
}

func (s *GormConsoleStor) Save(console *db.Console) error {
	res := s.db.Save(console)
	if res.Error != nil {
		return errors.Wrap(res.Error, "save console")
	}
	return nil
}

func (s *GormConsoleStor) Delete(id uint64) error {
	res := s.db.Delete(&db.Console{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete console")
	}
	return nil
}
