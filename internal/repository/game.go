package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uchoabruno/bgls/internal/db"
)

var gameSortColumns = map[string]string{
	"id":           "e.id",
	"name":         "e.name",
	"console.id":   "console.id",
	"console.name": "console.name",
}

// gameRow is the flat shape of one joined game row. Columns carry an
// alias prefix per source table so the same query can hold the game and
// its console side by side. Everything is nullable at scan time: a left
// join may legitimately produce an all-NULL console.
type gameRow struct {
	EID                     *uint64 `gorm:"column:e_id"`
	EName                   *string `gorm:"column:e_name"`
	ECover                  []byte  `gorm:"column:e_cover"`
	ECoverContentType       *string `gorm:"column:e_cover_content_type"`
	EConsoleID              *uint64 `gorm:"column:e_console_id"`
	ConsoleID               *uint64 `gorm:"column:console_id"`
	ConsoleName             *string `gorm:"column:console_name"`
	ConsoleImage            []byte  `gorm:"column:console_image"`
	ConsoleImageContentType *string `gorm:"column:console_image_content_type"`
}

// toGame assembles the nested entity. The joined console is only
// materialized when its key column is non-NULL; a NULL key means the
// relation is absent, not an empty console.
func (r gameRow) toGame() db.Game {
	game := db.Game{
		Cover:            r.ECover,
		CoverContentType: r.ECoverContentType,
	}
	if r.EID != nil {
		game.ID = *r.EID
	}
	if r.EName != nil {
		game.Name = *r.EName
	}
	if r.EConsoleID != nil {
		game.ConsoleID = *r.EConsoleID
	}
	if r.ConsoleID != nil {
		console := db.Console{
			ID:               *r.ConsoleID,
			Image:            r.ConsoleImage,
			ImageContentType: r.ConsoleImageContentType,
		}
		if r.ConsoleName != nil {
			console.Name = *r.ConsoleName
		}
		game.Console = &console
	}
	return game
}

func gameSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"e.id AS e_id",
			"e.name AS e_name",
			"e.cover AS e_cover",
			"e.cover_content_type AS e_cover_content_type",
			"e.console_id AS e_console_id",
			"console.id AS console_id",
			"console.name AS console_name",
			"console.image AS console_image",
			"console.image_content_type AS console_image_content_type",
		).
		From("game e").
		LeftJoin("console console ON e.console_id = console.id")
}

type GormGameStor struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewGormGameStor(db *gorm.DB, logger *zap.SugaredLogger) *GormGameStor {
	return &GormGameStor{db: db, logger: logger}
}

func (s *GormGameStor) Get(id uint64) (*db.Game, error) {
	qb := gameSelect().Where(squirrel.Eq{"e.id": id})
	games, err := s.query(qb)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ErrNotFound
	}
	return &games[0], nil
}

func (s *GormGameStor) ListByCriteria(criteria GameCriteria, page Pageable) ([]db.Game, error) {
	qb := gameSelect()
	if conds := criteria.conditions(); len(conds) != 0 {
		qb = qb.Where(conds)
	}
	qb = applySort(qb, page, gameSortColumns)
	qb = applyPaging(qb, page)
	return s.query(qb)
}

func (s *GormGameStor) CountByCriteria(criteria GameCriteria) (int64, error) {
	qb := squirrel.
		Select("COUNT(e.id)").
		From("game e").
		LeftJoin("console console ON e.console_id = console.id")
	if conds := criteria.conditions(); len(conds) != 0 {
		qb = qb.Where(conds)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build sql")
	}

	var count int64
	res := s.db.Raw(sql, args...).Scan(&count)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "count games")
	}
	return count, nil
}

func (s *GormGameStor) Exists(id uint64) (bool, error) {
	var count int64
	res := s.db.Model(&db.Game{}).Where("id = ?", id).Count(&count)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "game exists")
	}
	return count > 0, nil
}

func (s *GormGameStor) Save(game *db.Game) error {
	// Detach the joined console before writing so the FK column is the
	// single source of truth for the relation.
	game.Console = nil
	res := s.db.Save(game)
	if res.Error != nil {
		return errors.Wrap(res.Error, "save game")
	}
	return nil
}

func (s *GormGameStor) Delete(id uint64) error {
	res := s.db.Delete(&db.Game{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete game")
	}
	return nil
}

func (s *GormGameStor) query(qb squirrel.SelectBuilder) ([]db.Game, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	rows := make([]gameRow, 0)
	res := s.db.Raw(sql, args...).Scan(&rows)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	games := make([]db.Game, len(rows))
	for i := range rows {
		games[i] = rows[i].toGame()
	}
	return games, nil
}
