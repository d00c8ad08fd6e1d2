package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uchoabruno/bgls/internal/db"
)

var itemSortColumns = map[string]string{
	"id":                "e.id",
	"owner.login":       "owner.login",
	"lendedTo.login":    "lended_to.login",
	"game.name":         "game.name",
	"game.console.name": "console.name",
}

// itemRow is the flat shape of one four-way joined item row. The user
// table appears twice under different aliases (owner, lended_to); the
// console is reached through the game.
type itemRow struct {
	EID           *uint64 `gorm:"column:e_id"`
	EOwnerID      *uint64 `gorm:"column:e_owner_id"`
	ELendedToID   *uint64 `gorm:"column:e_lended_to_id"`
	EGameID       *uint64 `gorm:"column:e_game_id"`
	OwnerID       *uint64 `gorm:"column:owner_id"`
	OwnerLogin    *string `gorm:"column:owner_login"`
	LendedToID    *uint64 `gorm:"column:lended_to_id"`
	LendedToLogin *string `gorm:"column:lended_to_login"`
	GameID        *uint64 `gorm:"column:game_id"`
	GameName      *string `gorm:"column:game_name"`
	GameConsoleID *uint64 `gorm:"column:game_console_id"`
	ConsoleID     *uint64 `gorm:"column:console_id"`
	ConsoleName   *string `gorm:"column:console_name"`
}

func (r itemRow) toItem() db.Item {
	item := db.Item{
		OwnerID:    r.EOwnerID,
		LendedToID: r.ELendedToID,
		GameID:     r.EGameID,
	}
	if r.EID != nil {
		item.ID = *r.EID
	}
	if r.OwnerID != nil {
		item.Owner = &db.User{ID: *r.OwnerID, Login: strOrEmpty(r.OwnerLogin)}
	}
	if r.LendedToID != nil {
		item.LendedTo = &db.User{ID: *r.LendedToID, Login: strOrEmpty(r.LendedToLogin)}
	}
	if r.GameID != nil {
		game := db.Game{ID: *r.GameID, Name: strOrEmpty(r.GameName)}
		if r.GameConsoleID != nil {
			game.ConsoleID = *r.GameConsoleID
		}
		if r.ConsoleID != nil {
			game.Console = &db.Console{ID: *r.ConsoleID, Name: strOrEmpty(r.ConsoleName)}
		}
		item.Game = &game
	}
	return item
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func itemSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"e.id AS e_id",
			"e.owner_id AS e_owner_id",
			"e.lended_to_id AS e_lended_to_id",
			"e.game_id AS e_game_id",
			"owner.id AS owner_id",
			"owner.login AS owner_login",
			"lended_to.id AS lended_to_id",
			"lended_to.login AS lended_to_login",
			"game.id AS game_id",
			"game.name AS game_name",
			"game.console_id AS game_console_id",
			"console.id AS console_id",
			"console.name AS console_name",
		).
		From("item e").
		LeftJoin("jhi_user owner ON e.owner_id = owner.id").
		LeftJoin("jhi_user lended_to ON e.lended_to_id = lended_to.id").
		LeftJoin("game game ON e.game_id = game.id").
		LeftJoin("console console ON game.console_id = console.id")
}

type GormItemStor struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewGormItemStor(db *gorm.DB, logger *zap.SugaredLogger) *GormItemStor {
	return &GormItemStor{db: db, logger: logger}
}

func (s *GormItemStor) Get(id uint64) (*db.Item, error) {
	qb := itemSelect().Where(squirrel.Eq{"e.id": id})
	items, err := s.query(qb)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

func (s *GormItemStor) ListFiltered(filter ItemFilter, page Pageable) ([]db.Item, error) {
	qb := itemSelect()
	if conds := filter.conditions(); len(conds) != 0 {
		qb = qb.Where(conds)
	}
	qb = applySort(qb, page, itemSortColumns)
	qb = applyPaging(qb, page)
	return s.query(qb)
}

func (s *GormItemStor) CountFiltered(filter ItemFilter) (int64, error) {
	qb := squirrel.
		Select("COUNT(e.id)").
		From("item e").
		LeftJoin("jhi_user owner ON e.owner_id = owner.id").
		LeftJoin("jhi_user lended_to ON e.lended_to_id = lended_to.id").
		LeftJoin("game game ON e.game_id = game.id").
		LeftJoin("console console ON game.console_id = console.id")
	if conds := filter.conditions(); len(conds) != 0 {
		qb = qb.Where(conds)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build sql")
	}

	var count int64
	res := s.db.Raw(sql, args...).Scan(&count)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "count items")
	}
	return count, nil
}

func (s *GormItemStor) ListByOwner(ownerID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{OwnerID: &ownerID}, Pageable{Size: -1})
}

func (s *GormItemStor) ListByLendedTo(userID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{LendedToID: &userID}, Pageable{Size: -1})
}

func (s *GormItemStor) ListByGame(gameID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{GameID: &gameID}, Pageable{Size: -1})
}

func (s *GormItemStor) Exists(id uint64) (bool, error) {
	var count int64
	res := s.db.Model(&db.Item{}).Where("id = ?", id).Count(&count)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "item exists")
	}
	return count > 0, nil
}

func (s *GormItemStor) Save(item *db.Item) error {
	item.Owner = nil
	item.LendedTo = nil
	item.Game = nil
	res := s.db.Save(item)
	if res.Error != nil {
		return errors.Wrap(res.Error, "save item")
	}
	return nil
}

func (s *GormItemStor) Delete(id uint64) error {
	res := s.db.Delete(&db.Item{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete item")
	}
	return nil
}

func (s *GormItemStor) query(qb squirrel.SelectBuilder) ([]db.Item, error) {
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	rows := make([]itemRow, 0)
	res := s.db.Raw(sql, args...).Scan(&rows)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	items := make([]db.Item, len(rows))
	for i := range rows {
		items[i] = rows[i].toItem()
	}
	return items, nil
}
