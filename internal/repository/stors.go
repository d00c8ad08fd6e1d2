package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/uchoabruno/bgls/internal/db"
)

// ErrNotFound is returned by Get when no row carries the requested id.
var ErrNotFound = errors.New("entity not found")

const defaultPageSize = 20

type (
	// SortOrder is one `field,direction` pair from the sort query
	// parameter. Property names are entity-relative and may be transitive
	// (e.g. "game.console.name").
	SortOrder struct {
		Property string
		Desc     bool
	}

	// Pageable is zero-based page selection. A Size of 0 means the
	// default page size; a negative Size disables paging entirely
	// (used by count-through-list helpers and tests).
	Pageable struct {
		Page int
		Size int
		Sort []SortOrder
	}

	ConsoleStor interface {
		Get(id uint64) (*db.Console, error)
		List(page Pageable) ([]db.Console, error)
		Count() (int64, error)
		Exists(id uint64) (bool, error)
		Save(console *db.Console) error
		Delete(id uint64) error
	}

	GameStor interface {
		Get(id uint64) (*db.Game, error)
		ListByCriteria(criteria GameCriteria, page Pageable) ([]db.Game, error)
		CountByCriteria(criteria GameCriteria) (int64, error)
		Exists(id uint64) (bool, error)
		Save(game *db.Game) error
		Delete(id uint64) error
	}

	ItemStor interface {
		Get(id uint64) (*db.Item, error)
		ListFiltered(filter ItemFilter, page Pageable) ([]db.Item, error)
		CountFiltered(filter ItemFilter) (int64, error)
		ListByOwner(ownerID uint64) ([]db.Item, error)
		ListByLendedTo(userID uint64) ([]db.Item, error)
		ListByGame(gameID uint64) ([]db.Item, error)
		Exists(id uint64) (bool, error)
		Save(item *db.Item) error
		Delete(id uint64) error
	}

	UserStor interface {
		GetByToken(token string) (*db.User, error)
		GetByLogin(login string) (*db.User, error)
		Create(user *db.User) error
		UpdateToken(id uint64, token string) error
	}
)

func (p Pageable) size() uint64 {
	if p.Size == 0 {
		return defaultPageSize
	}
	return uint64(p.Size)
}

func (p Pageable) offset() uint64 {
	if p.Page <= 0 {
		return 0
	}
	return uint64(p.Page) * p.size()
}

// applyPaging adds LIMIT/OFFSET unless paging is disabled.
func applyPaging(qb squirrel.SelectBuilder, page Pageable) squirrel.SelectBuilder {
	if page.Size < 0 {
		return qb
	}
	return qb.Limit(page.size()).Offset(page.offset())
}

// applySort translates sort properties through the per-entity column
// whitelist and always appends the primary key as a tie breaker. Unknown
// properties are dropped; no usable sort falls back to ascending id.
func applySort(qb squirrel.SelectBuilder, page Pageable, columns map[string]string) squirrel.SelectBuilder {
	clauses := make([]string, 0, len(page.Sort)+1)
	for _, order := range page.Sort {
		column, ok := columns[order.Property]
		if !ok {
			continue
		}
		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		clauses = append(clauses, column+" "+direction)
	}
	clauses = append(clauses, "e.id ASC")
	return qb.OrderBy(clauses...)
}
