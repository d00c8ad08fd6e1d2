package repository

import (
	"github.com/Masterminds/squirrel"
)

type (
	// StringFilter holds the optional predicates accepted for a string
	// field. All set predicates apply together (AND). Substring matches
	// are case-insensitive.
	StringFilter struct {
		Equals         *string
		NotEquals      *string
		In             []string
		Contains       *string
		DoesNotContain *string
		Specified      *bool
	}

	// LongFilter holds the optional predicates accepted for a numeric
	// field.
	LongFilter struct {
		Equals             *uint64
		NotEquals          *uint64
		In                 []uint64
		GreaterThan        *uint64
		GreaterThanOrEqual *uint64
		LessThan           *uint64
		LessThanOrEqual    *uint64
		Specified          *bool
	}

	// GameCriteria is the structured filter for game listings. Each field
	// is optional; set fields compose with AND. ConsoleID filters on the
	// joined console row.
	GameCriteria struct {
		ID        *LongFilter
		Name      *StringFilter
		ConsoleID *LongFilter
	}

	// ItemFilter carries the ad-hoc item listing parameters. The login
	// and name filters are case-insensitive substring matches against the
	// joined user, game and console rows.
	ItemFilter struct {
		OwnerID       *uint64
		LendedToID    *uint64
		LendedToLogin *string
		GameID        *uint64
		GameName      *string
		ConsoleID     *uint64
	}
)

func (f *StringFilter) conditions(column string) []squirrel.Sqlizer {
	if f == nil {
		return nil
	}
	conds := make([]squirrel.Sqlizer, 0, 4)
	if f.Equals != nil {
		conds = append(conds, squirrel.Eq{column: *f.Equals})
	}
	if f.NotEquals != nil {
		conds = append(conds, squirrel.NotEq{column: *f.NotEquals})
	}
	if len(f.In) != 0 {
		conds = append(conds, squirrel.Eq{column: f.In})
	}
	if f.Contains != nil {
		conds = append(conds, squirrel.ILike{column: "%" + *f.Contains + "%"})
	}
	if f.DoesNotContain != nil {
		conds = append(conds, squirrel.NotILike{column: "%" + *f.DoesNotContain + "%"})
	}
	conds = append(conds, specifiedCondition(column, f.Specified)...)
	return conds
}

func (f *LongFilter) conditions(column string) []squirrel.Sqlizer {
	if f == nil {
		return nil
	}
	conds := make([]squirrel.Sqlizer, 0, 4)
	if f.Equals != nil {
		conds = append(conds, squirrel.Eq{column: *f.Equals})
	}
	if f.NotEquals != nil {
		conds = append(conds, squirrel.NotEq{column: *f.NotEquals})
	}
	if len(f.In) != 0 {
		conds = append(conds, squirrel.Eq{column: f.In})
	}
	if f.GreaterThan != nil {
		conds = append(conds, squirrel.Gt{column: *f.GreaterThan})
	}
	if f.GreaterThanOrEqual != nil {
		conds = append(conds, squirrel.GtOrEq{column: *f.GreaterThanOrEqual})
	}
	if f.LessThan != nil {
		conds = append(conds, squirrel.Lt{column: *f.LessThan})
	}
	if f.LessThanOrEqual != nil {
		conds = append(conds, squirrel.LtOrEq{column: *f.LessThanOrEqual})
	}
	conds = append(conds, specifiedCondition(column, f.Specified)...)
	return conds
}

func specifiedCondition(column string, specified *bool) []squirrel.Sqlizer {
	if specified == nil {
		return nil
	}
	if *specified {
		return []squirrel.Sqlizer{squirrel.NotEq{column: nil}}
	}
	return []squirrel.Sqlizer{squirrel.Eq{column: nil}}
}

func (c GameCriteria) conditions() squirrel.And {
	conds := squirrel.And{}
	conds = append(conds, c.ID.conditions("e.id")...)
	conds = append(conds, c.Name.conditions("e.name")...)
	conds = append(conds, c.ConsoleID.conditions("console.id")...)
	return conds
}

func (f ItemFilter) conditions() squirrel.And {
	conds := squirrel.And{}
	if f.OwnerID != nil {
		conds = append(conds, squirrel.Eq{"e.owner_id": *f.OwnerID})
	}
	if f.LendedToID != nil {
		conds = append(conds, squirrel.Eq{"e.lended_to_id": *f.LendedToID})
	}
	if f.LendedToLogin != nil {
		conds = append(conds, squirrel.ILike{"lended_to.login": "%" + *f.LendedToLogin + "%"})
	}
	if f.GameID != nil {
		conds = append(conds, squirrel.Eq{"e.game_id": *f.GameID})
	}
	if f.GameName != nil {
		conds = append(conds, squirrel.ILike{"game.name": "%" + *f.GameName + "%"})
	}
	if f.ConsoleID != nil {
		conds = append(conds, squirrel.Eq{"game.console_id": *f.ConsoleID})
	}
	return conds
}

// Empty reports whether no filter parameter was supplied at all, in which
// case listings take the unfiltered path.
func (f ItemFilter) Empty() bool {
	return f.OwnerID == nil && f.LendedToID == nil && f.LendedToLogin == nil &&
		f.GameID == nil && f.GameName == nil && f.ConsoleID == nil
}
