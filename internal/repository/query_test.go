package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSelectJoinsConsole(t *testing.T) {
	sql, args, err := gameSelect().ToSql()
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Contains(t, sql, "FROM game e")
	assert.Contains(t, sql, "LEFT JOIN console console ON e.console_id = console.id")
	assert.Contains(t, sql, "e.id AS e_id")
	assert.Contains(t, sql, "console.id AS console_id")
}

func TestItemSelectJoinsUserTwice(t *testing.T) {
	sql, _, err := itemSelect().ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM item e")
	assert.Contains(t, sql, "LEFT JOIN jhi_user owner ON e.owner_id = owner.id")
	assert.Contains(t, sql, "LEFT JOIN jhi_user lended_to ON e.lended_to_id = lended_to.id")
	assert.Contains(t, sql, "LEFT JOIN game game ON e.game_id = game.id")
	assert.Contains(t, sql, "LEFT JOIN console console ON game.console_id = console.id")
}

func TestApplySortTranslatesWhitelistedColumns(t *testing.T) {
	page := Pageable{
		Size: -1,
		Sort: []SortOrder{
			{Property: "console.name", Desc: true},
			{Property: "name"},
		},
	}
	sql, _, err := applySort(gameSelect(), page, gameSortColumns).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY console.name DESC, e.name ASC, e.id ASC")
}

func TestApplySortDropsUnknownProperties(t *testing.T) {
	page := Pageable{
		Size: -1,
		Sort: []SortOrder{{Property: "cover; DROP TABLE game"}},
	}
	sql, _, err := applySort(gameSelect(), page, gameSortColumns).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY e.id ASC")
	assert.NotContains(t, sql, "DROP TABLE")
}

func TestApplySortTransitiveItemProperties(t *testing.T) {
	page := Pageable{
		Size: -1,
		Sort: []SortOrder{{Property: "game.console.name"}, {Property: "lendedTo.login", Desc: true}},
	}
	sql, _, err := applySort(itemSelect(), page, itemSortColumns).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY console.name ASC, lended_to.login DESC, e.id ASC")
}

func TestApplyPaging(t *testing.T) {
	sql, _, err := applyPaging(gameSelect(), Pageable{Page: 2, Size: 5}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 5 OFFSET 10")

	sql, _, err = applyPaging(gameSelect(), Pageable{}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 20 OFFSET 0")

	sql, _, err = applyPaging(gameSelect(), Pageable{Size: -1}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "LIMIT")
}

func TestGameRowAssemblesConsole(t *testing.T) {
	row := gameRow{
		EID:         u64Ptr(3),
		EName:       strPtr("Chrono Trigger"),
		EConsoleID:  u64Ptr(7),
		ConsoleID:   u64Ptr(7),
		ConsoleName: strPtr("SNES"),
	}
	game := row.toGame()
	assert.Equal(t, uint64(3), game.ID)
	assert.Equal(t, "Chrono Trigger", game.Name)
	assert.Equal(t, uint64(7), game.ConsoleID)
	require.NotNil(t, game.Console)
	assert.Equal(t, uint64(7), game.Console.ID)
	assert.Equal(t, "SNES", game.Console.Name)
}

func TestGameRowNullConsoleKeyMeansNoConsole(t *testing.T) {
	row := gameRow{
		EID:   u64Ptr(3),
		EName: strPtr("Homebrew"),
	}
	game := row.toGame()
	assert.Nil(t, game.Console)
}

func TestItemRowAssemblesRelations(t *testing.T) {
	row := itemRow{
		EID:           u64Ptr(1),
		EOwnerID:      u64Ptr(10),
		ELendedToID:   u64Ptr(11),
		EGameID:       u64Ptr(5),
		OwnerID:       u64Ptr(10),
		OwnerLogin:    strPtr("alice"),
		LendedToID:    u64Ptr(11),
		LendedToLogin: strPtr("bob"),
		GameID:        u64Ptr(5),
		GameName:      strPtr("Tetris"),
		GameConsoleID: u64Ptr(2),
		ConsoleID:     u64Ptr(2),
		ConsoleName:   strPtr("Game Boy"),
	}
	item := row.toItem()
	require.NotNil(t, item.Owner)
	assert.Equal(t, "alice", item.Owner.Login)
	require.NotNil(t, item.LendedTo)
	assert.Equal(t, "bob", item.LendedTo.Login)
	require.NotNil(t, item.Game)
	assert.Equal(t, "Tetris", item.Game.Name)
	require.NotNil(t, item.Game.Console)
	assert.Equal(t, "Game Boy", item.Game.Console.Name)
}

func TestItemRowBareItem(t *testing.T) {
	item := itemRow{EID: u64Ptr(9)}.toItem()
	assert.Equal(t, uint64(9), item.ID)
	assert.Nil(t, item.OwnerID)
	assert.Nil(t, item.Owner)
	assert.Nil(t, item.LendedTo)
	assert.Nil(t, item.Game)
}

func TestItemRowGameWithoutConsole(t *testing.T) {
	row := itemRow{
		EID:      u64Ptr(1),
		EGameID:  u64Ptr(5),
		GameID:   u64Ptr(5),
		GameName: strPtr("Prototype"),
	}
	item := row.toItem()
	require.NotNil(t, item.Game)
	assert.Nil(t, item.Game.Console)
}
