package repository

import (
	"sort"
	"strings"

	"github.com/uchoabruno/bgls/internal/db"
)

// In-memory stor implementations backing handler tests. They replicate
// the observable behavior of the gorm stors: identity assignment on save,
// idempotent delete, AND-composed filters with case-insensitive substring
// matching, whitelisted sorting with an id tie breaker.

type InMemoryConsoleStor struct {
	consoles []db.Console
	nextID   uint64
}

func NewInMemoryConsoleStor() *InMemoryConsoleStor {
	return &InMemoryConsoleStor{nextID: 1}
}

func (s *InMemoryConsoleStor) Get(id uint64) (*db.Console, error) {
	for i := range s.consoles {
		if s.consoles[i].ID == id {
			console := s.consoles[i]
			return &console, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryConsoleStor) List(page Pageable) ([]db.Console, error) {
	consoles := make([]db.Console, len(s.consoles))
	copy(consoles, s.consoles)
	sortSlice(consoles, page.Sort, consoleSortColumns, func(c db.Console, property string) string {
		if property == "name" {
			return c.Name
		}
		return ""
	}, func(c db.Console) uint64 { return c.ID })
	return pageSlice(consoles, page), nil
}

func (s *InMemoryConsoleStor) Count() (int64, error) {
	return int64(len(s.consoles)), nil
}

func (s *InMemoryConsoleStor) Exists(id uint64) (bool, error) {
	_, err := s.Get(id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *InMemoryConsoleStor) Save(console *db.Console) error {
	if console.ID == 0 {
		console.ID = s.nextID
		s.nextID++
		s.consoles = append(s.consoles, *console)
		return nil
	}
	for i := range s.consoles {
		if s.consoles[i].ID == console.ID {
			s.consoles[i] = *console
			return nil
		}
	}
	s.consoles = append(s.consoles, *console)
	return nil
}

func (s *InMemoryConsoleStor) Delete(id uint64) error {
	for i := range s.consoles {
		if s.consoles[i].ID == id {
			s.consoles = append(s.consoles[:i], s.consoles[i+1:]...)
			return nil
		}
	}
	return nil
}

type InMemoryGameStor struct {
	games  []db.Game
	nextID uint64
}

func NewInMemoryGameStor() *InMemoryGameStor {
	return &InMemoryGameStor{nextID: 1}
}

func (s *InMemoryGameStor) Get(id uint64) (*db.Game, error) {
	for i := range s.games {
		if s.games[i].ID == id {
			game := s.games[i]
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryGameStor) ListByCriteria(criteria GameCriteria, page Pageable) ([]db.Game, error) {
	matched := make([]db.Game, 0)
	for _, game := range s.games {
		if matchesGame(game, criteria) {
			matched = append(matched, game)
		}
	}
	sortSlice(matched, page.Sort, gameSortColumns, func(g db.Game, property string) string {
		switch property {
		case "name":
			return g.Name
		case "console.name":
			if g.Console != nil {
				return g.Console.Name
			}
		}
		return ""
	}, func(g db.Game) uint64 { return g.ID })
	return pageSlice(matched, page), nil
}

func (s *InMemoryGameStor) CountByCriteria(criteria GameCriteria) (int64, error) {
	games, err := s.ListByCriteria(criteria, Pageable{Size: -1})
	if err != nil {
		return 0, err
	}
	return int64(len(games)), nil
}

func (s *InMemoryGameStor) Exists(id uint64) (bool, error) {
	_, err := s.Get(id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *InMemoryGameStor) Save(game *db.Game) error {
	game.Console = nil
	if game.ID == 0 {
		game.ID = s.nextID
		s.nextID++
		s.games = append(s.games, *game)
		return nil
	}
	for i := range s.games {
		if s.games[i].ID == game.ID {
			s.games[i] = *game
			return nil
		}
	}
	s.games = append(s.games, *game)
	return nil
}

func (s *InMemoryGameStor) Delete(id uint64) error {
	for i := range s.games {
		if s.games[i].ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			return nil
		}
	}
	return nil
}

// SeedConsole attaches a console so that criteria against the joined row
// and transitive sorting have something to resolve.
func (s *InMemoryGameStor) SeedConsole(gameID uint64, console *db.Console) {
	for i := range s.games {
		if s.games[i].ID == gameID {
			s.games[i].Console = console
			s.games[i].ConsoleID = console.ID
		}
	}
}

func matchesGame(game db.Game, criteria GameCriteria) bool {
	if !matchLong(&game.ID, criteria.ID) {
		return false
	}
	name := game.Name
	if !matchString(&name, criteria.Name) {
		return false
	}
	consoleID := game.ConsoleID
	var joined *uint64
	if consoleID != 0 {
		joined = &consoleID
	}
	return matchLong(joined, criteria.ConsoleID)
}

func matchString(value *string, filter *StringFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Specified != nil && *filter.Specified != (value != nil) {
		return false
	}
	if value == nil {
		return filter.Equals == nil && filter.Contains == nil && len(filter.In) == 0
	}
	lowered := strings.ToLower(*value)
	if filter.Equals != nil && *value != *filter.Equals {
		return false
	}
	if filter.NotEquals != nil && *value == *filter.NotEquals {
		return false
	}
	if len(filter.In) != 0 {
		found := false
		for _, candidate := range filter.In {
			if candidate == *value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Contains != nil && !strings.Contains(lowered, strings.ToLower(*filter.Contains)) {
		return false
	}
	if filter.DoesNotContain != nil && strings.Contains(lowered, strings.ToLower(*filter.DoesNotContain)) {
		return false
	}
	return true
}

func matchLong(value *uint64, filter *LongFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Specified != nil && *filter.Specified != (value != nil) {
		return false
	}
	if value == nil {
		return filter.Equals == nil && len(filter.In) == 0 &&
			filter.GreaterThan == nil && filter.GreaterThanOrEqual == nil &&
			filter.LessThan == nil && filter.LessThanOrEqual == nil
	}
	if filter.Equals != nil && *value != *filter.Equals {
		return false
	}
	if filter.NotEquals != nil && *value == *filter.NotEquals {
		return false
	}
	if len(filter.In) != 0 {
		found := false
		for _, candidate := range filter.In {
			if candidate == *value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.GreaterThan != nil && *value <= *filter.GreaterThan {
		return false
	}
	if filter.GreaterThanOrEqual != nil && *value < *filter.GreaterThanOrEqual {
		return false
	}
	if filter.LessThan != nil && *value >= *filter.LessThan {
		return false
	}
	if filter.LessThanOrEqual != nil && *value > *filter.LessThanOrEqual {
		return false
	}
	return true
}

type InMemoryItemStor struct {
	items  []db.Item
	nextID uint64
}

func NewInMemoryItemStor() *InMemoryItemStor {
	return &InMemoryItemStor{nextID: 1}
}

func (s *InMemoryItemStor) Get(id uint64) (*db.Item, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryItemStor) ListFiltered(filter ItemFilter, page Pageable) ([]db.Item, error) {
	matched := make([]db.Item, 0)
	for _, item := range s.items {
		if matchesItem(item, filter) {
			matched = append(matched, item)
		}
	}
	sortSlice(matched, page.Sort, itemSortColumns, func(it db.Item, property string) string {
		switch property {
		case "owner.login":
			if it.Owner != nil {
				return it.Owner.Login
			}
		case "lendedTo.login":
			if it.LendedTo != nil {
				return it.LendedTo.Login
			}
		case "game.name":
			if it.Game != nil {
				return it.Game.Name
			}
		case "game.console.name":
			if it.Game != nil && it.Game.Console != nil {
				return it.Game.Console.Name
			}
		}
		return ""
	}, func(it db.Item) uint64 { return it.ID })
	return pageSlice(matched, page), nil
}

func (s *InMemoryItemStor) CountFiltered(filter ItemFilter) (int64, error) {
	items, err := s.ListFiltered(filter, Pageable{Size: -1})
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (s *InMemoryItemStor) ListByOwner(ownerID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{OwnerID: &ownerID}, Pageable{Size: -1})
}

func (s *InMemoryItemStor) ListByLendedTo(userID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{LendedToID: &userID}, Pageable{Size: -1})
}

func (s *InMemoryItemStor) ListByGame(gameID uint64) ([]db.Item, error) {
	return s.ListFiltered(ItemFilter{GameID: &gameID}, Pageable{Size: -1})
}

func (s *InMemoryItemStor) Exists(id uint64) (bool, error) {
	_, err := s.Get(id)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *InMemoryItemStor) Save(item *db.Item) error {
	item.Owner = nil
	item.LendedTo = nil
	item.Game = nil
	if item.ID == 0 {
		item.ID = s.nextID
		s.nextID++
		s.items = append(s.items, *item)
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	s.items = append(s.items, *item)
	return nil
}

func (s *InMemoryItemStor) Delete(id uint64) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// SeedRelations attaches resolved relations to a stored item the way the
// joined query would.
func (s *InMemoryItemStor) SeedRelations(itemID uint64, owner, lendedTo *db.User, game *db.Game) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Owner = owner
			s.items[i].LendedTo = lendedTo
			s.items[i].Game = game
			if owner != nil {
				id := owner.ID
				s.items[i].OwnerID = &id
			}
			if lendedTo != nil {
				id := lendedTo.ID
				s.items[i].LendedToID = &id
			}
			if game != nil {
				id := game.ID
				s.items[i].GameID = &id
			}
		}
	}
}

func matchesItem(item db.Item, filter ItemFilter) bool {
	if filter.OwnerID != nil && (item.OwnerID == nil || *item.OwnerID != *filter.OwnerID) {
		return false
	}
	if filter.LendedToID != nil && (item.LendedToID == nil || *item.LendedToID != *filter.LendedToID) {
		return false
	}
	if filter.LendedToLogin != nil {
		if item.LendedTo == nil ||
			!strings.Contains(strings.ToLower(item.LendedTo.Login), strings.ToLower(*filter.LendedToLogin)) {
			return false
		}
	}
	if filter.GameID != nil && (item.GameID == nil || *item.GameID != *filter.GameID) {
		return false
	}
	if filter.GameName != nil {
		if item.Game == nil ||
			!strings.Contains(strings.ToLower(item.Game.Name), strings.ToLower(*filter.GameName)) {
			return false
		}
	}
	if filter.ConsoleID != nil {
		if item.Game == nil || item.Game.ConsoleID != *filter.ConsoleID {
			return false
		}
	}
	return true
}

type InMemoryUserStor struct {
	users  []db.User
	nextID uint64
}

func NewInMemoryUserStor(users []db.User) *InMemoryUserStor {
	nextID := uint64(1)
	for _, u := range users {
		if u.ID >= nextID {
			nextID = u.ID + 1
		}
	}
	return &InMemoryUserStor{users: users, nextID: nextID}
}

func (s *InMemoryUserStor) GetByToken(token string) (*db.User, error) {
	for i := range s.users {
		if s.users[i].Token == token {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStor) GetByLogin(login string) (*db.User, error) {
	for i := range s.users {
		if s.users[i].Login == login {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryUserStor) Create(user *db.User) error {
	if user.ID == 0 {
		user.ID = s.nextID
		s.nextID++
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *InMemoryUserStor) UpdateToken(id uint64, token string) error {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Token = token
			return nil
		}
	}
	return ErrNotFound
}

func sortSlice[T any](values []T, orders []SortOrder, columns map[string]string, key func(T, string) string, id func(T) uint64) {
	sort.SliceStable(values, func(i, j int) bool {
		for _, order := range orders {
			if _, ok := columns[order.Property]; !ok {
				continue
			}
			if order.Property == "id" {
				a, b := id(values[i]), id(values[j])
				if a != b {
					if order.Desc {
						return a > b
					}
					return a < b
				}
				continue
			}
			a, b := key(values[i], order.Property), key(values[j], order.Property)
			if a != b {
				if order.Desc {
					return a > b
				}
				return a < b
			}
		}
		return id(values[i]) < id(values[j])
	})
}

func pageSlice[T any](values []T, page Pageable) []T {
	if page.Size < 0 {
		return values
	}
	start := int(page.offset())
	if start >= len(values) {
		return []T{}
	}
	end := start + int(page.size())
	if end > len(values) {
		end = len(values)
	}
	return values[start:end]
}
