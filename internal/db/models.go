package db

type (
	// User mirrors the jhi_user table. Items reference it twice: as owner
	// and as the borrower (lended_to).
	User struct {
		ID       uint64 `gorm:"primarykey"`
		Login    string `gorm:"unique;not null"`
		Email    string
		Password string `gorm:"not null"`
		Token    string `gorm:"not null"`
		Admin    bool   `gorm:"not null;default:false"`
	}

	Console struct {
		ID               uint64 `gorm:"primarykey"`
		Name             string `gorm:"not null"`
		Image            []byte
		ImageContentType *string
		Games            []Game `gorm:"foreignKey:ConsoleID"`
	}

	Game struct {
		ID               uint64 `gorm:"primarykey"`
		Name             string `gorm:"not null"`
		Cover            []byte
		CoverContentType *string
		ConsoleID        uint64   `gorm:"not null"`
		Console          *Console `gorm:"foreignKey:ConsoleID"`
		Items            []Item   `gorm:"foreignKey:GameID"`
	}

	// Item has no intrinsic attributes beyond identity. All three foreign
	// keys are independently nullable; an item with none set is a valid,
	// unassigned item.
	Item struct {
		ID         uint64 `gorm:"primarykey"`
		OwnerID    *uint64
		LendedToID *uint64 `gorm:"column:lended_to_id"`
		GameID     *uint64
		Owner      *User `gorm:"foreignKey:OwnerID"`
		LendedTo   *User `gorm:"foreignKey:LendedToID"`
		Game       *Game `gorm:"foreignKey:GameID"`
	}
)

func (User) TableName() string    { return "jhi_user" }
func (Console) TableName() string { return "console" }
func (Game) TableName() string    { return "game" }
func (Item) TableName() string    { return "item" }

// Equal implements identity equality: two records are the same entity iff
// both carry a non-zero, equal primary key. Unpersisted records are never
// equal to anything.
func (c *Console) Equal(other *Console) bool {
	return other != nil && c.ID != 0 && c.ID == other.ID
}

func (g *Game) Equal(other *Game) bool {
	return other != nil && g.ID != 0 && g.ID == other.ID
}

func (i *Item) Equal(other *Item) bool {
	return other != nil && i.ID != 0 && i.ID == other.ID
}

func (u *User) Equal(other *User) bool {
	return other != nil && u.ID != 0 && u.ID == other.ID
}
