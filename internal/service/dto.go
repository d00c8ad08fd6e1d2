package service

import (
	"github.com/uchoabruno/bgls/internal/db"
)

type (
	ConsoleDTO struct {
		ID               *uint64 `json:"id"`
		Name             *string `json:"name" validate:"required"`
		Image            []byte  `json:"image,omitempty"`
		ImageContentType *string `json:"imageContentType,omitempty"`
	}

	// ConsoleRefDTO is the trimmed console shape nested inside games:
	// id and name only, never the image bytes.
	ConsoleRefDTO struct {
		ID   *uint64 `json:"id" validate:"required"`
		Name *string `json:"name,omitempty"`
	}

	GameDTO struct {
		ID               *uint64        `json:"id"`
		Name             *string        `json:"name" validate:"required"`
		Cover            []byte         `json:"cover,omitempty"`
		CoverContentType *string        `json:"coverContentType,omitempty"`
		Console          *ConsoleRefDTO `json:"console" validate:"required"`
	}

	UserRefDTO struct {
		ID    *uint64 `json:"id"`
		Login *string `json:"login,omitempty"`
	}

	GameRefDTO struct {
		ID      *uint64        `json:"id"`
		Name    *string        `json:"name,omitempty"`
		Console *ConsoleRefDTO `json:"console,omitempty"`
	}

	// ItemDTO exposes both the raw foreign keys (the write side) and the
	// resolved references (the read side).
	ItemDTO struct {
		ID         *uint64     `json:"id"`
		OwnerID    *uint64     `json:"ownerId,omitempty"`
		LendedToID *uint64     `json:"lendedToId,omitempty"`
		GameID     *uint64     `json:"gameId,omitempty"`
		Owner      *UserRefDTO `json:"owner,omitempty"`
		LendedTo   *UserRefDTO `json:"lendedTo,omitempty"`
		Game       *GameRefDTO `json:"game,omitempty"`
	}
)

func ConsoleToDTO(console *db.Console) *ConsoleDTO {
	id := console.ID
	name := console.Name
	return &ConsoleDTO{
		ID:               &id,
		Name:             &name,
		Image:            console.Image,
		ImageContentType: console.ImageContentType,
	}
}

func ConsoleFromDTO(dto *ConsoleDTO) *db.Console {
	console := db.Console{
		Image:            dto.Image,
		ImageContentType: dto.ImageContentType,
	}
	if dto.ID != nil {
		console.ID = *dto.ID
	}
	if dto.Name != nil {
		console.Name = *dto.Name
	}
	return &console
}

func consoleRef(console *db.Console, consoleID uint64) *ConsoleRefDTO {
	if console != nil {
		id := console.ID
		name := console.Name
		return &ConsoleRefDTO{ID: &id, Name: &name}
	}
	if consoleID != 0 {
		id := consoleID
		return &ConsoleRefDTO{ID: &id}
	}
	return nil
}

func GameToDTO(game *db.Game) *GameDTO {
	id := game.ID
	name := game.Name
	return &GameDTO{
		ID:               &id,
		Name:             &name,
		Cover:            game.Cover,
		CoverContentType: game.CoverContentType,
		Console:          consoleRef(game.Console, game.ConsoleID),
	}
}

func GameFromDTO(dto *GameDTO) *db.Game {
	game := db.Game{
		Cover:            dto.Cover,
		CoverContentType: dto.CoverContentType,
	}
	if dto.ID != nil {
		game.ID = *dto.ID
	}
	if dto.Name != nil {
		game.Name = *dto.Name
	}
	if dto.Console != nil && dto.Console.ID != nil {
		game.ConsoleID = *dto.Console.ID
	}
	return &game
}

func userRef(user *db.User) *UserRefDTO {
	if user == nil {
		return nil
	}
	id := user.ID
	login := user.Login
	return &UserRefDTO{ID: &id, Login: &login}
}

func gameRef(game *db.Game) *GameRefDTO {
	if game == nil {
		return nil
	}
	id := game.ID
	name := game.Name
	return &GameRefDTO{
		ID:      &id,
		Name:    &name,
		Console: consoleRef(game.Console, game.ConsoleID),
	}
}

func ItemToDTO(item *db.Item) *ItemDTO {
	id := item.ID
	return &ItemDTO{
		ID:         &id,
		OwnerID:    item.OwnerID,
		LendedToID: item.LendedToID,
		GameID:     item.GameID,
		Owner:      userRef(item.Owner),
		LendedTo:   userRef(item.LendedTo),
		Game:       gameRef(item.Game),
	}
}

func ItemFromDTO(dto *ItemDTO) *db.Item {
	item := db.Item{
		OwnerID:    dto.OwnerID,
		LendedToID: dto.LendedToID,
		GameID:     dto.GameID,
	}
	if dto.ID != nil {
		item.ID = *dto.ID
	}
	// Nested references are an accepted alternative to the raw keys.
	if item.OwnerID == nil && dto.Owner != nil {
		item.OwnerID = dto.Owner.ID
	}
	if item.LendedToID == nil && dto.LendedTo != nil {
		item.LendedToID = dto.LendedTo.ID
	}
	if item.GameID == nil && dto.Game != nil {
		item.GameID = dto.Game.ID
	}
	return &item
}
