package service

import (
	"go.uber.org/zap"

	"github.com/uchoabruno/bgls/internal/repository"
)

type ItemService struct {
	stor   repository.ItemStor
	logger *zap.SugaredLogger
}

func NewItemService(stor repository.ItemStor, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{stor: stor, logger: logger}
}

func (s *ItemService) Save(dto *ItemDTO) (*ItemDTO, error) {
	s.logger.Debugw("save item", "ownerId", dto.OwnerID, "gameId", dto.GameID)
	item := ItemFromDTO(dto)
	if err := s.stor.Save(item); err != nil {
		return nil, err
	}
	return ItemToDTO(item), nil
}

func (s *ItemService) Update(dto *ItemDTO) (*ItemDTO, error) {
	s.logger.Debugw("update item", "id", dto.ID)
	return s.Save(dto)
}

// PartialUpdate overlays the supplied foreign keys onto the stored item.
// An omitted key keeps its stored value; keys can only be cleared through
// a full update.
func (s *ItemService) PartialUpdate(dto *ItemDTO) (*ItemDTO, error) {
	s.logger.Debugw("partial update item", "id", dto.ID)
	existing, err := s.stor.Get(*dto.ID)
	if err != nil {
		return nil, err
	}
	patch := ItemFromDTO(dto)
	if patch.OwnerID != nil {
		existing.OwnerID = patch.OwnerID
	}
	if patch.LendedToID != nil {
		existing.LendedToID = patch.LendedToID
	}
	if patch.GameID != nil {
		existing.GameID = patch.GameID
	}
	if err := s.stor.Save(existing); err != nil {
		return nil, err
	}
	return ItemToDTO(existing), nil
}

func (s *ItemService) FindOne(id uint64) (*ItemDTO, error) {
	s.logger.Debugw("get item", "id", id)
	item, err := s.stor.Get(id)
	if err != nil {
		return nil, err
	}
	return ItemToDTO(item), nil
}

func (s *ItemService) FindFiltered(filter repository.ItemFilter, page repository.Pageable) ([]ItemDTO, error) {
	s.logger.Debugw("list items", "page", page.Page, "size", page.Size)
	items, err := s.stor.ListFiltered(filter, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(items))
	for i := range items {
		dtos[i] = *ItemToDTO(&items[i])
	}
	return dtos, nil
}

func (s *ItemService) CountFiltered(filter repository.ItemFilter) (int64, error) {
	return s.stor.CountFiltered(filter)
}

func (s *ItemService) Exists(id uint64) (bool, error) {
	return s.stor.Exists(id)
}

func (s *ItemService) Delete(id uint64) error {
	s.logger.Debugw("delete item", "id", id)
	return s.stor.Delete(id)
}
