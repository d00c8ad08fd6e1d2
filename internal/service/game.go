package service

import (
	"go.uber.org/zap"

	"github.com/uchoabruno/bgls/internal/repository"
)

type GameService struct {
	stor   repository.GameStor
	logger *zap.SugaredLogger
}

func NewGameService(stor repository.GameStor, logger *zap.SugaredLogger) *GameService {
	return &GameService{stor: stor, logger: logger}
}

func (s *GameService) Save(dto *GameDTO) (*GameDTO, error) {
	s.logger.Debugw("save game", "name", dto.Name)
	game := GameFromDTO(dto)
	if err := s.stor.Save(game); err != nil {
		return nil, err
	}
	return GameToDTO(game), nil
}

func (s *GameService) Update(dto *GameDTO) (*GameDTO, error) {
	s.logger.Debugw("update game", "id", dto.ID)
	return s.Save(dto)
}

func (s *GameService) PartialUpdate(dto *GameDTO) (*GameDTO, error) {
	s.logger.Debugw("partial update game", "id", dto.ID)
	existing, err := s.stor.Get(*dto.ID)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		existing.Name = *dto.Name
	}
	if dto.Cover != nil {
		existing.Cover = dto.Cover
	}
	if dto.CoverContentType != nil {
		existing.CoverContentType = dto.CoverContentType
	}
	if dto.Console != nil && dto.Console.ID != nil {
		existing.ConsoleID = *dto.Console.ID
	}
	if err := s.stor.Save(existing); err != nil {
		return nil, err
	}
	return GameToDTO(existing), nil
}

func (s *GameService) FindOne(id uint64) (*GameDTO, error) {
	s.logger.Debugw("get game", "id", id)
	game, err := s.stor.Get(id)
	if err != nil {
		return nil, err
	}
	return GameToDTO(game), nil
}

func (s *GameService) FindByCriteria(criteria repository.GameCriteria, page repository.Pageable) ([]GameDTO, error) {
	s.logger.Debugw("list games by criteria", "page", page.Page, "size", page.Size)
	games, err := s.stor.ListByCriteria(criteria, page)
	if err != nil {
		return nil, err
	}
	dtos := make([]GameDTO, len(games))
	for i := range games {
		dtos[i] = *GameToDTO(&games[i])
	}
	return dtos, nil
}

func (s *GameService) CountByCriteria(criteria repository.GameCriteria) (int64, error) {
	return s.stor.CountByCriteria(criteria)
}

func (s *GameService) Exists(id uint64) (bool, error) {
	return s.stor.Exists(id)
}

func (s *GameService) Delete(id uint64) error {
	s.logger.Debugw("delete game", "id", id)
	return s.stor.Delete(id)
}
