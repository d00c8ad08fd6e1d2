package service

import (
	"go.uber.org/zap"

	"github.com/uchoabruno/bgls/internal/repository"
)

type ConsoleService struct {
	stor   repository.ConsoleStor
	logger *zap.SugaredLogger
}

func NewConsoleService(stor repository.ConsoleStor, logger *zap.SugaredLogger) *ConsoleService {
	return &ConsoleService{stor: stor, logger: logger}
}

func (s *ConsoleService) Save(dto *ConsoleDTO) (*ConsoleDTO, error) {
	s.logger.Debugw("save console", "name", dto.Name)
	console := ConsoleFromDTO(dto)
	if err := s.stor.Save(console); err != nil {
		return nil, err
	}
	return ConsoleToDTO(console), nil
}

func (s *ConsoleService) Update(dto *ConsoleDTO) (*ConsoleDTO, error) {
	s.logger.Debugw("update console", "id", dto.ID)
	return s.Save(dto)
}

// PartialUpdate overlays the non-nil fields of the patch onto the stored
// record and persists the result.
func (s *ConsoleService) PartialUpdate(dto *ConsoleDTO) (*ConsoleDTO, error) {
	s.logger.Debugw("partial update console", "id", dto.ID)
	existing, err := s.stor.Get(*dto.ID)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil {
		existing.Name = *dto.Name
	}
	if dto.Image != nil {
		existing.Image = dto.Image
	}
	if dto.ImageContentType != nil {
		existing.ImageContentType = dto.ImageContentType
	}
	if err := s.stor.Save(existing); err != nil {
		return nil, err
	}
	return ConsoleToDTO(existing), nil
}

func (s *ConsoleService) FindOne(id uint64) (*ConsoleDTO, error) {
	s.logger.Debugw("get console", "id", id)
	console, err := s.stor.Get(id)
	if err != nil {
		return nil, err
	}
	return ConsoleToDTO(console), nil
}

func (s *ConsoleService) List(page repository.Pageable) ([]ConsoleDTO, error) {
	s.logger.Debugw("list consoles", "page", page.Page, "size", page.Size)
	consoles, err := s.stor.List(page)
	if err != nil {
		return nil, err
	}
	dtos := make([]ConsoleDTO, len(consoles))
	for i := range consoles {
		dtos[i] = *ConsoleToDTO(&consoles[i])
	}
	return dtos, nil
}

func (s *ConsoleService) Count() (int64, error) {
	return s.stor.Count()
}

func (s *ConsoleService) Exists(id uint64) (bool, error) {
	return s.stor.Exists(id)
}

func (s *ConsoleService) Delete(id uint64) error {
	s.logger.Debugw("delete console", "id", id)
	return s.stor.Delete(id)
}
