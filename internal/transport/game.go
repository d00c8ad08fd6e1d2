package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uchoabruno/bgls/internal/service"
)

const gameEntityName = "game"

func (s *HTTPServer) GameCreate(c echo.Context) error {
	req := service.GameDTO{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID != nil {
		return NewBadRequestAlert(gameEntityName, "idexists", "A new game cannot already have an ID")
	}

	result, err := s.games.Save(&req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/games/%d", *result.ID))
	s.setCreationAlert(c, gameEntityName, *result.ID)
	return c.JSON(http.StatusCreated, result)
}

func (s *HTTPServer) GameUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.GameDTO{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(gameEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.games.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(gameEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.games.Update(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, gameEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) GamePartialUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.GameDTO{}
	if err := BindOnly(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(gameEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.games.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(gameEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.games.PartialUpdate(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, gameEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) GameList(c echo.Context) error {
	criteria := ParseGameCriteria(c.QueryParams())
	page := ParsePageable(c)

	total, err := s.games.CountByCriteria(criteria)
	if err != nil {
		return err
	}
	games, err := s.games.FindByCriteria(criteria, page)
	if err != nil {
		return err
	}

	SetPaginationHeaders(c, page, total)
	return c.JSON(http.StatusOK, games)
}

func (s *HTTPServer) GameCount(c echo.Context) error {
	criteria := ParseGameCriteria(c.QueryParams())
	total, err := s.games.CountByCriteria(criteria)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

func (s *HTTPServer) GameGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	result, err := s.games.FindOne(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) GameDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.games.Delete(id); err != nil {
		return err
	}
	s.setDeletionAlert(c, gameEntityName, id)
	return c.NoContent(http.StatusNoContent)
}
