package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uchoabruno/bgls/internal/service"
)

const consoleEntityName = "console"

func (s *HTTPServer) ConsoleCreate(c echo.Context) error {
	req := service.ConsoleDTO{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}
	if req.ID != nil {
		return NewBadRequestAlert(consoleEntityName, "idexists", "A new console cannot already have an ID")
	}

	result, err := s.consoles.Save(&req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/consoles/%d", *result.ID))
	s.setCreationAlert(c, consoleEntityName, *result.ID)
	return c.JSON(http.StatusCreated, result)
}

func (s *HTTPServer) ConsoleUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.ConsoleDTO{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(consoleEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.consoles.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(consoleEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.consoles.Update(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, consoleEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ConsolePartialUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.ConsoleDTO{}
	if err := BindOnly(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(consoleEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.consoles.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(consoleEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.consoles.PartialUpdate(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, consoleEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ConsoleList(c echo.Context) error {
	page := ParsePageable(c)

	total, err := s.consoles.Count()
	if err != nil {
		return err
	}
	consoles, err := s.consoles.List(page)
	if err != nil {
		return err
	}

	SetPaginationHeaders(c, page, total)
	return c.JSON(http.StatusOK, consoles)
}

func (s *HTTPServer) ConsoleCount(c echo.Context) error {
	total, err := s.consoles.Count()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

func (s *HTTPServer) ConsoleGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	result, err := s.consoles.FindOne(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ConsoleDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.consoles.Delete(id); err != nil {
		return err
	}
	s.setDeletionAlert(c, consoleEntityName, id)
	return c.NoContent(http.StatusNoContent)
}

// checkUpdateID enforces the shared id contract of PUT and PATCH: the
// payload must carry an id and it must match the path.
func checkUpdateID(entity string, pathID uint64, payloadID *uint64) error {
	if payloadID == nil {
		return NewBadRequestAlert(entity, "idnull", "Invalid id")
	}
	if *payloadID != pathID {
		return NewBadRequestAlert(entity, "idinvalid", "Invalid ID")
	}
	return nil
}
