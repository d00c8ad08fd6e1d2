package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uchoabruno/bgls/internal/service"
)

const itemEntityName = "item"

func (s *HTTPServer) ItemCreate(c echo.Context) error {
	req := service.ItemDTO{}
	if err := BindOnly(c, &req); err != nil {
		return err
	}
	if req.ID != nil {
		return NewBadRequestAlert(itemEntityName, "idexists", "A new item cannot already have an ID")
	}

	result, err := s.items.Save(&req)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/items/%d", *result.ID))
	s.setCreationAlert(c, itemEntityName, *result.ID)
	return c.JSON(http.StatusCreated, result)
}

func (s *HTTPServer) ItemUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.ItemDTO{}
	if err := BindOnly(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(itemEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.items.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(itemEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.items.Update(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, itemEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ItemPartialUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	req := service.ItemDTO{}
	if err := BindOnly(c, &req); err != nil {
		return err
	}
	if err := checkUpdateID(itemEntityName, id, req.ID); err != nil {
		return err
	}

	exists, err := s.items.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return NewBadRequestAlert(itemEntityName, "idnotfound", "Entity not found")
	}

	result, err := s.items.PartialUpdate(&req)
	if err != nil {
		return err
	}

	s.setUpdateAlert(c, itemEntityName, *result.ID)
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ItemList(c echo.Context) error {
	filter := ParseItemFilter(c)
	page := ParsePageable(c)

	total, err := s.items.CountFiltered(filter)
	if err != nil {
		return err
	}
	items, err := s.items.FindFiltered(filter, page)
	if err != nil {
		return err
	}

	SetPaginationHeaders(c, page, total)
	return c.JSON(http.StatusOK, items)
}

func (s *HTTPServer) ItemCount(c echo.Context) error {
	filter := ParseItemFilter(c)
	total, err := s.items.CountFiltered(filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, total)
}

func (s *HTTPServer) ItemGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	result, err := s.items.FindOne(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) ItemDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	if err := s.items.Delete(id); err != nil {
		return err
	}
	s.setDeletionAlert(c, itemEntityName, id)
	return c.NoContent(http.StatusNoContent)
}
