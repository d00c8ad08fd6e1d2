package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uchoabruno/bgls/internal/repository"
)

const (
	headerTotalCount = "X-Total-Count"
	defaultPageSize  = 20
)

// ParsePageable reads the standard `page` (zero-based), `size` and
// repeatable `sort=field,direction` query parameters. Malformed values
// fall back to defaults rather than failing the request.
func ParsePageable(c echo.Context) repository.Pageable {
	page := 0
	size := defaultPageSize
	if raw := c.QueryParam("page"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			page = value
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			size = value
		}
	}

	sorts := make([]repository.SortOrder, 0)
	for _, raw := range c.QueryParams()["sort"] {
		parts := strings.Split(raw, ",")
		property := strings.TrimSpace(parts[0])
		if property == "" {
			continue
		}
		desc := len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
		sorts = append(sorts, repository.SortOrder{Property: property, Desc: desc})
	}

	return repository.Pageable{Page: page, Size: size, Sort: sorts}
}

// SetPaginationHeaders writes the total element count and the
// first/prev/next/last link relations for the current page.
func SetPaginationHeaders(c echo.Context, page repository.Pageable, total int64) {
	header := c.Response().Header()
	header.Set(headerTotalCount, strconv.FormatInt(total, 10))
	header.Set("Link", buildLinkHeader(c.Request().URL, page, total))
}

func buildLinkHeader(u *url.URL, page repository.Pageable, total int64) string {
	size := page.Size
	if size <= 0 {
		size = defaultPageSize
	}
	lastPage := 0
	if total > 0 {
		lastPage = int((total - 1) / int64(size))
	}

	links := make([]string, 0, 4)
	add := func(target int, rel string) {
		query := u.Query()
		query.Set("page", strconv.Itoa(target))
		query.Set("size", strconv.Itoa(size))
		links = append(links, fmt.Sprintf("<%s?%s>; rel=\"%s\"", u.Path, query.Encode(), rel))
	}

	if page.Page < lastPage {
		add(page.Page+1, "next")
	}
	if page.Page > 0 {
		add(page.Page-1, "prev")
	}
	add(lastPage, "last")
	add(0, "first")

	return strings.Join(links, ",")
}
