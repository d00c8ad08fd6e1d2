package transport

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uchoabruno/bgls/internal/repository"
)

// ParseGameCriteria reads the structured per-field filter parameters,
// e.g. `name.contains=zel&consoleId.equals=3&id.greaterThan=10`.
// Unparsable values are ignored.
func ParseGameCriteria(values url.Values) repository.GameCriteria {
	return repository.GameCriteria{
		ID:        parseLongFilter(values, "id"),
		Name:      parseStringFilter(values, "name"),
		ConsoleID: parseLongFilter(values, "consoleId"),
	}
}

func parseStringFilter(values url.Values, field string) *repository.StringFilter {
	filter := repository.StringFilter{}
	found := false

	if raw, ok := firstParam(values, field+".equals"); ok {
		filter.Equals = &raw
		found = true
	}
	if raw, ok := firstParam(values, field+".notEquals"); ok {
		filter.NotEquals = &raw
		found = true
	}
	if raw, ok := firstParam(values, field+".contains"); ok {
		filter.Contains = &raw
		found = true
	}
	if raw, ok := firstParam(values, field+".doesNotContain"); ok {
		filter.DoesNotContain = &raw
		found = true
	}
	if in := listParam(values, field+".in"); len(in) != 0 {
		filter.In = in
		found = true
	}
	if specified, ok := boolParam(values, field+".specified"); ok {
		filter.Specified = &specified
		found = true
	}

	if !found {
		return nil
	}
	return &filter
}

func parseLongFilter(values url.Values, field string) *repository.LongFilter {
	filter := repository.LongFilter{}
	found := false

	set := func(suffix string, target **uint64) {
		if raw, ok := firstParam(values, field+suffix); ok {
			if value, err := strconv.ParseUint(raw, 10, 64); err == nil {
				*target = &value
				found = true
			}
		}
	}
	set(".equals", &filter.Equals)
	set(".notEquals", &filter.NotEquals)
	set(".greaterThan", &filter.GreaterThan)
	set(".greaterThanOrEqual", &filter.GreaterThanOrEqual)
	set(".lessThan", &filter.LessThan)
	set(".lessThanOrEqual", &filter.LessThanOrEqual)

	for _, raw := range listParam(values, field+".in") {
		if value, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.In = append(filter.In, value)
			found = true
		}
	}
	if specified, ok := boolParam(values, field+".specified"); ok {
		filter.Specified = &specified
		found = true
	}

	if !found {
		return nil
	}
	return &filter
}

// ParseItemFilter reads the ad-hoc item listing parameters. The
// `eagerload` flag is accepted for contract compatibility; every relation
// here resolves through a single join, so it changes nothing.
func ParseItemFilter(c echo.Context) repository.ItemFilter {
	values := c.QueryParams()
	filter := repository.ItemFilter{}

	if value, ok := uintParam(values, "ownerId"); ok {
		filter.OwnerID = &value
	}
	if value, ok := uintParam(values, "lendedToId"); ok {
		filter.LendedToID = &value
	}
	if raw, ok := firstParam(values, "lendedTo"); ok {
		filter.LendedToLogin = &raw
	}
	if value, ok := uintParam(values, "gameId"); ok {
		filter.GameID = &value
	}
	if raw, ok := firstParam(values, "game"); ok {
		filter.GameName = &raw
	}
	if value, ok := uintParam(values, "consoleId"); ok {
		filter.ConsoleID = &value
	}

	return filter
}

func firstParam(values url.Values, name string) (string, bool) {
	if raw, ok := values[name]; ok && len(raw) != 0 && raw[0] != "" {
		return raw[0], true
	}
	return "", false
}

// listParam accepts both repeated parameters and comma-separated lists.
func listParam(values url.Values, name string) []string {
	result := make([]string, 0)
	for _, raw := range values[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func boolParam(values url.Values, name string) (bool, bool) {
	raw, ok := firstParam(values, name)
	if !ok {
		return false, false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}

func uintParam(values url.Values, name string) (uint64, bool) {
	raw, ok := firstParam(values, name)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
