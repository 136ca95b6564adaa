package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parsePagination parses limit and offset from query parameters.
// Default limit is 100, default offset is 0.
// Maximum limit is 1000 to prevent excessive memory usage.
func parsePagination(c echo.Context) (limit, offset int) {
	// Parse limit with default of 100
	limit = 100
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
			// Cap at 1000
			if limit > 1000 {
				limit = 1000
			}
		}
	}

	// Parse offset with default of 0
	offset = 0
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if parsed, err := strconv.Atoi(offsetParam); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// paginate applies limit and offset to a slice.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}

// listResponse builds the shared paginated envelope from a full result set.
func listResponse[T any](items []T, limit, offset int) ListResponse[T] {
	page := paginate(items, limit, offset)
	return ListResponse[T]{
		Count:  len(page),
		Total:  len(items),
		Limit:  limit,
		Offset: offset,
		Items:  page,
	}
}

// parseUintParam parses a numeric path parameter.
func parseUintParam(c echo.Context, name string) (uint, *APIError) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, BadRequestError(
			"Invalid "+name+" parameter",
			"'"+raw+"' is not a valid numeric id",
		)
	}
	return uint(parsed), nil
}
