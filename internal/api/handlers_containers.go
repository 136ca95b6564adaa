package api

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// containerID returns the :id path parameter with percent-encoding undone.
// Container ids carry spaces, so clients send them escaped.
func containerID(c echo.Context) string {
	raw := c.Param("id")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// listContainers handles GET /api/v1/containers
func (s *Server) listContainers(c echo.Context) error {
	limit, offset := parsePagination(c)

	containers, err := s.storage.ListContainers()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(containers, limit, offset))
}

// containerPositions handles GET /api/v1/containers/locations
func (s *Server) containerPositions(c echo.Context) error {
	positions, err := s.storage.ListContainerPositions()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, positions)
}

// getContainer handles GET /api/v1/containers/:id
func (s *Server) getContainer(c echo.Context) error {
	id := containerID(c)

	container, err := s.storage.GetContainer(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, container)
}

// deleteContainer handles DELETE /api/v1/containers/:id
func (s *Server) deleteContainer(c echo.Context) error {
	id := containerID(c)

	if err := s.storage.DeleteContainer(id); err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "container deleted",
		ID:      id,
	})
}
