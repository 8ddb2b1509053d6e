package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// routeFailure is the fixed answer a route gives when its upstream call fails
type routeFailure struct {
	message  string
	fallback int
	// relay passes a 4xx/5xx upstream status through instead of the fallback
	relay bool
}

var (
	currentByCityFailure    = routeFailure{message: "City not found", fallback: http.StatusInternalServerError, relay: true}
	forecastByCityFailure   = routeFailure{message: "City not found", fallback: http.StatusNotFound, relay: true}
	currentByCoordsFailure  = routeFailure{message: "Could not fetch weather by coordinates", fallback: http.StatusInternalServerError, relay: true}
	forecastByCoordsFailure = routeFailure{message: "Could not fetch forecast by coordinates", fallback: http.StatusInternalServerError, relay: true}
	locationFailure         = routeFailure{message: "Could not fetch location", fallback: http.StatusInternalServerError}
)

// handleError answers validation errors with their own message and everything
// else with the route's fixed message and status
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error, failure routeFailure) {
	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) && appErr.Type == errorspkg.ValidationError {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		return
	}

	statusCode := failure.fallback
	if upstream := errorspkg.StatusCode(err); failure.relay && upstream >= http.StatusBadRequest && upstream <= 599 {
		statusCode = upstream
	}

	c.JSON(statusCode, ErrorResponse{Error: failure.message})
}
