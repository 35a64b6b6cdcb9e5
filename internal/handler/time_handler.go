package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/middleware"
	"github.com/samuelzcom/berlin-time-format-service/internal/service"
)

// TimeHandler handles timezone conversion requests.
type TimeHandler struct {
	timeService service.TimeServiceInterface
}

// NewTimeHandler creates a new TimeHandler.
func NewTimeHandler(timeService service.TimeServiceInterface) *TimeHandler {
	return &TimeHandler{
		timeService: timeService,
	}
}

// BerlinTimeResponse represents the berlin-time API response.
type BerlinTimeResponse struct {
	ISOTime          string `json:"isoTime"`
	BerlinDateString string `json:"berlinDateString"`
}

func toBerlinTimeResponse(result *domain.BerlinTimeResult) BerlinTimeResponse {
	return BerlinTimeResponse{
		ISOTime:          result.ISOTime,
		BerlinDateString: result.BerlinDateString,
	}
}

// BerlinTime handles /api/berlin-time for any method.
//
// An absent or empty datetime parameter defaults to the current instant.
func (h *TimeHandler) BerlinTime(c *gin.Context) {
	datetime := c.Query(DateTimeQueryParam)
	if datetime == "" {
		datetime = h.timeService.DefaultDateTime()
	}

	result, err := h.timeService.BerlinTime(c.Request.Context(), datetime)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, toBerlinTimeResponse(result))
	case errors.Is(err, domain.ErrInvalidDateFormat):
		respondText(c, http.StatusBadRequest, InvalidDateFormatBody)
	default:
		// Unreachable while DefaultDateTime never returns an empty string.
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(),
			"Failed to convert datetime",
			slog.String("error", err.Error()))
		respondText(c, http.StatusInternalServerError, InternalServerErrorBody)
	}
}
