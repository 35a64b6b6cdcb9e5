package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/middleware"
	"github.com/samuelzcom/berlin-time-format-service/internal/service"
)

// RandomHandler handles random identifier requests.
type RandomHandler struct {
	identifierService service.IdentifierServiceInterface
}

// NewRandomHandler creates a new RandomHandler.
func NewRandomHandler(identifierService service.IdentifierServiceInterface) *RandomHandler {
	return &RandomHandler{
		identifierService: identifierService,
	}
}

// Random handles /api/random for any method.
func (h *RandomHandler) Random(c *gin.Context) {
	id, err := h.identifierService.NewIdentifier(c.Request.Context())
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(),
			"Failed to generate identifier",
			slog.String("error", err.Error()))
		respondText(c, http.StatusInternalServerError, InternalServerErrorBody)
		return
	}

	respondText(c, http.StatusOK, id)
}
