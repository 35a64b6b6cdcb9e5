// Package router assembles the public and admin Gin engines.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samuelzcom/berlin-time-format-service/internal/handler"
	"github.com/samuelzcom/berlin-time-format-service/internal/idgen"
	"github.com/samuelzcom/berlin-time-format-service/internal/middleware"
	"github.com/samuelzcom/berlin-time-format-service/internal/service"
)

// Public routes.
const (
	BerlinTimePath = "/api/berlin-time"
	MessagePath    = "/api/message"
	RandomPath     = "/api/random"
)

// Dependencies are the collaborators the public routes are served by.
type Dependencies struct {
	TimeService       service.TimeServiceInterface
	IdentifierService service.IdentifierServiceInterface
	RequestIDs        idgen.Generator
}

// New builds the public engine. Paths match exactly and case-sensitively
// against the path as sent, so percent-encoded spellings of a route are not
// that route. Every method is served identically, and anything else is a 404.
func New(deps Dependencies) *gin.Engine {
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false
	engine.UseRawPath = true
	engine.UnescapePathValues = false

	engine.Use(middleware.RequestID(deps.RequestIDs))
	engine.Use(middleware.Logger())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.Recovery())

	timeHandler := handler.NewTimeHandler(deps.TimeService)
	randomHandler := handler.NewRandomHandler(deps.IdentifierService)

	routes := map[string]gin.HandlerFunc{
		BerlinTimePath: timeHandler.BerlinTime,
		MessagePath:    handler.Message,
		RandomPath:     randomHandler.Random,
	}
	for path, h := range routes {
		engine.Any(path, h)
	}

	// Any only covers the standard methods; extension methods land here.
	engine.NoRoute(func(c *gin.Context) {
		if h, ok := routes[c.Request.URL.EscapedPath()]; ok {
			h(c)
			return
		}
		handler.NotFound(c)
	})

	return engine
}

// NewAdmin builds the engine serving metrics and probes.
func NewAdmin(health *handler.HealthHandler) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.Recovery())

	engine.GET("/health", health.Health)
	engine.GET("/ready", health.Ready)
	engine.GET("/live", health.Live)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
