// Package app wires the production collaborators shared by every entrypoint.
package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/clock"
	"github.com/samuelzcom/berlin-time-format-service/internal/domain"
	"github.com/samuelzcom/berlin-time-format-service/internal/idgen"
	"github.com/samuelzcom/berlin-time-format-service/internal/router"
	"github.com/samuelzcom/berlin-time-format-service/internal/service"
	"github.com/samuelzcom/berlin-time-format-service/internal/validator"
)

// App holds the assembled public router and the resources behind it.
type App struct {
	Location *time.Location
	Router   *gin.Engine
}

// New loads the Europe/Berlin location and builds the public router with
// the system clock and UUID generator.
func New() (*App, error) {
	loc, err := domain.LoadBerlin()
	if err != nil {
		return nil, err
	}

	gen := idgen.NewUUIDGenerator()
	engine := router.New(router.Dependencies{
		TimeService:       service.NewTimeService(clock.System(), loc, validator.NewValidator()),
		IdentifierService: service.NewIdentifierService(gen),
		RequestIDs:        gen,
	})

	return &App{Location: loc, Router: engine}, nil
}
