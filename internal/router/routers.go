package router

import (
	"time"

	"github.com/Payphone-Digital/roster/config"
	"github.com/Payphone-Digital/roster/internal/handler"
	"github.com/Payphone-Digital/roster/internal/middleware"
	"github.com/Payphone-Digital/roster/internal/query"
	"github.com/Payphone-Digital/roster/pkg/metrics"
	"github.com/Payphone-Digital/roster/pkg/validation"
	"github.com/gin-gonic/gin"
)

type Router struct {
	personHandler *handler.PersonHandler
	healthHandler *handler.HealthHandler

	Config *config.Config
}

func NewRouter(
	person *handler.PersonHandler,
	health *handler.HealthHandler,
	config *config.Config,
) *Router {
	return &Router{
		personHandler: person,
		healthHandler: health,
		Config:        config,
	}
}

func (r *Router) SetupRoutes() (*gin.Engine, error) {
	if err := validation.RegisterBindingValidators(query.SortFieldNames(), query.DirectionNames()); err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestContext(r.Config.App.Timeout))
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityLoggingMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)
		api.GET("/health/live", r.healthHandler.BasicHealth)

		v1 := api.Group("/v1")
		{
			limiter := middleware.NewRateLimiter(
				r.Config.RateLimit.Request,
				time.Duration(r.Config.RateLimit.Duration)*time.Second,
			)
			v1.Use(middleware.RateLimit(limiter))

			r.personRoutes(v1)
		}
	}

	return router, nil
}

// personRoutes defines the read-only person listing routes
func (r *Router) personRoutes(rg *gin.RouterGroup) {
	persons := rg.Group("/persons")
	{
		persons.GET("", r.personHandler.List)
		persons.GET("/meta", r.personHandler.Meta)
	}
}
