package handler

import (
	"ruleteo/internal/adapter/http/middleware"
	"ruleteo/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc        ports.CardService
	RuleteoSvc     ports.RuleteoService
	DashboardSvc   ports.DashboardService
	RateLimiter    middleware.Counter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rules[group], deps.Logger)
	}

	cardHandler := NewCardHandler(deps.CardSvc)
	ruleteoHandler := NewRuleteoHandler(deps.RuleteoSvc)
	dashboardHandler := NewDashboardHandler(deps.DashboardSvc)

	v1 := r.Group("/api/v1")
	v1.GET("/state", cardHandler.GetState)
	v1.GET("/dashboard", dashboardHandler.Overview)

	cards := v1.Group("/cards")
	{
		cards.POST("", rl("cards_write"), cardHandler.AddCard)
		cards.PATCH("/:id", rl("cards_write"), cardHandler.UpdateCard)
	}

	ruleteo := v1.Group("/ruleteo")
	{
		ruleteo.POST("/simulate", rl("simulate"), ruleteoHandler.Simulate)
		ruleteo.POST("/requests", rl("transfers"), ruleteoHandler.RequestTransfer)
		ruleteo.GET("/requests", ruleteoHandler.ListRequests)
	}

	return r
}
