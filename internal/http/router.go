package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/salescoach/backend/internal/config"
	"github.com/salescoach/backend/internal/http/handlers"
	"github.com/salescoach/backend/internal/http/middleware"
	"github.com/salescoach/backend/internal/service"
	"github.com/salescoach/backend/internal/store"

	_ "github.com/salescoach/backend/docs"
)

func Router(cfg config.Config, st *store.Store, advisor *service.Advisor, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     st,
		Advisor:   advisor,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/customers", h.CustomersList)
		api.POST("/customers", h.CustomerCreate)
		api.GET("/customers/:id", h.CustomerGet)
		api.PATCH("/customers/:id", h.CustomerUpdate)
		api.DELETE("/customers/:id", h.CustomerDelete)

		api.GET("/scripts", h.ScriptsList)
		api.POST("/scripts", h.ScriptCreate)
		api.PATCH("/scripts/:id", h.ScriptUpdate)
		api.DELETE("/scripts/:id", h.ScriptDelete)
		api.POST("/scripts/:id/use", h.ScriptUse)

		api.GET("/materials", h.MaterialsList)
		api.POST("/materials", h.MaterialCreate)
		api.PATCH("/materials/:id", h.MaterialUpdate)
		api.DELETE("/materials/:id", h.MaterialDelete)
		api.POST("/materials/:id/use", h.MaterialUse)

		api.GET("/stages", h.StagesList)
		api.POST("/stages", h.StageCreate)
		api.PATCH("/stages/:id", h.StageUpdate)
		api.DELETE("/stages/:id", h.StageDelete)

		api.GET("/strategy", h.StrategiesList)
		api.POST("/strategy", h.StrategyCreate)
		api.GET("/strategy/:id", h.StrategyGet)
		api.PATCH("/strategy/:id", h.StrategyUpdate)
		api.DELETE("/strategy/:id", h.StrategyDelete)

		api.GET("/products", h.ProductsList)
		api.POST("/products", h.ProductCreate)
		api.GET("/products/:id", h.ProductGet)
		api.PATCH("/products/:id", h.ProductUpdate)
		api.DELETE("/products/:id", h.ProductDelete)

		api.POST("/analysis", h.Analyze)
		api.POST("/generate-message", h.GenerateMessage)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
