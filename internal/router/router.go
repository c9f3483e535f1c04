package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/isbn-books-api/internal/docs"
	"github.com/snnyvrz/isbn-books-api/internal/handler"
	"github.com/snnyvrz/isbn-books-api/internal/middleware"
	"github.com/snnyvrz/isbn-books-api/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const basePath = "/api"

type Options struct {
	DB        *gorm.DB
	Logger    zerolog.Logger
	Version   string
	StartTime time.Time
}

func New(opts Options) *gin.Engine {
	e := gin.New()

	e.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		gin.Recovery(),
	)

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	healthHandler := handler.NewHealthHandler(opts.DB, opts.StartTime, opts.Version)
	healthHandler.RegisterRoutes(e)

	api := e.Group(basePath)
	{
		bookHandler := handler.NewBookHandler(repository.NewGormBookRepository(opts.DB))
		bookHandler.RegisterRoutes(api)
	}

	docs.SwaggerInfo.BasePath = basePath
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
