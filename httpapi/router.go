package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/faqit/config"
)

// NewRouter wires up the handlers.
func NewRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1/faq")
	{
		api.GET("", handler.List)
		api.GET("/:id", handler.Get)
		api.POST("/answer", handler.Answer)
	}
	return router
}

// NewServer returns an HTTP server for engine configured by cfg.
func NewServer(cfg config.HTTPConfig, engine Engine, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:           cfg.Address,
		Handler:        NewRouter(NewHandler(engine, logger)),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
