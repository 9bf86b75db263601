package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"ticket-service/internal/config"
	"ticket-service/internal/middleware"
	"ticket-service/internal/session"
	"ticket-service/internal/ticket"
	"ticket-service/internal/user"
	"ticket-service/internal/web"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB)
	ticketStore := ticket.NewPostgresStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	secret := []byte(cfg.SessionSecret)

	sessionMiddleware := middleware.NewSessionMiddleware(
		sessionStore,
		secret,
		!cfg.Debug, // plain http in debug, Secure cookies otherwise
	)
	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	handler := web.NewHandler(userStore, ticketStore, sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sessionMiddleware.Load())
	router.SetHTMLTemplate(web.Templates())

	handler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
