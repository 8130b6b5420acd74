// File: app/app.go
package app

import (
	"context"
	"go-auth-api/config"
	"go-auth-api/db"
	"go-auth-api/handler"
	"go-auth-api/logger"
	"go-auth-api/repository"
	"go-auth-api/router"
	"go-auth-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	// A missing signing secret is a configuration error, not something to
	// discover on the first login request.
	signer, err := service.NewSigner(config.AppConfig.JWT.SecretKey)
	if err != nil {
		logger.Log.Fatalf("Error creating token signer: %v", err)
	}

	// The refresh record store backend is selected by configuration;
	// Postgres is the default.
	var tokenRepo repository.ITokenRepository
	switch config.AppConfig.TokenStore {
	case "redis":
		redisClient, err := db.ConnectRedis()
		if err != nil {
			logger.Log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer redisClient.Close()
		tokenRepo = repository.NewRedisTokenRepository(redisClient, service.RefreshTokenLifespan)
	default:
		tokenRepo = repository.NewTokenRepository(database)
	}

	// --- Wiring All Layers Together ---
	userRepo := repository.NewUserRepository(database)

	rotator := service.NewRefreshTokenRotator(tokenRepo)
	authService := service.NewAuthService(
		service.NewCredentialValidator(userRepo),
		service.NewTokenIssuer(signer, rotator),
		service.NewTokenParser(signer),
		rotator,
	)

	userHandler := handler.NewUserHandler(userRepo)
	authHandler := handler.NewAuthHandler(authService)

	r := router.NewRouter(userHandler, authHandler, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp wires the full router over injected stores so tests can exercise
// the HTTP surface without a running Postgres.
type TestApp struct {
	Router      http.Handler
	AuthService *service.AuthService
}

func NewTestApp(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository, secret string) (*TestApp, error) {
	signer, err := service.NewSigner(secret)
	if err != nil {
		return nil, err
	}

	rotator := service.NewRefreshTokenRotator(tokenRepo)
	authService := service.NewAuthService(
		service.NewCredentialValidator(userRepo),
		service.NewTokenIssuer(signer, rotator),
		service.NewTokenParser(signer),
		rotator,
	)

	userHandler := handler.NewUserHandler(userRepo)
	authHandler := handler.NewAuthHandler(authService)

	return &TestApp{
		Router:      router.NewRouter(userHandler, authHandler, authService),
		AuthService: authService,
	}, nil
}
