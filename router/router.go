package router

import (
	"go-auth-api/handler"
	"go-auth-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "go-auth-api/docs"
)

func NewRouter(userHandler *handler.UserHandler, authHandler *handler.AuthHandler, authService *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.HealthCheck)
	mux.Handle("/register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("/renew", handler.ErrorHandlingMiddleware(authHandler.Renew))

	// Routes under /api require a valid access token.
	authRequired := handler.AuthMiddleware(authService)
	mux.Handle("/api/me", authRequired(http.HandlerFunc(handler.Me)))

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
