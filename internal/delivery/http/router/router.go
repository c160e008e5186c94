// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	OAuthHandler       *handler.OAuthHandler
	SecretHandler      *handler.SecretHandler
	IntegrationHandler *handler.IntegrationHandler
	EmailHandler       *handler.EmailHandler
	GitHubHandler      *handler.GitHubHandler
	MessagesHandler    *handler.MessagesHandler
	NoteHandler        *handler.NoteHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Provider callbacks are public: the provider redirects the
	// user's browser here without an Authorization header, so ownership is
	// proven by the signed state parameter instead.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.GET("/google/login", r.params.AuthHandler.GoogleLogin)
		authGroup.GET("/google/login/callback", r.params.AuthHandler.GoogleLoginCallback)
		authGroup.GET("/:provider/callback", r.params.OAuthHandler.Callback)

		authGroup.GET("/me", r.params.AuthHandler.Me, r.params.AuthMiddleware.Authenticate)
		authGroup.GET("/:provider/authorize", r.params.OAuthHandler.Authorize, r.params.AuthMiddleware.Authenticate)
	}

	// Notes are a global scratchpad with no authentication.
	noteGroup := e.Group("/notes")
	{
		noteGroup.POST("", r.params.NoteHandler.Create)
		noteGroup.GET("", r.params.NoteHandler.List)
		noteGroup.GET("/:id", r.params.NoteHandler.Get)
		noteGroup.PUT("/:id", r.params.NoteHandler.Update)
		noteGroup.DELETE("/:id", r.params.NoteHandler.Delete)
	}

	// Secret vault routes require authentication.
	secretGroup := e.Group("/secrets")
	secretGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		secretGroup.POST("", r.params.SecretHandler.Create)
		secretGroup.GET("", r.params.SecretHandler.List)
		secretGroup.GET("/:id", r.params.SecretHandler.Get)
		secretGroup.PUT("/:id", r.params.SecretHandler.Update)
		secretGroup.DELETE("/:id", r.params.SecretHandler.Delete)
	}

	// Integration management routes require authentication.
	integrationGroup := e.Group("/integrations")
	integrationGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		integrationGroup.POST("", r.params.IntegrationHandler.Create)
		integrationGroup.GET("", r.params.IntegrationHandler.List)
		integrationGroup.GET("/:id", r.params.IntegrationHandler.Get)
		integrationGroup.PUT("/:id", r.params.IntegrationHandler.Update)
		integrationGroup.DELETE("/:id", r.params.IntegrationHandler.Delete)
	}

	// Provider facade routes require authentication.
	emailGroup := e.Group("/email")
	emailGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		emailGroup.GET("/integrations", r.params.EmailHandler.Integrations)
		emailGroup.POST("/connect", r.params.EmailHandler.Connect)
		emailGroup.GET("/:integrationID/emails", r.params.EmailHandler.Emails)
		emailGroup.GET("/:integrationID/stats", r.params.EmailHandler.Stats)
		emailGroup.POST("/:integrationID/sync", r.params.EmailHandler.Sync)
	}

	githubGroup := e.Group("/github")
	githubGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		githubGroup.GET("/integrations", r.params.GitHubHandler.Integrations)
		githubGroup.POST("/connect", r.params.GitHubHandler.Connect)
		githubGroup.GET("/:integrationID/repos", r.params.GitHubHandler.Repos)
		githubGroup.GET("/:integrationID/stats", r.params.GitHubHandler.Stats)
		githubGroup.POST("/:integrationID/sync", r.params.GitHubHandler.Sync)
	}

	messagesGroup := e.Group("/messages")
	messagesGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		messagesGroup.GET("/integrations", r.params.MessagesHandler.Integrations)
		messagesGroup.POST("/connect", r.params.MessagesHandler.Connect)
		messagesGroup.GET("/:integrationID/workspace", r.params.MessagesHandler.Workspace)
		messagesGroup.GET("/:integrationID/channels", r.params.MessagesHandler.Channels)
		messagesGroup.GET("/:integrationID/channels/:channelID/history", r.params.MessagesHandler.History)
		messagesGroup.POST("/:integrationID/sync", r.params.MessagesHandler.Sync)
	}
}
