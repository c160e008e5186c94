package main

import (
	"context"
	"log/slog"
	"os"

	"devfriend/config"
	"devfriend/internal/delivery"
	"devfriend/internal/delivery/http"
	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/router/handler"
	sharedmiddleware "devfriend/internal/delivery/middleware"
	"devfriend/internal/domain/service"
	"devfriend/internal/infra/auth"
	"devfriend/internal/infra/crypto"
	logs "devfriend/internal/infra/log"
	"devfriend/internal/infra/oauth"
	"devfriend/internal/infra/persistence/postgres"
	"devfriend/internal/infra/providerapi"
	"devfriend/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSecretRepository,
			postgres.NewIntegrationRepository,
			postgres.NewNoteRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewStateTokenService,
			crypto.NewFernetEncryptor,
			providerapi.NewGmailClientFactory,
			providerapi.NewGitHubClientFactory,
			providerapi.NewSlackClientFactory,
			fx.Annotate(
				oauth.NewGoogleProvider,
				fx.As(new(service.OAuthProvider)),
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				oauth.NewGoogleProvider,
				fx.As(new(service.LoginProvider)),
			),
			fx.Annotate(
				oauth.NewGitHubProvider,
				fx.As(new(service.OAuthProvider)),
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				oauth.NewSlackProvider,
				fx.As(new(service.OAuthProvider)),
				fx.ResultTags(`group:"oauth_providers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialResolver,
			impl.NewAuthService,
			impl.NewSecretService,
			impl.NewIntegrationService,
			impl.NewOAuthService,
			impl.NewEmailService,
			impl.NewGitHubService,
			impl.NewMessagesService,
			impl.NewNoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			sharedmiddleware.NewRequestIDMiddleware,
			sharedmiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOAuthHandler,
			handler.NewSecretHandler,
			handler.NewIntegrationHandler,
			handler.NewEmailHandler,
			handler.NewGitHubHandler,
			handler.NewMessagesHandler,
			handler.NewNoteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
