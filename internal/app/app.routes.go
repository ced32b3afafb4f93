package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/acertaplus/solicitation-api/internal/handlers"
	"github.com/acertaplus/solicitation-api/internal/middlewares"
	sharedidempotency "github.com/acertaplus/solicitation-api/internal/shared/idempotency"
	sharedjwt "github.com/acertaplus/solicitation-api/internal/shared/jwt"
	sharedratelimit "github.com/acertaplus/solicitation-api/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware())
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware())
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public  fiber.Router `name:"api_public"`
	Handler *handlers.AuthLoginHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
}

type requestsRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"confirm_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"confirm_rate_limiter"`
	Logger           *slog.Logger
	CreateHandler    *handlers.RequestCreateHandler
	PendingHandler   *handlers.RequestPendingHandler
	ConfirmHandler   *handlers.RequestConfirmHandler
}

func registerRequestsRoutes(in requestsRoutesIn) {
	in.CreateHandler.Register(in.Protected)
	in.PendingHandler.Register(in.Protected)

	rateLimitMiddleware := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerUserKeyExtractor("confirm"),
	})

	confirmRouter := in.Protected.Group("", rateLimitMiddleware, middlewares.NewHTTPConfirmIdempotencyMiddleware(in.IdempotencyStore))
	in.ConfirmHandler.Register(confirmRouter)
}

type feedRoutesIn struct {
	fx.In
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.FeedHandler
}

func registerFeedRoutes(in feedRoutesIn) {
	in.Handler.Register(in.Protected)
}
