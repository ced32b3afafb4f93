package app

import (
	"go.uber.org/fx"

	"github.com/acertaplus/solicitation-api/internal/handlers"
	"github.com/acertaplus/solicitation-api/internal/repository"
	"github.com/acertaplus/solicitation-api/internal/services"
	sharedidempotency "github.com/acertaplus/solicitation-api/internal/shared/idempotency"
)

func RequestsModule() fx.Option {
	return fx.Module("requests",
		fx.Provide(
			fx.Annotate(
				provideConfirmRateLimiter,
				fx.ResultTags(`name:"confirm_rate_limiter"`),
			),
			fx.Annotate(
				sharedidempotency.NewSQLXStore,
				fx.ParamTags(`name:"db_requests"`),
				fx.ResultTags(`name:"confirm_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				repository.NewRequestCreateRepository,
				fx.ParamTags(`name:"db_requests"`),
				fx.As(new(services.RequestCreateRepository)),
			),
			fx.Annotate(
				repository.NewRequestConfirmRepository,
				fx.ParamTags(`name:"db_requests"`),
				fx.As(new(services.RequestConfirmRepository)),
			),
			fx.Annotate(
				services.NewRequestCreateService,
				fx.As(new(handlers.RequestCreateService)),
			),
			fx.Annotate(
				services.NewRequestPendingService,
				fx.As(new(handlers.RequestPendingService)),
			),
			fx.Annotate(
				services.NewRequestConfirmService,
				fx.As(new(handlers.RequestConfirmService)),
			),
			handlers.NewRequestCreateHandler,
			handlers.NewRequestPendingHandler,
			handlers.NewRequestConfirmHandler,
		),
		fx.Invoke(registerRequestsRoutes),
	)
}
