package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/acertaplus/solicitation-api/internal/feed"
	"github.com/acertaplus/solicitation-api/internal/handlers"
	"github.com/acertaplus/solicitation-api/internal/repository"
	"github.com/acertaplus/solicitation-api/internal/services"
	"github.com/acertaplus/solicitation-api/internal/shared/changefeed"
	"github.com/acertaplus/solicitation-api/internal/shared/config"
	shareduid "github.com/acertaplus/solicitation-api/internal/shared/uid"
)

func FeedModule() fx.Option {
	return fx.Module("feed",
		fx.Provide(
			fx.Annotate(
				repository.NewRequestPendingRepository,
				fx.ParamTags(`name:"db_requests"`),
			),
			func(r *repository.RequestPendingRepository) services.RequestPendingRepository { return r },
			provideChangefeed,
			func(f *changefeed.RedisChangefeed) changefeed.Publisher { return f },
			func(f *changefeed.RedisChangefeed) changefeed.Subscriber { return f },
			provideUIDGenerator,
			provideFeedManager,
			func(m *feed.Manager) services.FeedManager { return m },
			func(m *feed.Manager) services.FeedSessions { return m },
			fx.Annotate(
				services.NewRequestFeedService,
				fx.As(new(handlers.FeedService)),
			),
			handlers.NewFeedHandler,
		),
		fx.Invoke(registerFeedRoutes),
	)
}

func provideChangefeed(
	client *redis.Client,
	snapshot *repository.RequestPendingRepository,
	cfg config.ConfigProvider,
) (*changefeed.RedisChangefeed, error) {
	if client == nil {
		return nil, fmt.Errorf("app: redis client is required for the changefeed")
	}

	opts := make([]changefeed.RedisOption, 0, 1)
	if channel := strings.TrimSpace(cfg.GetString("feed.channel")); channel != "" {
		opts = append(opts, changefeed.WithChannel(channel))
	}
	return changefeed.NewRedisChangefeed(client, snapshot, opts...)
}

func provideUIDGenerator(cfg config.ConfigProvider) (shareduid.UIDGenerator, error) {
	strategy := strings.TrimSpace(strings.ToLower(cfg.GetString("uid.strategy")))
	if strategy == string(shareduid.StrategySnowflake) {
		return shareduid.New(shareduid.Options{
			Strategy: shareduid.StrategySnowflake,
			NodeID:   int64(cfg.GetInt("uid.node_id")),
		})
	}
	return shareduid.New(shareduid.Options{Strategy: shareduid.StrategyUUIDv7})
}

func provideFeedManager(
	subscriber changefeed.Subscriber,
	cfg config.ConfigProvider,
	logger *slog.Logger,
) *feed.Manager {
	return feed.NewManager(subscriber, feed.Options{
		Order:              feed.ParseOrder(cfg.GetString("feed.order")),
		ClearSeenOnConfirm: cfg.GetBool("feed.clear_seen_on_confirm"),
		EventBuffer:        cfg.GetInt("feed.event_buffer"),
	}, logger)
}
