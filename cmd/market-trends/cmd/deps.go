package cmd

import (
	"context"
	"log/slog"

	"github.com/cardledger/market-trends/internal/config"
	"github.com/cardledger/market-trends/internal/ebay"
	"github.com/cardledger/market-trends/internal/notify"
	"github.com/cardledger/market-trends/internal/store"
	"github.com/cardledger/market-trends/internal/trends"
)

// newEbayPaginator builds the marketplace client chain from config:
// OAuth token provider, rate-limited Browse client, paginator.
func newEbayPaginator(cfg *config.Config) *ebay.Paginator {
	var authOpts []ebay.OAuthOption
	if cfg.Ebay.TokenURL != "" {
		authOpts = append(authOpts, ebay.WithTokenURL(cfg.Ebay.TokenURL))
	}
	tokens := ebay.NewOAuthTokenProvider(cfg.Ebay.AppID, cfg.Ebay.CertID, authOpts...)

	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	browseOpts := []ebay.BrowseOption{ebay.WithRateLimiter(limiter)}
	if cfg.Ebay.BrowseURL != "" {
		browseOpts = append(browseOpts, ebay.WithBrowseURL(cfg.Ebay.BrowseURL))
	}
	if cfg.Ebay.Marketplace != "" {
		browseOpts = append(browseOpts, ebay.WithMarketplace(cfg.Ebay.Marketplace))
	}
	client := ebay.NewBrowseClient(tokens, browseOpts...)

	return ebay.NewPaginator(client,
		ebay.WithPageSize(cfg.Trends.PageSize),
		ebay.WithMaxPages(cfg.Trends.MaxPages),
	)
}

// newUpdater wires the daily snapshot updater. The cache may be nil for
// one-shot CLI runs that have no read path to invalidate.
func newUpdater(
	cfg *config.Config,
	st store.Store,
	cache *trends.Cache,
	log *slog.Logger,
) *trends.Updater {
	agg := trends.NewAggregator(
		trends.WithWindowDays(cfg.Trends.WindowDays),
		trends.WithMoversCount(cfg.Trends.MoversCount),
	)

	return trends.NewUpdater(newEbayPaginator(cfg), agg, cache, st,
		trends.WithUpdaterLogger(log),
		trends.WithUpdaterSearchQuery(cfg.Trends.SearchQuery),
		trends.WithUpdaterCategoryID(cfg.Trends.CategoryID),
		trends.WithSampleSize(cfg.Trends.SampleSize),
		trends.WithNotifier(newNotifier(cfg, log)),
	)
}

// newNotifier picks the digest backend: Discord when a webhook URL is
// configured, otherwise a logging no-op.
func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notify.DiscordWebhookURL != "" {
		return notify.NewDiscordNotifier(cfg.Notify.DiscordWebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

// newService wires the live trend read path.
func newService(
	cfg *config.Config,
	st store.Store,
	cache *trends.Cache,
	log *slog.Logger,
) *trends.Service {
	agg := trends.NewAggregator(
		trends.WithWindowDays(cfg.Trends.WindowDays),
		trends.WithMoversCount(cfg.Trends.MoversCount),
	)

	return trends.NewService(newEbayPaginator(cfg), agg, cache, st,
		trends.WithServiceLogger(log),
		trends.WithSearchQuery(cfg.Trends.SearchQuery),
		trends.WithCategoryID(cfg.Trends.CategoryID),
	)
}

// openStore connects to Postgres using the configured DSN.
func openStore(ctx context.Context, cfg *config.Config) (*store.PostgresStore, error) {
	return store.NewPostgresStore(ctx, cfg.Database.DSN())
}
