package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/michy-dev/africa-trends-live/internal/catalog"
	"github.com/michy-dev/africa-trends-live/internal/config"
	"github.com/michy-dev/africa-trends-live/internal/domain"
	"github.com/michy-dev/africa-trends-live/internal/logging"
	"github.com/michy-dev/africa-trends-live/internal/notify/telegram"
	"github.com/michy-dev/africa-trends-live/internal/ports"
	"github.com/michy-dev/africa-trends-live/internal/schedule"
	"github.com/michy-dev/africa-trends-live/internal/source/chart"
	"github.com/michy-dev/africa-trends-live/internal/source/gtrends"
	"github.com/michy-dev/africa-trends-live/internal/source/newsfeed"
	transporthttp "github.com/michy-dev/africa-trends-live/internal/transport/http"
	"github.com/michy-dev/africa-trends-live/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *transporthttp.Server
	scheduler ports.Scheduler
	notifier  ports.Notifier
}

// New builds a runnable application instance from configuration.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	cat := catalogFromConfig(cfg)
	httpClient := &http.Client{Timeout: cfg.Pipeline.FetchTimeout()}

	trendsClient := gtrends.NewClient(cfg.Sources.TrendsBaseURL, cfg.Sources.UserAgent, httpClient)
	scorer := gtrends.NewScorer(trendsClient, baseLogger.With("component", "gtrends.scorer"))
	topics := gtrends.NewTopics(trendsClient, baseLogger.With("component", "gtrends.topics"))

	locale := newsfeed.Locale{
		HL:   cfg.Sources.NewsLocale.HL,
		GL:   cfg.Sources.NewsLocale.GL,
		CEID: cfg.Sources.NewsLocale.CEID,
	}
	news := newsfeed.NewExtractor(cfg.Sources.NewsBaseURL, cfg.Sources.UserAgent, locale, httpClient,
		baseLogger.With("component", "newsfeed"))

	charts := chart.NewScraper(cfg.Sources.ChartBaseURL, cfg.Sources.UserAgent, httpClient,
		baseLogger.With("component", "chart"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Catalog:     cat,
		Interest:    scorer,
		Topics:      topics,
		News:        news,
		Charts:      charts,
		Logger:      baseLogger.With("component", "pipeline"),
		Concurrency: cfg.Pipeline.FetchConcurrency,
	})

	server := transporthttp.NewServer(transporthttp.ServerOptions{
		Builder:      pipeline,
		Logger:       baseLogger,
		CacheTTL:     cfg.Server.CacheTTL(),
		CycleTimeout: cfg.Pipeline.CycleTimeout(),
	})

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	return &Application{
		cfg:       cfg,
		logger:    baseLogger.With("component", "app"),
		server:    server,
		scheduler: schedule.NewCronScheduler(cfg.Refresh.CronExpression),
		notifier:  notifier,
	}
}

// Run starts the refresh scheduler and serves HTTP until ctx is canceled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.scheduler.Start(ctx, a.refresh(ctx)); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.scheduler.Stop(stopCtx); err != nil {
			a.logger.Warn("scheduler stop", "error", err)
		}
	}()

	handler := transporthttp.WithLogging(a.logger, transporthttp.WithCORS(a.server.Routes()))
	httpServer := &http.Server{
		Addr:              a.cfg.Server.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", a.cfg.Server.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// refresh rebuilds the snapshot and, when a notifier is configured, posts
// the rising-artist digest.
func (a *Application) refresh(ctx context.Context) func(time.Time) {
	return func(t time.Time) {
		snap := a.server.Refresh(ctx)
		a.logger.Info("snapshot refreshed", "at", t, "degraded", len(snap.Degraded))

		if a.notifier == nil {
			return
		}
		if err := a.notifier.PublishDigest(ctx, telegram.RisingDigest(snap)); err != nil {
			a.logger.Warn("publish digest", "error", err)
		}
	}
}

// catalogFromConfig translates config entries into the runtime catalog.
// Sections left empty in config fall back to the built-in defaults.
func catalogFromConfig(cfg config.Config) *catalog.Catalog {
	regions := make([]domain.Region, 0, len(cfg.Regions))
	for _, r := range cfg.Regions {
		regions = append(regions, domain.Region{
			ID:        r.ID,
			Name:      r.Name,
			GeoCode:   r.Geo,
			FlagGlyph: r.Flag,
			Artists:   r.Artists,
		})
	}

	cities := make([]domain.City, 0, len(cfg.Cities))
	for _, c := range cfg.Cities {
		cities = append(cities, domain.City{
			Name:      c.Name,
			Flag:      c.Flag,
			TopArtist: c.TopArtist,
			Searches:  c.Searches,
		})
	}

	countries := make([]catalog.ChartCountry, 0, len(cfg.ChartCountries))
	for _, c := range cfg.ChartCountries {
		countries = append(countries, catalog.ChartCountry{Code: c.Code, Name: c.Name, Flag: c.Flag})
	}

	return catalog.New(regions, cities, countries)
}
