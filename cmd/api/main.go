package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"charityflow/internal/adapter/repo"
	"charityflow/internal/http/handlers"
	"charityflow/internal/http/httpapi"
	"charityflow/internal/infra"
	"charityflow/internal/infra/geoip"
	"charityflow/internal/notify"
	"charityflow/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var countries geoip.CountryResolver
	if resolver != nil {
		defer resolver.Close()
		countries = resolver
	}

	ngoRepo := repo.NewNGORepository(dbpool)
	donationRepo := repo.NewDonationRepository(dbpool)
	notifier := notify.NewEmailSender(cfg.EmailWebhookURL, logger)

	app := handlers.NewApp(logger,
		service.NewNGOService(ngoRepo, logger),
		service.NewDonationService(donationRepo, notifier, logger),
		service.NewAnalyticsService(donationRepo, ngoRepo),
	)

	router := httpapi.NewRouter(app, httpapi.RouterOptions{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		Resolver:        countries,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
