package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	libdb "chargeshare/backend/libs/db"
	libredis "chargeshare/backend/libs/redis"
	"chargeshare/backend/services/marketplace-service/internal/config"
	httpserver "chargeshare/backend/services/marketplace-service/internal/http"
	"chargeshare/backend/services/marketplace-service/internal/http/handlers"
	"chargeshare/backend/services/marketplace-service/internal/http/middleware"
	"chargeshare/backend/services/marketplace-service/internal/redisstore"
	"chargeshare/backend/services/marketplace-service/internal/repository"
	"chargeshare/backend/services/marketplace-service/internal/service"
	"chargeshare/backend/services/marketplace-service/internal/token"
	"chargeshare/backend/services/marketplace-service/internal/ws"
)

// App wires marketplace-service dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := libdb.NewPostgresDB(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	redisClient, err := libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	orderRepo := repository.NewOrderRepository(sqlDB)
	reviewRepo := repository.NewReviewRepository(sqlDB)

	listingCache := redisstore.NewListingCache(redisClient, cfg.ListingCacheTTL())
	liveStore := redisstore.NewLiveSessionStore(redisClient, cfg.LiveSessionTTL())
	favoritesStore := redisstore.NewFavoritesStore(redisClient)

	chargerSvc := service.NewChargerService(listingCache, logger)
	orderSvc := service.NewOrderService(orderRepo, liveStore, chargerSvc, logger)
	statsSvc := service.NewStatsService(orderSvc)
	reviewSvc := service.NewReviewService(reviewRepo, orderRepo, logger)

	tokens := token.NewService(cfg.Token.Secret, cfg.TokenExpiry())

	feedManager := ws.NewManager()
	feedServer := ws.NewServer(feedManager, orderSvc, cfg.FeedPushInterval(), 10*time.Second, logger)

	chargersHandler := handlers.NewChargersHandler(chargerSvc, reviewSvc)
	ordersHandler := handlers.NewOrdersHandler(orderSvc, logger)
	statsHandler := handlers.NewStatsHandler(statsSvc)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesStore, logger)
	estimateHandler := handlers.NewEstimateHandler(chargerSvc)

	routes := httpserver.Routes{
		Session:         handlers.NewSessionHandler(tokens, logger),
		ChargersList:    chargersHandler.List,
		ChargerDetail:   chargersHandler.Detail,
		ChargerReviews:  chargersHandler.Reviews,
		ChargerEstimate: estimateHandler.Estimate,
		OrderBook:       ordersHandler.Book,
		OrderComplete:   ordersHandler.Complete,
		OrderCancel:     ordersHandler.Cancel,
		OrderHistory:    ordersHandler.History,
		OrderLive:       ordersHandler.Live,
		StatsMe:         statsHandler.Me,
		OwnerEarnings:   statsHandler.Earnings,
		ReviewCreate:    handlers.NewCreateReviewHandler(reviewSvc),
		FavoriteAdd:     favoritesHandler.Add,
		FavoriteRemove:  favoritesHandler.Remove,
		FavoriteList:    favoritesHandler.List,
		ChargingFeed:    feedServer.HandleWS,
		Health:          handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes, middleware.Session(tokens))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		db:          sqlDB,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
