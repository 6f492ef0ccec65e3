package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/InnoXenT9/aqua-earth-order/internal/cache"
	"github.com/InnoXenT9/aqua-earth-order/internal/catalog"
	h "github.com/InnoXenT9/aqua-earth-order/internal/http"
	"github.com/InnoXenT9/aqua-earth-order/internal/repository"
	s "github.com/InnoXenT9/aqua-earth-order/internal/service"
)

type Config struct {
	HTTPPort              string
	MongoURI              string
	MongoDBName           string
	RedisAddr             string
	RedisPassword         string
	CatalogDBPath         string
	CatalogMigrationsPath string
	JWTSecret             string
	WhatsAppNumber        string
	RequestTimeout        time.Duration
	ShutdownTimeout       time.Duration
	TokenTTL              time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		MongoURI:              getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:           getEnv("MONGO_DB_NAME", "aquaorder"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		CatalogDBPath:         getEnv("CATALOG_DB_PATH", "catalog.db"),
		CatalogMigrationsPath: getEnv("CATALOG_MIGRATIONS_PATH", "migrations/catalog"),
		JWTSecret:             getEnv("JWT_SECRET", "dev-only-secret"),
		WhatsAppNumber:        getEnv("WHATSAPP_NUMBER", "+917821069749"),
		RequestTimeout:        30 * time.Second,
		ShutdownTimeout:       10 * time.Second,
		TokenTTL:              24 * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := loadConfig()
	ctx := context.Background()

	// Catalog (SQLite)
	catalogRepo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog database")
	}
	defer catalogRepo.Close()

	if err := catalogRepo.RunMigrations(cfg.CatalogMigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run catalog migrations")
	}
	if err := catalogRepo.Seed(ctx, catalog.InitialProducts); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	catalogSvc := catalog.NewService(catalogRepo)
	log.Info().Str("path", cfg.CatalogDBPath).Msg("catalog ready")

	// Document store (MongoDB)
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoDB.Client().Disconnect(ctx)
	log.Info().Str("uri", cfg.MongoURI).Msg("connected to MongoDB")

	cartRepo := repository.NewMongoCartRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)
	userRepo := repository.NewMongoUserRepository(mongoDB)

	for name, idx := range map[string]interface{ CreateIndexes(context.Context) error }{
		"carts":  cartRepo,
		"orders": orderRepo,
		"users":  userRepo,
	} {
		if err := idx.CreateIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to create indexes")
		}
	}

	// Cart cache (Redis)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Redis connection failed")
	}
	cartCache := cache.NewRedisCache(redisClient)
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	// Services
	cartSvc := s.NewCartService(cartRepo, cartCache, catalogSvc)
	authSvc := s.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	checkoutSvc := s.NewCheckoutService(orderRepo, cartSvc, cfg.WhatsAppNumber)
	orderSvc := s.NewOrderService(orderRepo)

	router := h.NewRouter(h.RouterDeps{
		Auth:     h.NewAuthHandler(authSvc, cfg.RequestTimeout),
		Products: h.NewProductHandler(catalogSvc, cfg.RequestTimeout),
		Cart:     h.NewCartHandler(cartSvc, cfg.RequestTimeout),
		Checkout: h.NewCheckoutHandler(checkoutSvc, cfg.RequestTimeout),
		Orders:   h.NewOrdersHandler(orderSvc, cfg.RequestTimeout),
		Verifier: authSvc,
		Admin:    authSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("AquaOrder server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}
