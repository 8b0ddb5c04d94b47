package main

import (
	"context"
	"fmt"
	"log"

	"storefront-api/core"
)

func main() {
	cfg := core.Load()
	ctx := context.Background()

	logCloser, err := core.SetupLogging(cfg, "api.log")
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	db, err := core.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := core.Migrate(ctx, cfg.DatabaseURL); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	hasher := core.NewBcryptHasher(cfg.BcryptCost)
	tokens := core.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := core.NewPgUserRepository(db)
	authService := core.NewRepositoryAuthService(userRepo, hasher, tokens)

	// The document store backing product routes is configuration-driven;
	// "none" leaves the product routes unmounted.
	var productRepo core.ProductRepository
	switch cfg.ProductStore {
	case core.ProductStoreRedis:
		redisClient, err := core.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		defer redisClient.Close()
		productRepo = core.NewRedisProductRepository(redisClient)
	case core.ProductStorePostgres:
		productRepo = core.NewPgProductRepository(db)
	case core.ProductStoreNone:
		// auth-only deployment
	default:
		log.Fatalf("unknown PRODUCT_STORE %q", cfg.ProductStore)
	}

	router := core.NewRouter(cfg, authService, tokens, userRepo, productRepo)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("starting api server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
