package core

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST", "PRODUCT_STORE", "MIGRATE_ON_START"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("default port: got %q want 5000", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("default token ttl: got %v want 1h", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("default bcrypt cost: got %d want 10", cfg.BcryptCost)
	}
	if cfg.ProductStore != ProductStoreRedis {
		t.Fatalf("default product store: got %q want redis", cfg.ProductStore)
	}
	if !cfg.MigrateOnStart {
		t.Fatal("migrations should run at startup by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PRODUCT_STORE", "none")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port override: got %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("token ttl override: got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("bcrypt cost override: got %d", cfg.BcryptCost)
	}
	if cfg.ProductStore != ProductStoreNone {
		t.Fatalf("product store override: got %q", cfg.ProductStore)
	}
	if cfg.MigrateOnStart {
		t.Fatal("MIGRATE_ON_START=false should disable startup migrations")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("BCRYPT_COST", "lots")
	t.Setenv("MIGRATE_ON_START", "maybe")

	cfg := Load()
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("invalid ttl should fall back: got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("invalid cost should fall back: got %d", cfg.BcryptCost)
	}
	if !cfg.MigrateOnStart {
		t.Fatal("invalid bool should fall back to default true")
	}
}
