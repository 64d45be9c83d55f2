package config

import (
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Inventory.LowStockThreshold != 10 {
		t.Errorf("default threshold = %d, want 10", cfg.Inventory.LowStockThreshold)
	}
	if cfg.JWT.Expiration != "24h" {
		t.Errorf("default jwt expiration = %q, want 24h", cfg.JWT.Expiration)
	}
}

func TestLoadConfig_RejectsBadThreshold(t *testing.T) {
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "0")
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("threshold 0 accepted, want error")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "25")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Inventory.LowStockThreshold != 25 {
		t.Errorf("threshold = %d, want 25 from env", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090 from env", cfg.Server.Port)
	}
}
