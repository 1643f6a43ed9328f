package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("MERCADOPAGO_WEBHOOK_SECRET", "secret")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("FREE_POOL_LIMIT", "")
	t.Setenv("MERCADOPAGO_LOOKUP_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageBackend != StorageDynamoDB || cfg.FreePoolLimit != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MercadoPagoLookupTimeout != 10*time.Second {
		t.Fatalf("timeout=%s", cfg.MercadoPagoLookupTimeout)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MERCADOPAGO_WEBHOOK_SECRET", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("FREE_POOL_LIMIT", "5")
	t.Setenv("MERCADOPAGO_LOOKUP_TIMEOUT", "3")
	t.Setenv("APP_URL", "https://vaquinha.example.com/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.PaymentGatewayMock || cfg.StorageBackend != StorageMemory || cfg.FreePoolLimit != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.MercadoPagoLookupTimeout != 3*time.Second {
		t.Fatalf("timeout=%s", cfg.MercadoPagoLookupTimeout)
	}
	if cfg.AppURL != "https://vaquinha.example.com" {
		t.Fatalf("app url=%q", cfg.AppURL)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Port:                     "8080",
		StorageBackend:           StorageMemory,
		FreePoolLimit:            3,
		MercadoPagoLookupTimeout: time.Second,
		MercadoPagoWebhookSecret: "secret",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown backend", mutate: func(c *Config) { c.StorageBackend = "firestore" }, wantErr: true},
		{name: "zero limit", mutate: func(c *Config) { c.FreePoolLimit = 0 }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.MercadoPagoWebhookSecret = "" }, wantErr: true},
		{name: "missing secret in mock mode", mutate: func(c *Config) {
			c.MercadoPagoWebhookSecret = ""
			c.PaymentGatewayMock = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}
