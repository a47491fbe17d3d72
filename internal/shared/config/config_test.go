package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Mock.Enabled {
		t.Error("Mock.Enabled = true by default, want false")
	}
	if cfg.Telemetry.ServiceName != "kort-api" {
		t.Errorf("Telemetry.ServiceName = %q, want %q", cfg.Telemetry.ServiceName, "kort-api")
	}
}

func TestLoad_MockToggle(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"weird", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("USE_MOCK", tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Mock.Enabled != tt.want {
				t.Errorf("Mock.Enabled = %v for USE_MOCK=%q, want %v", cfg.Mock.Enabled, tt.value, tt.want)
			}
		})
	}
}

func TestLoad_InvalidDBPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for invalid DB_PORT, got nil")
	}
}

func TestLoad_AllowedHosts(t *testing.T) {
	t.Setenv("ALLOWED_HOSTS", "api.example.com, example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := []string{"api.example.com", "example.com"}
	if len(cfg.Server.AllowedHosts) != len(want) {
		t.Fatalf("AllowedHosts = %v, want %v", cfg.Server.AllowedHosts, want)
	}
	for i := range want {
		if cfg.Server.AllowedHosts[i] != want[i] {
			t.Errorf("AllowedHosts[%d] = %q, want %q", i, cfg.Server.AllowedHosts[i], want[i])
		}
	}
}

func TestConnectionString(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "kort",
		Password: "secret",
		DBName:   "cards",
		SSLMode:  "require",
	}

	got := c.ConnectionString()
	want := "host=db.local port=5433 user=kort password=secret dbname=cards sslmode=require"
	if got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}
