package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Server.Port != 8087 {
		t.Fatalf("unexpected default port: %d", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "sodisen" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		t.Fatalf("upload size bound must be positive")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SODISEN_PORT", "9100")
	t.Setenv("SODISEN_MONGO_URI", "mongodb://db.example:27017")
	t.Setenv("SODISEN_DEV_MODE", "true")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9100 {
		t.Fatalf("port override not applied: %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://db.example:27017" {
		t.Fatalf("mongo URI override not applied: %s", cfg.Mongo.URI)
	}
	if !cfg.Server.DevMode {
		t.Fatalf("dev mode override not applied")
	}
}

func TestApplyEnvOverrides_BadPortIgnored(t *testing.T) {
	t.Setenv("SODISEN_PORT", "not-a-port")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 8087 {
		t.Fatalf("invalid port must keep the default, got %d", cfg.Server.Port)
	}
}
