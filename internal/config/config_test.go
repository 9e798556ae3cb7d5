package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HMS_API_URL", "http://localhost:8090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("expected development env, got %q", cfg.Env)
	}
	if cfg.PageSize != 7 {
		t.Errorf("expected default page size 7, got %d", cfg.PageSize)
	}
	if cfg.HTTPTimeout != 30 || cfg.RetryMax != 3 {
		t.Errorf("unexpected HTTP defaults: %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HMS_API_URL", "https://hms.example.org")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("PORTAL_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "https://hms.example.org" {
		t.Errorf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.PageSize)
	}
	if cfg.Token != "tok" {
		t.Errorf("unexpected token %q", cfg.Token)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid development",
			cfg:  Config{APIBaseURL: "http://localhost:8090", Env: "development", PageSize: 7},
		},
		{
			name:    "missing base url",
			cfg:     Config{Env: "development", PageSize: 7},
			wantErr: true,
		},
		{
			name:    "bad base url",
			cfg:     Config{APIBaseURL: "::nope", Env: "development", PageSize: 7},
			wantErr: true,
		},
		{
			name:    "zero page size",
			cfg:     Config{APIBaseURL: "http://x", Env: "development"},
			wantErr: true,
		},
		{
			name:    "production without token secret",
			cfg:     Config{APIBaseURL: "http://x", Env: "production", PageSize: 7},
			wantErr: true,
		},
		{
			name: "production with token secret",
			cfg:  Config{APIBaseURL: "http://x", Env: "production", PageSize: 7, TokenSecret: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
