package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *DatabaseConfig
		want bool
	}{
		{name: "nil section", cfg: nil, want: false},
		{name: "empty driver", cfg: &DatabaseConfig{Host: "db", Port: "5432", UserName: "u", DBName: "d"}, want: false},
		{name: "unknown driver", cfg: &DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", UserName: "u", DBName: "d"}, want: false},
		{name: "complete postgres", cfg: &DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", UserName: "u", DBName: "d"}, want: true},
		{name: "postgres driver is case insensitive", cfg: &DatabaseConfig{Driver: " Postgres ", Host: "db", Port: "5432", UserName: "u", DBName: "d"}, want: true},
		{name: "postgres missing host", cfg: &DatabaseConfig{Driver: "postgres", Port: "5432", UserName: "u", DBName: "d"}, want: false},
		{name: "postgres placeholder host", cfg: &DatabaseConfig{Driver: "postgres", Host: "your_database_host_here", Port: "5432", UserName: "u", DBName: "d"}, want: false},
		{name: "postgres placeholder password", cfg: &DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", UserName: "u", DBName: "d", Password: "changeme"}, want: false},
		{name: "sqlite with path", cfg: &DatabaseConfig{Driver: "sqlite", Path: "lifeline.db"}, want: true},
		{name: "sqlite without path", cfg: &DatabaseConfig{Driver: "sqlite"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.IsConfigured())
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultQRSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRMargin, cfg.QRCode.Margin)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "http://localhost:3000", cfg.QRCode.BaseURL)
	assert.Equal(t, "http://localhost:3000/qr-codes", cfg.Storage.PublicBaseURL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.NotNil(t, cfg.Fallback)
	assert.NotNil(t, cfg.DebugRoutes)
}

func TestConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		QRCode:  &QRCodeConfig{Size: 512, BaseURL: "https://lifeline.example/"},
		Auth:    &AuthConfig{BcryptCost: 4},
		Storage: &StorageConfig{PublicBaseURL: "https://cdn.example/qr/"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 512, cfg.QRCode.Size)
	assert.Equal(t, "https://lifeline.example", cfg.QRCode.BaseURL)
	assert.Equal(t, "https://cdn.example/qr", cfg.Storage.PublicBaseURL)
	assert.Equal(t, minBcryptCost, cfg.Auth.BcryptCost, "cost is raised to the floor")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("DATABASE_REPLICAS_0_HOST", "replica-0")
	t.Setenv("DATABASE_REPLICAS_0_PORT", "5432")
	t.Setenv("DATABASE_REPLICAS_0_USERNAME", "reader")
	t.Setenv("DATABASE_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, ReplicaConfig{Host: "replica-0", Port: "5432", UserName: "reader"}, replicas[0])
	}
}
