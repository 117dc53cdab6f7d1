package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Trading.DevID = "dev-id"
	cfg.Trading.AppID = "app-id"
	cfg.Trading.CertID = "cert-id"
	cfg.Trading.Token = "trading-token"
	cfg.Finance.OAuthToken = "oauth-token"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		missing string
	}{
		{
			name:   "Todas as credenciais presentes",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "DevID ausente",
			mutate:  func(cfg *Config) { cfg.Trading.DevID = "" },
			missing: "EBAY_DEV_ID",
		},
		{
			name:    "AppID ausente",
			mutate:  func(cfg *Config) { cfg.Trading.AppID = "" },
			missing: "EBAY_APP_ID",
		},
		{
			name:    "CertID ausente",
			mutate:  func(cfg *Config) { cfg.Trading.CertID = "" },
			missing: "EBAY_CERT_ID",
		},
		{
			name:    "Token da Trading API ausente",
			mutate:  func(cfg *Config) { cfg.Trading.Token = "" },
			missing: "EBAY_TOKEN",
		},
		{
			name:    "Token OAuth da Finance API ausente",
			mutate:  func(cfg *Config) { cfg.Finance.OAuthToken = "" },
			missing: "EBAY_OAUTH_USER_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrMissingCredential)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}
