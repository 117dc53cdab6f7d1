package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingCredential indica uma credencial obrigatória ausente na configuração
var ErrMissingCredential = errors.New("missing required credential")

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Trading              Trading              `mapstructure:",squash"`
	Finance              Finance              `mapstructure:",squash"`
	Reconciliation       Reconciliation       `mapstructure:",squash"`
	MonthlyReconcileSync MonthlyReconcileSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Trading concentra as credenciais da Trading API (feed de pedidos)
type Trading struct {
	URL    string `mapstructure:"ebay_trading_url"`
	DevID  string `mapstructure:"ebay_dev_id"`
	AppID  string `mapstructure:"ebay_app_id"`
	CertID string `mapstructure:"ebay_cert_id"`
	Token  string `mapstructure:"ebay_token"`

	EntriesPerPage int `mapstructure:"ebay_trading_entries_per_page"`
	MaxPages       int `mapstructure:"ebay_trading_max_pages"`
}

// Finance concentra as credenciais da Finance API (feed de tarifas)
type Finance struct {
	URL           string `mapstructure:"ebay_finance_url"`
	OAuthToken    string `mapstructure:"ebay_oauth_user_token"`
	MarketplaceID string `mapstructure:"ebay_marketplace_id"`
	PageLimit     int    `mapstructure:"ebay_finance_page_limit"`
	MaxPages      int    `mapstructure:"ebay_finance_max_pages"`
}

type Reconciliation struct {
	SellerTimezone string `mapstructure:"seller_timezone"`
	MinYear        int    `mapstructure:"reconciliation_min_year"`
	OutputDir      string `mapstructure:"reconciliation_output_dir"`
}

type MonthlyReconcileSync struct {
	CronSchedule string `mapstructure:"monthly_reconcile_sync_cron"`
	Enabled      bool   `mapstructure:"monthly_reconcile_sync_enabled"`
	Allocation   string `mapstructure:"monthly_reconcile_sync_allocation"`
	FeeMode      string `mapstructure:"monthly_reconcile_sync_fee_mode"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("EBAY_TRADING_URL", "https://api.ebay.com/ws/api.dll")
	viper.SetDefault("EBAY_TRADING_ENTRIES_PER_PAGE", 100)
	viper.SetDefault("EBAY_TRADING_MAX_PAGES", 100)
	viper.SetDefault("EBAY_FINANCE_URL", "https://apiz.ebay.com/sell/finances/v1")
	viper.SetDefault("EBAY_MARKETPLACE_ID", "EBAY_US")
	viper.SetDefault("EBAY_FINANCE_PAGE_LIMIT", 1000)
	viper.SetDefault("EBAY_FINANCE_MAX_PAGES", 100)

	viper.SetDefault("SELLER_TIMEZONE", "America/Los_Angeles")
	viper.SetDefault("RECONCILIATION_MIN_YEAR", 2020)
	viper.SetDefault("RECONCILIATION_OUTPUT_DIR", ".")

	// No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_RECONCILE_SYNC_CRON", "0 5 1 * *")
	viper.SetDefault("MONTHLY_RECONCILE_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_RECONCILE_SYNC_ALLOCATION", "unit")
	viper.SetDefault("MONTHLY_RECONCILE_SYNC_FEE_MODE", "estimated")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as credenciais obrigatórias antes de qualquer chamada de rede.
// A ausência de qualquer uma delas é um erro fatal de inicialização.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"EBAY_DEV_ID", c.Trading.DevID},
		{"EBAY_APP_ID", c.Trading.AppID},
		{"EBAY_CERT_ID", c.Trading.CertID},
		{"EBAY_TOKEN", c.Trading.Token},
		{"EBAY_OAUTH_USER_TOKEN", c.Finance.OAuthToken},
	}

	for _, cred := range required {
		if cred.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredential, cred.name)
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
