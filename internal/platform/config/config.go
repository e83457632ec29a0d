package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FieldLimits holds the maximum accepted length per text field. Values come
// from configuration so client and server deployments stay in agreement.
type FieldLimits struct {
	Nombre    int
	Codigo    int
	Categoria int
	Proveedor int
	Cliente   int
}

// NumericRanges holds the accepted ranges for the numeric fields.
type NumericRanges struct {
	PrecioMin   float64
	PrecioMax   float64
	CantidadMin int64
	CantidadMax int64
	StockMin    int64
	StockMax    int64
}

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Tabular store backing the inventory. When SpreadsheetID is empty the
	// server falls back to the in-memory store (local development).
	SpreadsheetID         string
	GoogleCredentialsFile string

	RequestTimeout     time.Duration
	RateLimitPerMinute int

	// AuthEnabled is a placeholder; no authentication is wired yet.
	AuthEnabled bool

	Limits FieldLimits
	Ranges NumericRanges
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("AUTH_ENABLED", false)

	viper.SetDefault("MAX_LEN_NOMBRE", 200)
	viper.SetDefault("MAX_LEN_CODIGO", 50)
	viper.SetDefault("MAX_LEN_CATEGORIA", 100)
	viper.SetDefault("MAX_LEN_PROVEEDOR", 100)
	viper.SetDefault("MAX_LEN_CLIENTE", 100)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SpreadsheetID = viper.GetString("SPREADSHEET_ID")
	if cfg.SpreadsheetID == "" {
		log.Println("Warning: SPREADSHEET_ID not set. Falling back to the in-memory store.")
	}
	cfg.GoogleCredentialsFile = viper.GetString("GOOGLE_CREDENTIALS_FILE")

	timeoutStr := viper.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RequestTimeout = timeout

	cfg.RateLimitPerMinute = viper.GetInt("RATE_LIMIT_PER_MINUTE")
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 60
		log.Printf("Warning: RATE_LIMIT_PER_MINUTE must be positive. Defaulting to %d.\n", cfg.RateLimitPerMinute)
	}

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	if cfg.AuthEnabled {
		log.Println("Warning: AUTH_ENABLED is set but authentication is not implemented; flag is ignored.")
	}

	cfg.Limits = FieldLimits{
		Nombre:    viper.GetInt("MAX_LEN_NOMBRE"),
		Codigo:    viper.GetInt("MAX_LEN_CODIGO"),
		Categoria: viper.GetInt("MAX_LEN_CATEGORIA"),
		Proveedor: viper.GetInt("MAX_LEN_PROVEEDOR"),
		Cliente:   viper.GetInt("MAX_LEN_CLIENTE"),
	}

	// Numeric ranges are business rules rather than deployment knobs, so they
	// are fixed here instead of read from the environment.
	cfg.Ranges = NumericRanges{
		PrecioMin:   0.01,
		PrecioMax:   999999.99,
		CantidadMin: 1,
		CantidadMax: 999999,
		StockMin:    0,
		StockMax:    999999,
	}

	return cfg, nil
}
