package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   card details, operator routing), security settings
// - default: Values common across all environments (timeouts, TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Payment   PaymentConfig
	Operators OperatorsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD" default:""`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	SessionTTL time.Duration `envconfig:"CHECKOUT_SESSION_TTL" default:"30m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PaymentConfig carries the card-transfer details shown to the buyer and the
// window used when an order deadline has to be refreshed.
type PaymentConfig struct {
	CardNumber     string        `envconfig:"PAYMENT_CARD_NUMBER" required:"true"`
	CardHolder     string        `envconfig:"PAYMENT_CARD_HOLDER" required:"true"`
	Currency       string        `envconfig:"PAYMENT_CURRENCY" default:"IRT"`
	DeadlineWindow time.Duration `envconfig:"PAYMENT_DEADLINE_WINDOW" default:"48h"`
}

// OperatorsConfig routes best-effort notifications through the chat gateway.
type OperatorsConfig struct {
	GatewayURL string        `envconfig:"OPERATORS_GATEWAY_URL" required:"true"`
	ChatIDs    []int64       `envconfig:"OPERATORS_CHAT_IDS" required:"true"`
	Timeout    time.Duration `envconfig:"OPERATORS_NOTIFY_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr:       "localhost:16379",
			SessionTTL: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Payment: PaymentConfig{
			CardNumber:     "6037-0000-0000-0000",
			CardHolder:     "Test Holder",
			Currency:       "IRT",
			DeadlineWindow: 48 * time.Hour,
		},
		Operators: OperatorsConfig{
			GatewayURL: "http://localhost:9090",
			ChatIDs:    []int64{1},
			Timeout:    time.Second,
		},
	}
}
