package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	CatalogStatic   = "static"
	CatalogDynamoDB = "dynamodb"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"fa"`
	ExchangeRate    string `envconfig:"EXCHANGE_RATE" default:"65000"`
	// 데모용 패스코드, 실제 인증 아님
	AdminPasscode string `envconfig:"ADMIN_PASSCODE" default:"2025"`

	CatalogSource    string `envconfig:"CATALOG_SOURCE" default:"static"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	CatalogTableName string `envconfig:"CATALOG_TABLE_NAME" default:"storefront-catalog"`

	KafkaEnabled bool   `envconfig:"KAFKA_ENABLED" default:"false"`
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic   string `envconfig:"KAFKA_TOPIC" default:"storefront-orders"`

	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	TLSEnabled      bool   `envconfig:"TLS_ENABLED" default:"false"`
	SpireSocketPath string `envconfig:"SPIRE_SOCKET_PATH" default:"unix:///run/spire/sockets/agent.sock"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CatalogSource != CatalogStatic && cfg.CatalogSource != CatalogDynamoDB {
		return nil, errors.New("CATALOG_SOURCE must be static or dynamodb")
	}
	return &cfg, nil
}
