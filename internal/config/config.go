package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

const (
	StageLocal = "local"
	StageProd  = "prod"
)

// Config is the process configuration. Values come from the environment and
// an optional .env file; cmd/api also loads .env through godotenv/autoload.
type Config struct {
	Port     int
	Stage    string
	LogLevel string

	AWS       AWSConfig
	Tables    TablesConfig
	Signature SignatureConfig
	Payments  PaymentsConfig
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// DynamoDBEndpoint points at a local DynamoDB when set, e.g. http://dynamodb:8000.
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Visits            string
	Payments          string
	SignatureSessions string
}

// SignatureConfig configures the remote signature service client and the
// polling coordinator.
type SignatureConfig struct {
	BaseURL         string
	Token           string
	Timeout         time.Duration
	PollInterval    time.Duration
	CompletionDelay time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	// Sandbox payer used when a test access token is configured.
	TestPayerEmail  string
	TestPayerUserID string
	// Mock skips the provider and approves every payment locally.
	Mock bool
}

// Sandbox reports whether the access token is a Mercado Pago test token.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(p.MercadoPagoAccessToken, "TEST-")
}

// environment mirrors the environment variable names, lowercased.
type environment struct {
	Port     int    `koanf:"port"`
	Stage    string `koanf:"stage"`
	LogLevel string `koanf:"log_level"`

	AWSRegion          string `koanf:"aws_region"`
	AWSAccessKeyID     string `koanf:"aws_access_key_id"`
	AWSSecretAccessKey string `koanf:"aws_secret_access_key"`
	DynamoDBEndpoint   string `koanf:"dynamodb_endpoint"`

	VisitsTable            string `koanf:"visits_table"`
	PaymentsTable          string `koanf:"payments_table"`
	SignatureSessionsTable string `koanf:"signature_sessions_table"`

	SignatureAPIURL          string        `koanf:"signature_api_url"`
	SignatureAPIToken        string        `koanf:"signature_api_token"`
	SignatureHTTPTimeout     time.Duration `koanf:"signature_http_timeout"`
	SignaturePollInterval    time.Duration `koanf:"signature_poll_interval"`
	SignatureCompletionDelay time.Duration `koanf:"signature_completion_delay"`

	MercadoPagoAccessToken     string `koanf:"mercadopago_access_token"`
	MercadoPagoTestPayerEmail  string `koanf:"mercadopago_test_payer_email"`
	MercadoPagoTestPayerUserID string `koanf:"mercadopago_test_payer_user_id"`
	PaymentGatewayMock         bool   `koanf:"payment_gateway_mock"`
	MercadoPagoMock            bool   `koanf:"mercadopago_mock"`
}

// Load reads the configuration on top of the defaults. A value that does not
// parse, or a non-positive port or interval, is an error.
func Load() (Config, error) {
	env := environment{
		Port:                     8080,
		Stage:                    StageLocal,
		LogLevel:                 "info",
		AWSRegion:                "eu-central-1",
		AWSAccessKeyID:           "local",
		AWSSecretAccessKey:       "local",
		VisitsTable:              "visits",
		PaymentsTable:            "visit_payments",
		SignatureSessionsTable:   "signature_sessions",
		SignatureAPIURL:          "http://localhost:8081/api",
		SignatureHTTPTimeout:     20 * time.Second,
		SignaturePollInterval:    3 * time.Second,
		SignatureCompletionDelay: 2 * time.Second,
	}

	if err := coreconfig.Load(&env); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if err := env.validate(); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return env.config(), nil
}

func (e environment) validate() error {
	var errs []error
	if e.Port <= 0 {
		errs = append(errs, fmt.Errorf("port must be positive, got %d", e.Port))
	}
	if e.SignatureHTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("signature_http_timeout must be positive, got %s", e.SignatureHTTPTimeout))
	}
	if e.SignaturePollInterval <= 0 {
		errs = append(errs, fmt.Errorf("signature_poll_interval must be positive, got %s", e.SignaturePollInterval))
	}
	if e.SignatureCompletionDelay < 0 {
		errs = append(errs, fmt.Errorf("signature_completion_delay must not be negative, got %s", e.SignatureCompletionDelay))
	}
	return errors.Join(errs...)
}

func (e environment) config() Config {
	return Config{
		Port:     e.Port,
		Stage:    strings.TrimSpace(e.Stage),
		LogLevel: strings.TrimSpace(e.LogLevel),
		AWS: AWSConfig{
			Region:           e.AWSRegion,
			AccessKeyID:      e.AWSAccessKeyID,
			SecretAccessKey:  e.AWSSecretAccessKey,
			DynamoDBEndpoint: strings.TrimSpace(e.DynamoDBEndpoint),
		},
		Tables: TablesConfig{
			Visits:            e.VisitsTable,
			Payments:          e.PaymentsTable,
			SignatureSessions: e.SignatureSessionsTable,
		},
		Signature: SignatureConfig{
			BaseURL:         strings.TrimSpace(e.SignatureAPIURL),
			Token:           strings.TrimSpace(e.SignatureAPIToken),
			Timeout:         e.SignatureHTTPTimeout,
			PollInterval:    e.SignaturePollInterval,
			CompletionDelay: e.SignatureCompletionDelay,
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: strings.TrimSpace(e.MercadoPagoAccessToken),
			TestPayerEmail:         strings.TrimSpace(e.MercadoPagoTestPayerEmail),
			TestPayerUserID:        strings.TrimSpace(e.MercadoPagoTestPayerUserID),
			Mock:                   e.PaymentGatewayMock || e.MercadoPagoMock,
		},
	}
}
