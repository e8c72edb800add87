package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string    `mapstructure:"service_name"`
	Env         string    `mapstructure:"env"`
	Port        string    `mapstructure:"port"`
	Log         Log       `mapstructure:"log"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
	Mongo       Mongo     `mapstructure:"mongo"`
	Consumer    Consumer  `mapstructure:"consumer"`
	AWS         AWS       `mapstructure:"aws"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Telemetry struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

type Mongo struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type Consumer struct {
	Workers           int   `mapstructure:"workers"`
	VisibilityTimeout int32 `mapstructure:"visibility_timeout"`
	WaitTimeSeconds   int32 `mapstructure:"wait_time_seconds"`
}

type AWS struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`
	EndpointSQS     string `mapstructure:"endpoint_sqs"`
	SQSQueueURL     string `mapstructure:"sqs_queue_url"`
}

// ReadConfig loads <ENVIRONMENT>.json from the config directory, then applies
// NOTIFICATION_* environment overrides
func ReadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName(getConfigName())
	v.SetConfigType("json")
	if _, filename, _, ok := runtime.Caller(0); ok {
		v.AddConfigPath(filepath.Dir(filename))
	}
	v.AddConfigPath("notification-service/config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NOTIFICATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	if config.AWS.SQSQueueURL == "" {
		return nil, errors.New("aws.sqs_queue_url is required")
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "notification-worker")
	v.SetDefault("env", getEnv("ENV", "local"))
	v.SetDefault("port", getEnv("PORT", "5003"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("telemetry.otlp_endpoint", "")

	v.SetDefault("mongo.uri", getEnv("MONGODB_URI", "mongodb://localhost:27017"))
	v.SetDefault("mongo.database", "notification_db")
	v.SetDefault("mongo.connect_timeout", "10s")

	v.SetDefault("consumer.workers", 10)
	v.SetDefault("consumer.visibility_timeout", 30)
	v.SetDefault("consumer.wait_time_seconds", 15)

	v.SetDefault("aws.access_key_id", getEnv("AWS_ACCESS_KEY_ID", "test"))
	v.SetDefault("aws.secret_access_key", getEnv("AWS_SECRET_ACCESS_KEY", "test"))
	v.SetDefault("aws.region", getEnv("AWS_DEFAULT_REGION", "us-east-1"))
	v.SetDefault("aws.endpoint_sqs", getEnv("AWS_ENDPOINT_URL_SQS", "http://localhost:4566"))
	v.SetDefault("aws.sqs_queue_url", getEnv("SQS_QUEUE_URL", "http://localhost:4566/000000000000/booking-notifications"))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
