package config

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	c          *Config
	once       sync.Once
	configPath = flag.String("config", "config.yaml", "config file path")
)

type Config struct {
	HTTPPort        string        `yaml:"http_port" env:"HTTP_PORT" env-default:"8080"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	Mongo MongoConfig    `yaml:"mongo"`
	Redis RedisConfig    `yaml:"redis"`
	DB    PostgresConfig `yaml:"postgres"`
	Kafka KafkaConfig    `yaml:"kafka"`
}

type MongoConfig struct {
	URI    string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	DBName string `yaml:"db_name" env:"MONGO_DB_NAME" env-default:"apple_store"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
}

type PostgresConfig struct {
	Host           string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User           string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password       string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	DBName         string `yaml:"db_name" env:"DB_NAME" env-default:"orders"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"internal/orders/migrations"`
}

// KafkaConfig is optional. An empty broker list disables order event
// publishing.
type KafkaConfig struct {
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
	Topic   string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"order-events"`
}

// MustLoad reads the config file when one exists and falls back to
// environment variables otherwise.
func MustLoad() *Config {
	once.Do(func() {
		if !flag.Parsed() {
			flag.Parse()
		}
		c = new(Config)
		if _, err := os.Stat(*configPath); err == nil {
			if err := cleanenv.ReadConfig(*configPath, c); err != nil {
				panic(err)
			}
			return
		}
		if err := cleanenv.ReadEnv(c); err != nil {
			panic(err)
		}
	})

	return c
}
