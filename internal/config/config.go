package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	// Redis backs the destination rating cache. Leaving addr empty disables
	// the cache entirely; the service falls through to the database.
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Seed struct {
		// SeedOnStartup runs the bulk review seeder once at boot when the
		// review table is empty. The same operation is also exposed on the
		// admin API.
		SeedOnStartup bool `yaml:"seed_on_startup"`
	} `yaml:"seed"`

	Worker struct {
		// RatingReconcileMinutes is the interval of the background aggregate
		// reconciliation pass. Zero disables the worker.
		RatingReconcileMinutes int `yaml:"rating_reconcile_minutes"`
	} `yaml:"worker"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When DATABASE_URL is set the whole
// configuration comes from the environment (container and test mode),
// otherwise it is read from config.yaml (CONFIG_PATH overrides the location).
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	cfg.Seed.SeedOnStartup = os.Getenv("SEED_ON_STARTUP") == "true"
	cfg.Worker.RatingReconcileMinutes, _ = strconv.Atoi(os.Getenv("RATING_RECONCILE_MINUTES"))

	AppConfig = &cfg
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
