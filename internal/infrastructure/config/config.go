package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "eveuniverse/internal/shared/config"
)

type Config struct {
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	ESI      sharedConfig.ESIConfig      `mapstructure:"esi"`
	Universe sharedConfig.UniverseConfig `mapstructure:"universe"`
	SDE      sharedConfig.SDEConfig      `mapstructure:"sde"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	// Set environment variable prefix and replacer
	viper.SetEnvPrefix("EVEUNIVERSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional for library-style use; defaults plus
		// environment variables are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("logger.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "eveuniverse.db")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// ESI transport defaults
	viper.SetDefault("esi.base_url", "https://esi.evetech.net/latest")
	viper.SetDefault("esi.datasource", "tranquility")
	viper.SetDefault("esi.user_agent", "eveuniverse")
	viper.SetDefault("esi.timeout_seconds", 30)

	// Universe ingestion defaults
	viper.SetDefault("universe.batch_size", 500)
	viper.SetDefault("universe.load_asteroid_belts", false)
	viper.SetDefault("universe.load_dogmas", false)
	viper.SetDefault("universe.load_graphics", false)
	viper.SetDefault("universe.load_market_groups", false)
	viper.SetDefault("universe.load_moons", false)
	viper.SetDefault("universe.load_planets", false)
	viper.SetDefault("universe.load_stargates", false)
	viper.SetDefault("universe.load_stars", false)
	viper.SetDefault("universe.load_stations", false)
	viper.SetDefault("universe.load_type_materials", false)
	viper.SetDefault("universe.tasks_time_limit", 7200)
	viper.SetDefault("universe.task_workers", 10)
	viper.SetDefault("universe.use_skinserver", true)

	// Static-data service defaults
	viper.SetDefault("sde.type_materials_url", "https://www.fuzzwork.co.uk/resources/typematerials.json")
	viper.SetDefault("sde.cache_ttl_hours", 24)
}
