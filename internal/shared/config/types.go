package config

import "fmt"

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	Mode       string `mapstructure:"mode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ESIConfig holds settings for the outbound ESI transport.
type ESIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Datasource     string `mapstructure:"datasource"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UniverseConfig carries the ingestion options recognized by the engine.
// The Load* flags enable the corresponding section process-wide; per-call
// sections are unioned with them.
type UniverseConfig struct {
	BatchSize         int  `mapstructure:"batch_size"`
	LoadAsteroidBelts bool `mapstructure:"load_asteroid_belts"`
	LoadDogmas        bool `mapstructure:"load_dogmas"`
	LoadGraphics      bool `mapstructure:"load_graphics"`
	LoadMarketGroups  bool `mapstructure:"load_market_groups"`
	LoadMoons         bool `mapstructure:"load_moons"`
	LoadPlanets       bool `mapstructure:"load_planets"`
	LoadStargates     bool `mapstructure:"load_stargates"`
	LoadStars         bool `mapstructure:"load_stars"`
	LoadStations      bool `mapstructure:"load_stations"`
	LoadTypeMaterials bool `mapstructure:"load_type_materials"`
	TasksTimeLimit    int  `mapstructure:"tasks_time_limit"`
	TaskWorkers       int  `mapstructure:"task_workers"`
	UseSkinserver     bool `mapstructure:"use_skinserver"`
}

// SDEConfig holds settings for the static-data auxiliary service.
type SDEConfig struct {
	TypeMaterialsURL string `mapstructure:"type_materials_url"`
	CacheTTLHours    int    `mapstructure:"cache_ttl_hours"`
}
