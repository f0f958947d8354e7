package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Redis    RedisConfig    `yaml:"redis"`
	Workload WorkloadConfig `yaml:"workload"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, mysql, postgres
	DSN    string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	ExpireHour int    `yaml:"expire_hour"`
}

// RedisConfig for the optional async recompute queue
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// WorkloadConfig tunes the workload scoring pipeline.
type WorkloadConfig struct {
	CountryCode     string `yaml:"country_code"`      // work calendar region, e.g. US, DE, CN
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"` // metrics cache TTL
	DigestTime      string `yaml:"digest_time"`       // daily team digest, "HH:MM"
	DigestEnabled   bool   `yaml:"digest_enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

var GlobalConfig *Config

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, err
		}
		cfg = &fileCfg
	}

	cfg.overrideFromEnv()
	cfg.applyFallbacks()
	GlobalConfig = cfg
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "praxis.db",
		},
		JWT: JWTConfig{
			Secret:     "praxis-secret-key-change-in-production",
			ExpireHour: 24,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			DB:      0,
		},
		Workload: WorkloadConfig{
			CountryCode:     "US",
			CacheTTLSeconds: 300,
			DigestTime:      "18:00",
			DigestEnabled:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) overrideFromEnv() {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		c.Server.Mode = mode
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		c.Database.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.JWT.Secret = secret
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = addr
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		c.Redis.Password = pw
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			c.Redis.DB = n
		}
	}
	if cc := os.Getenv("WORKLOAD_COUNTRY"); cc != "" {
		c.Workload.CountryCode = cc
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// applyFallbacks fills zero values left by a partial config file.
func (c *Config) applyFallbacks() {
	def := DefaultConfig()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = def.Server.Mode
	}
	if c.Database.Driver == "" {
		c.Database.Driver = def.Database.Driver
	}
	if c.Database.DSN == "" {
		c.Database.DSN = def.Database.DSN
	}
	if c.JWT.Secret == "" {
		c.JWT.Secret = def.JWT.Secret
	}
	if c.JWT.ExpireHour <= 0 {
		c.JWT.ExpireHour = def.JWT.ExpireHour
	}
	if c.Workload.CountryCode == "" {
		c.Workload.CountryCode = def.Workload.CountryCode
	}
	if c.Workload.CacheTTLSeconds <= 0 {
		c.Workload.CacheTTLSeconds = def.Workload.CacheTTLSeconds
	}
	if c.Workload.DigestTime == "" {
		c.Workload.DigestTime = def.Workload.DigestTime
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) Save(configPath string) error {
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
