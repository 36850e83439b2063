package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	LogLevel        string        `mapstructure:"log_level"`
	AuthJWTSecret   string        `mapstructure:"auth_jwt_secret"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	SeedProfiles    bool          `mapstructure:"seed_profiles"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("auth_jwt_secret", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("seed_profiles", true)
	v.SetDefault("shutdown_timeout", 10*time.Second)
}

// Load reads .env (if present) and the process environment.
// Keys map to upper-case env vars: cache_ttl -> CACHE_TTL.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about, so bind each explicitly.
	for _, k := range []string{"port", "gin_mode", "log_level", "auth_jwt_secret", "redis_addr", "cache_ttl", "seed_profiles", "shutdown_timeout"} {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = redisAddrFromEnv()
	}
	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return &cfg, nil
}
